package klondike

import (
	"testing"

	"github.com/vovakirdan/tui-solitaire/internal/cards"
)

func up(r cards.Rank, s cards.Suit) cards.Card {
	c := cards.New(r, s)
	c.FaceUp = true
	return c
}

func down(r cards.Rank, s cards.Suit) cards.Card {
	return cards.New(r, s)
}

func pileOf(name string, cs ...cards.Card) *cards.Pile {
	p := cards.NewPile(name)
	for _, c := range cs {
		p.Append(c)
	}
	return p
}

func TestAcceptsFoundation(t *testing.T) {
	tests := []struct {
		name string
		pile []cards.Card
		card cards.Card
		want bool
	}{
		{"ace on empty", nil, up(cards.Ace, cards.Hearts), true},
		{"two on empty", nil, up(cards.Two, cards.Hearts), false},
		{"next rank same suit", []cards.Card{up(cards.Ace, cards.Hearts)}, up(cards.Two, cards.Hearts), true},
		{"same color other suit", []cards.Card{up(cards.Ace, cards.Hearts)}, up(cards.Two, cards.Diamonds), false},
		{"skipped rank", []cards.Card{up(cards.Ace, cards.Hearts)}, up(cards.Three, cards.Hearts), false},
		{"king on queen", []cards.Card{up(cards.Queen, cards.Spades)}, up(cards.King, cards.Spades), true},
		{"ace on ace", []cards.Card{up(cards.Ace, cards.Clubs)}, up(cards.Ace, cards.Spades), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pileOf("foundation", tt.pile...)
			if got := AcceptsFoundation(p, tt.card); got != tt.want {
				t.Errorf("AcceptsFoundation(%s, %s) = %v, want %v", p, tt.card, got, tt.want)
			}
		})
	}
}

func TestAcceptsTableau(t *testing.T) {
	tests := []struct {
		name string
		pile []cards.Card
		card cards.Card
		want bool
	}{
		{"king on empty", nil, up(cards.King, cards.Clubs), true},
		{"queen on empty", nil, up(cards.Queen, cards.Clubs), false},
		{"black five on red six", []cards.Card{up(cards.Six, cards.Hearts)}, up(cards.Five, cards.Clubs), true},
		{"red five on red six", []cards.Card{up(cards.Six, cards.Hearts)}, up(cards.Five, cards.Diamonds), false},
		{"black four on red six", []cards.Card{up(cards.Six, cards.Hearts)}, up(cards.Four, cards.Clubs), false},
		{"red five on black six", []cards.Card{up(cards.Six, cards.Spades)}, up(cards.Five, cards.Hearts), true},
		{"higher rank", []cards.Card{up(cards.Six, cards.Spades)}, up(cards.Seven, cards.Hearts), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pileOf("col", tt.pile...)
			if got := AcceptsTableau(p, tt.card); got != tt.want {
				t.Errorf("AcceptsTableau(%s, %s) = %v, want %v", p, tt.card, got, tt.want)
			}
		})
	}
}

func TestFindDestinationOrder(t *testing.T) {
	t.Run("first tableau column wins", func(t *testing.T) {
		b := NewBoard()
		b.Tableau[2].Append(up(cards.Six, cards.Hearts))
		b.Tableau[5].Append(up(cards.Six, cards.Diamonds))

		got, ok := FindDestination(b, up(cards.Five, cards.Clubs))
		if !ok || got != (Target{KindTableau, 2}) {
			t.Errorf("FindDestination = %v, %v; want tableau[2]", got, ok)
		}
	})

	t.Run("foundation before tableau", func(t *testing.T) {
		b := NewBoard()
		for r := cards.Ace; r <= cards.Four; r++ {
			b.Foundations[1].Append(up(r, cards.Clubs))
		}
		b.Tableau[0].Append(up(cards.Six, cards.Hearts))

		got, ok := FindDestination(b, up(cards.Five, cards.Clubs))
		if !ok || got != (Target{KindFoundation, 1}) {
			t.Errorf("FindDestination = %v, %v; want foundation[1]", got, ok)
		}
	})

	t.Run("first empty foundation takes an ace", func(t *testing.T) {
		b := NewBoard()
		b.Foundations[0].Append(up(cards.Ace, cards.Spades))

		got, ok := FindDestination(b, up(cards.Ace, cards.Hearts))
		if !ok || got != (Target{KindFoundation, 1}) {
			t.Errorf("FindDestination = %v, %v; want foundation[1]", got, ok)
		}
	})

	t.Run("no destination", func(t *testing.T) {
		b := NewBoard()
		b.Tableau[0].Append(up(cards.Nine, cards.Hearts))

		if got, ok := FindDestination(b, up(cards.Five, cards.Clubs)); ok {
			t.Errorf("FindDestination = %v, expected none", got)
		}
	})

	t.Run("board untouched", func(t *testing.T) {
		b := NewBoard()
		b.Tableau[3].Append(up(cards.Six, cards.Hearts))
		before := b.Tableau[3].String()

		FindDestination(b, up(cards.Five, cards.Clubs))
		if b.Tableau[3].String() != before || b.Total() != 1 {
			t.Errorf("FindDestination mutated the board: %s", b.Tableau[3])
		}
	})
}

// Column 4 topped by 5♣, column 2 topped by 6♥, hearts foundation empty:
// the five goes to column 2, not to the foundation.
func TestFiveOfClubsGoesToSixOfHearts(t *testing.T) {
	b := NewBoard()
	b.Tableau[2].Append(down(cards.Nine, cards.Spades))
	b.Tableau[2].Append(up(cards.Six, cards.Hearts))
	b.Tableau[4].Append(down(cards.King, cards.Diamonds))
	b.Tableau[4].Append(down(cards.Two, cards.Spades))
	b.Tableau[4].Append(up(cards.Five, cards.Clubs))

	got, ok := FindDestination(b, b.Tableau[4].PeekTop())
	if !ok {
		t.Fatal("FindDestination found nothing")
	}
	if got != (Target{KindTableau, 2}) {
		t.Errorf("FindDestination = %v, want tableau[2]", got)
	}
}

func TestFindRunDestination(t *testing.T) {
	t.Run("runs skip foundations", func(t *testing.T) {
		b := NewBoard()
		b.Foundations[0].Append(up(cards.Ace, cards.Hearts))
		b.Tableau[1].Append(up(cards.Two, cards.Hearts))
		b.Tableau[1].Append(up(cards.Ace, cards.Spades))
		from := Target{KindTableau, 1}

		if got, ok := FindRunDestination(b, b.Tableau[1].At(0), 2, from); ok {
			t.Errorf("run of 2 went to %v, expected none", got)
		}
		if got, ok := FindRunDestination(b, b.Tableau[1].At(0), 1, from); !ok || got != (Target{KindFoundation, 0}) {
			t.Errorf("single card went to %v, %v; want foundation[0]", got, ok)
		}
	})

	t.Run("source excluded", func(t *testing.T) {
		b := NewBoard()
		b.Tableau[0].Append(up(cards.Six, cards.Hearts))
		b.Tableau[5].Append(up(cards.Six, cards.Diamonds))

		got, ok := FindRunDestination(b, up(cards.Five, cards.Clubs), 1, Target{KindTableau, 0})
		if !ok || got != (Target{KindTableau, 5}) {
			t.Errorf("FindRunDestination = %v, %v; want tableau[5]", got, ok)
		}
	})
}

func TestIsRun(t *testing.T) {
	p := pileOf("col",
		down(cards.Nine, cards.Diamonds),
		up(cards.Eight, cards.Clubs),
		up(cards.Seven, cards.Hearts),
		up(cards.Six, cards.Spades),
	)
	broken := pileOf("col",
		up(cards.Eight, cards.Clubs),
		up(cards.Seven, cards.Spades),
	)

	tests := []struct {
		name string
		pile *cards.Pile
		from int
		want bool
	}{
		{"face-down start", p, 0, false},
		{"full run", p, 1, true},
		{"top card", p, 3, true},
		{"same color", broken, 0, false},
		{"out of range", p, 4, false},
		{"negative", p, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRun(tt.pile, tt.from); got != tt.want {
				t.Errorf("IsRun(%s, %d) = %v, want %v", tt.pile, tt.from, got, tt.want)
			}
		})
	}
}

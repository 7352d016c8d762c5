package klondike

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-solitaire/internal/cards"
)

const (
	TableauCount    = 7
	FoundationCount = 4
)

// PileKind identifies a class of piles on the table.
type PileKind int

const (
	KindTableau PileKind = iota
	KindFoundation
	KindReserve
	KindTalon
)

// String returns the pile kind name.
func (k PileKind) String() string {
	switch k {
	case KindTableau:
		return "tableau"
	case KindFoundation:
		return "foundation"
	case KindReserve:
		return "reserve"
	case KindTalon:
		return "talon"
	default:
		return "unknown"
	}
}

// Target addresses one pile on the board. Index is only meaningful for
// tableau columns and foundation slots.
type Target struct {
	Kind  PileKind
	Index int
}

// String returns the target as "kind[index]".
func (t Target) String() string {
	switch t.Kind {
	case KindTableau, KindFoundation:
		return fmt.Sprintf("%s[%d]", t.Kind, t.Index)
	default:
		return t.Kind.String()
	}
}

// Board holds every resting pile. Cards in transit belong to no pile on
// the board until they land.
type Board struct {
	Tableau     [TableauCount]*cards.Pile
	Foundations [FoundationCount]*cards.Pile
	Reserve     *cards.Pile
	Talon       *cards.Pile
}

// NewBoard returns a board with all piles empty.
func NewBoard() *Board {
	b := &Board{
		Reserve: cards.NewPile("reserve"),
		Talon:   cards.NewPile("talon"),
	}
	for i := range b.Tableau {
		b.Tableau[i] = cards.NewPile(Target{KindTableau, i}.String())
	}
	for i := range b.Foundations {
		b.Foundations[i] = cards.NewPile(Target{KindFoundation, i}.String())
	}
	return b
}

// Deal shuffles a fresh deck with rng and lays it out: column i gets
// i+1 cards taken from the top of the deck, the rest go to the reserve.
// All cards start face-down.
func Deal(rng *rand.Rand) *Board {
	deck := cards.NewDeck()
	deck.Shuffle(rng)
	return DealFrom(deck)
}

// DealFrom lays out an already ordered deck, consuming it.
func DealFrom(deck *cards.Pile) *Board {
	b := NewBoard()
	for i := range b.Tableau {
		for range i + 1 {
			b.Tableau[i].Append(deck.Pop())
		}
	}
	for !deck.Empty() {
		b.Reserve.Append(deck.Pop())
	}
	return b
}

// Pile resolves a target to its pile, or nil for an invalid target.
func (b *Board) Pile(t Target) *cards.Pile {
	switch t.Kind {
	case KindTableau:
		if t.Index >= 0 && t.Index < TableauCount {
			return b.Tableau[t.Index]
		}
	case KindFoundation:
		if t.Index >= 0 && t.Index < FoundationCount {
			return b.Foundations[t.Index]
		}
	case KindReserve:
		return b.Reserve
	case KindTalon:
		return b.Talon
	}
	return nil
}

// Total returns the number of cards resting on the board.
func (b *Board) Total() int {
	n := b.Reserve.Len() + b.Talon.Len()
	for _, p := range b.Tableau {
		n += p.Len()
	}
	for _, p := range b.Foundations {
		n += p.Len()
	}
	return n
}

// FoundationCards returns the number of cards on the foundations.
func (b *Board) FoundationCards() int {
	n := 0
	for _, p := range b.Foundations {
		n += p.Len()
	}
	return n
}

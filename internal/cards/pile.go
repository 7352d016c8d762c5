package cards

import (
	"fmt"
	"math/rand"
	"strings"
)

// Capacity is the maximum number of cards any pile may hold: the whole deck.
const Capacity = 52

// InvariantError describes a pile operation that broke a structural
// invariant (capacity, empty access, split range). It signals a logic
// defect in the caller and is raised with panic, never returned.
type InvariantError struct {
	Pile   string // Pile identity
	Op     string // Attempted operation
	Count  int    // Pile size when the operation was attempted
	Detail string
	Err    error // Optional sentinel cause
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("cards: invariant violated: %s on pile %q (count %d): %s",
		e.Op, e.Pile, e.Count, e.Detail)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

// Pile is an ordered, capacity-bounded stack of cards. Append and Pop
// operate on the tail, which is the top of the pile.
type Pile struct {
	name  string
	cards []Card
}

// NewPile creates an empty pile. The name is used in diagnostics.
func NewPile(name string) *Pile {
	return &Pile{
		name:  name,
		cards: make([]Card, 0, 8),
	}
}

// Name returns the pile identity.
func (p *Pile) Name() string {
	return p.name
}

// Len returns the number of cards in the pile.
func (p *Pile) Len() int {
	return len(p.cards)
}

// Empty reports whether the pile holds no cards.
func (p *Pile) Empty() bool {
	return len(p.cards) == 0
}

// violate panics with an InvariantError for this pile.
func (p *Pile) violate(op, detail string) {
	panic(&InvariantError{Pile: p.name, Op: op, Count: len(p.cards), Detail: detail})
}

// Append places c on top of the pile.
func (p *Pile) Append(c Card) {
	if len(p.cards)+1 > Capacity {
		p.violate("append", "capacity exceeded")
	}
	p.cards = append(p.cards, c)
}

// AppendAll places every card of o on top of p, keeping o's order.
// o itself is left unchanged.
func (p *Pile) AppendAll(o *Pile) {
	if o == nil || len(o.cards) == 0 {
		return
	}
	if len(p.cards)+len(o.cards) > Capacity {
		p.violate("append-all", fmt.Sprintf("capacity exceeded adding %d cards from %q", len(o.cards), o.name))
	}
	p.cards = append(p.cards, o.cards...)
}

// Pop removes and returns the top card.
func (p *Pile) Pop() Card {
	if len(p.cards) == 0 {
		p.violate("pop", "pile is empty")
	}
	top := p.cards[len(p.cards)-1]
	p.cards = p.cards[:len(p.cards)-1]
	return top
}

// PeekTop returns the top card without removing it.
func (p *Pile) PeekTop() Card {
	if len(p.cards) == 0 {
		p.violate("peek-top", "pile is empty")
	}
	return p.cards[len(p.cards)-1]
}

// PeekBottom returns the bottom card without removing it.
func (p *Pile) PeekBottom() Card {
	if len(p.cards) == 0 {
		p.violate("peek-bottom", "pile is empty")
	}
	return p.cards[0]
}

// SplitAt detaches the cards [index, Len()) into a new pile, in their
// original order, and truncates p to [0, index).
// Example: [A,B,C,D,E], index=2 => p becomes [A,B], returns [C,D,E].
func (p *Pile) SplitAt(index int) *Pile {
	if index < 0 || index >= len(p.cards) {
		p.violate("split", fmt.Sprintf("index %d out of range", index))
	}

	pulled := NewPile(fmt.Sprintf("%s[%d:]", p.name, index))
	pulled.cards = append(pulled.cards, p.cards[index:]...)

	// Zero the vacated tail so the backing array holds no stale cards.
	for i := index; i < len(p.cards); i++ {
		p.cards[i] = Card{}
	}
	p.cards = p.cards[:index]

	return pulled
}

// At returns a copy of the card at index i (0 is the bottom).
func (p *Pile) At(i int) Card {
	if i < 0 || i >= len(p.cards) {
		p.violate("at", fmt.Sprintf("index %d out of range", i))
	}
	return p.cards[i]
}

// Each calls fn with a pointer to every card, bottom to top, so callers
// can update presentation state (position, face) in place.
func (p *Pile) Each(fn func(i int, c *Card)) {
	for i := range p.cards {
		fn(i, &p.cards[i])
	}
}

// SetFaceUp turns the card at index i face-up or face-down.
func (p *Pile) SetFaceUp(i int, up bool) {
	if i < 0 || i >= len(p.cards) {
		p.violate("set-face", fmt.Sprintf("index %d out of range", i))
	}
	p.cards[i].FaceUp = up
}

// Cards returns a copy of the pile contents, bottom to top.
func (p *Pile) Cards() []Card {
	out := make([]Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// Shuffle permutes the pile in place using rng (Fisher-Yates).
func (p *Pile) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(p.cards), func(i, j int) {
		p.cards[i], p.cards[j] = p.cards[j], p.cards[i]
	})
}

// String lists the cards bottom to top, face-down ones as "##".
func (p *Pile) String() string {
	parts := make([]string, 0, len(p.cards))
	for _, c := range p.cards {
		if c.FaceUp {
			parts = append(parts, c.String())
		} else {
			parts = append(parts, "##")
		}
	}
	return fmt.Sprintf("%s[%s]", p.name, strings.Join(parts, " "))
}

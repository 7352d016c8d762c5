package klondike

import "github.com/vovakirdan/tui-solitaire/internal/cards"

// AcceptsFoundation reports whether c may be placed on foundation p:
// an Ace on an empty slot, otherwise the next rank of the same suit.
// The first Ace placed decides the slot's suit.
func AcceptsFoundation(p *cards.Pile, c cards.Card) bool {
	if p.Empty() {
		return c.Rank == cards.Ace
	}
	top := p.PeekTop()
	return top.Suit == c.Suit && c.Rank == top.Rank+1
}

// AcceptsTableau reports whether c may be placed on tableau column p:
// a King on an empty column, otherwise one rank lower in the opposite
// color.
func AcceptsTableau(p *cards.Pile, c cards.Card) bool {
	if p.Empty() {
		return c.Rank == cards.King
	}
	top := p.PeekTop()
	return top.Color() != c.Color() && c.Rank == top.Rank-1
}

// FindDestination returns the first pile that accepts c. Foundations
// are tried in slot order 0..3, then tableau columns 0..6; the first
// match wins. The board is not modified.
func FindDestination(b *Board, c cards.Card) (Target, bool) {
	for i, p := range b.Foundations {
		if AcceptsFoundation(p, c) {
			return Target{KindFoundation, i}, true
		}
	}
	for i, p := range b.Tableau {
		if AcceptsTableau(p, c) {
			return Target{KindTableau, i}, true
		}
	}
	return Target{}, false
}

// FindRunDestination is FindDestination for a run of runLen cards whose
// bottom card is c, lifted from pile from. Only a single card may go to
// a foundation, and the source pile is never a destination.
func FindRunDestination(b *Board, c cards.Card, runLen int, from Target) (Target, bool) {
	if runLen == 1 {
		for i, p := range b.Foundations {
			t := Target{KindFoundation, i}
			if t != from && AcceptsFoundation(p, c) {
				return t, true
			}
		}
	}
	for i, p := range b.Tableau {
		t := Target{KindTableau, i}
		if t != from && AcceptsTableau(p, c) {
			return t, true
		}
	}
	return Target{}, false
}

// IsRun reports whether p[from:] is face-up and descends by one rank
// with alternating colors.
func IsRun(p *cards.Pile, from int) bool {
	if from < 0 || from >= p.Len() {
		return false
	}
	prev := p.At(from)
	if !prev.FaceUp {
		return false
	}
	for i := from + 1; i < p.Len(); i++ {
		c := p.At(i)
		if !c.FaceUp || c.Color() == prev.Color() || c.Rank != prev.Rank-1 {
			return false
		}
		prev = c
	}
	return true
}

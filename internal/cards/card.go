// Package cards models playing cards and the bounded piles they rest in.
// Cards are values; piles are ordered bottom-to-top (index 0 is the
// bottom, the last index is the visually topmost card).
package cards

import (
	"fmt"

	"github.com/vovakirdan/tui-solitaire/internal/core"
)

// Rank is a card rank from Ace (1) to King (13).
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Valid reports whether r is within Ace..King.
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// String returns the short rank label ("A", "2".."10", "J", "Q", "K").
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r.Valid() {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Suit is one of the four French suits. The order matches the deck
// order used when dealing.
type Suit int

const (
	Hearts Suit = iota
	Clubs
	Spades
	Diamonds
)

// SuitCount is the number of suits in a deck.
const SuitCount = 4

// String returns the lowercase suit name used in asset names.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "hearts"
	case Clubs:
		return "clubs"
	case Spades:
		return "spades"
	case Diamonds:
		return "diamonds"
	default:
		return "unknown"
	}
}

// Symbol returns the suit glyph.
func (s Suit) Symbol() rune {
	switch s {
	case Hearts:
		return '♥'
	case Clubs:
		return '♣'
	case Spades:
		return '♠'
	case Diamonds:
		return '♦'
	default:
		return '?'
	}
}

// Color is the color of a suit.
type Color int

const (
	Red Color = iota
	Black
)

// Color returns Black for clubs and spades, Red otherwise.
func (s Suit) Color() Color {
	if s == Clubs || s == Spades {
		return Black
	}
	return Red
}

// Card is a playing card together with its resolved table position.
// Two cards are the same card when rank and suit match; Pos and FaceUp
// are presentation state.
type Card struct {
	Rank   Rank
	Suit   Suit
	Pos    core.Vec2 // Top-left corner in normalized screen units
	FaceUp bool
}

// New returns a face-down card at the origin.
func New(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s}
}

// Color returns the color derived from the suit.
func (c Card) Color() Color {
	return c.Suit.Color()
}

// Same reports whether c and o are the same (rank, suit) pair.
func (c Card) Same(o Card) bool {
	return c.Rank == o.Rank && c.Suit == o.Suit
}

// String returns the card as rank and suit glyph (e.g. "10♣").
func (c Card) String() string {
	return fmt.Sprintf("%s%c", c.Rank, c.Suit.Symbol())
}

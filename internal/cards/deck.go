package cards

import "fmt"

// CardBackAsset is the logical asset name of the card back image.
const CardBackAsset = "card_back"

// NewDeck returns the 52-card deck, face-down, rank-major
// (A♥ A♣ A♠ A♦ 2♥ ...).
func NewDeck() *Pile {
	deck := NewPile("deck")
	for r := Ace; r <= King; r++ {
		for s := Suit(0); s < SuitCount; s++ {
			deck.Append(New(r, s))
		}
	}
	return deck
}

// AssetName returns the logical image name for a card face:
// "{rank-or-facename}_of_{suitname}", e.g. "ace_of_hearts",
// "10_of_clubs", "king_of_spades".
func AssetName(c Card) string {
	var rank string
	switch c.Rank {
	case Ace:
		rank = "ace"
	case Jack:
		rank = "jack"
	case Queen:
		rank = "queen"
	case King:
		rank = "king"
	default:
		rank = fmt.Sprintf("%d", int(c.Rank))
	}
	return rank + "_of_" + c.Suit.String()
}

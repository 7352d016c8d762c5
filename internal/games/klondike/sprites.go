package klondike

import (
	"github.com/vovakirdan/tui-solitaire/internal/cards"
	"github.com/vovakirdan/tui-solitaire/internal/core"
)

// Sprite is a draw request for a pixel renderer: the logical asset,
// the top-left corner in normalized units and the uniform scale from
// card image pixels to screen pixels. Card and InFlight let a renderer
// draw without images.
type Sprite struct {
	Asset    string
	Pos      core.Vec2
	Scale    float64
	Card     cards.Card
	InFlight bool
}

// Slot is an empty pile outline.
type Slot struct {
	Target Target
	Rect   core.RectF
}

// CardScale returns the factor that sizes a card image to the layout.
func (g *Game) CardScale() float64 {
	return g.layout.CardW * g.metrics.ScreenW / g.metrics.CardW
}

// Slots calls fn for every empty foundation, tableau column and the
// reserve when it is empty.
func (g *Game) Slots(fn func(Slot)) {
	for i, p := range g.board.Foundations {
		if p.Empty() {
			fn(Slot{Target{KindFoundation, i}, g.layout.CardRect(g.layout.FoundationAnchor(i))})
		}
	}
	for i, p := range g.board.Tableau {
		if p.Empty() {
			fn(Slot{Target{KindTableau, i}, g.layout.CardRect(g.layout.TableauAnchor(i, 0))})
		}
	}
	if g.board.Reserve.Empty() {
		fn(Slot{Target{Kind: KindReserve}, g.layout.CardRect(g.layout.ReserveAnchor())})
	}
}

// Sprites calls fn for every visible card, back to front: foundations,
// reserve, talon, tableau, then the pile in flight.
func (g *Game) Sprites(fn func(Sprite)) {
	scale := g.CardScale()
	g.eachVisible(func(c cards.Card, inFlight bool) {
		asset := cards.CardBackAsset
		if c.FaceUp {
			asset = cards.AssetName(c)
		}
		fn(Sprite{Asset: asset, Pos: c.Pos, Scale: scale, Card: c, InFlight: inFlight})
	})
}

// eachVisible walks the cards a renderer has to draw in paint order.
// Stacked piles only contribute their top card; the talon contributes
// its fanned cards. inFlight marks cards of the moving pile.
func (g *Game) eachVisible(fn func(c cards.Card, inFlight bool)) {
	for _, p := range g.board.Foundations {
		if !p.Empty() {
			fn(p.PeekTop(), false)
		}
	}
	if !g.board.Reserve.Empty() {
		fn(g.board.Reserve.PeekTop(), false)
	}
	talon := g.board.Talon
	first := max(talon.Len()-g.layout.cfg.TalonVisible, 0)
	for i := first; i < talon.Len(); i++ {
		fn(talon.At(i), false)
	}
	for _, p := range g.board.Tableau {
		for _, c := range p.Cards() {
			fn(c, false)
		}
	}
	if t, ok := g.anim.Current(); ok {
		for _, c := range t.Moving.Cards() {
			fn(c, true)
		}
	}
}

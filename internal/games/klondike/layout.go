package klondike

import (
	"github.com/vovakirdan/tui-solitaire/internal/cards"
	"github.com/vovakirdan/tui-solitaire/internal/config"
	"github.com/vovakirdan/tui-solitaire/internal/core"
)

// talonColumn is the column slot the talon occupies in the top row,
// right of the four foundations.
const talonColumn = 4

// Layout maps piles to anchor positions in normalized screen units.
// Foundations and the talon share the top row with the reserve at the
// right edge; the tableau sits below.
type Layout struct {
	cfg config.LayoutConfig

	CardW       float64 // Card width as a fraction of the screen width
	CardH       float64 // Card height as a fraction of the screen height
	TableauY    float64
	FoundationY float64
	Fan         float64 // Vertical step between tableau cards
	Splay       float64 // Horizontal step between fanned talon cards
}

// NewLayout derives card size and row positions from the metrics. The
// card keeps the aspect ratio of its image on a non-square screen.
func NewLayout(m core.Metrics, cfg config.LayoutConfig) Layout {
	cw := (1 - cfg.Pad*6 - cfg.Margin*2) / TableauCount
	ch := cw * (m.CardH / m.CardW) * (m.ScreenW / m.ScreenH)

	tableauY := max(cfg.TableauYStart, cfg.TopMargin*2+ch)

	return Layout{
		cfg:         cfg,
		CardW:       cw,
		CardH:       ch,
		TableauY:    tableauY,
		FoundationY: tableauY - ch - cfg.TopMargin,
		Fan:         cfg.TableauFan * ch,
		Splay:       cfg.TalonSplay * cw,
	}
}

// columnX returns the left edge of top-row or tableau column i.
func (l Layout) columnX(i int) float64 {
	return l.cfg.Margin + float64(i)*(l.CardW+l.cfg.Pad)
}

// TableauAnchor returns the position of card i in tableau column col.
func (l Layout) TableauAnchor(col, i int) core.Vec2 {
	return core.V(l.columnX(col), l.TableauY+float64(i)*l.Fan)
}

// FoundationAnchor returns the position of foundation slot i.
func (l Layout) FoundationAnchor(i int) core.Vec2 {
	return core.V(l.columnX(i), l.FoundationY)
}

// ReserveAnchor returns the position of the reserve stack.
func (l Layout) ReserveAnchor() core.Vec2 {
	return core.V(1-l.CardW-l.cfg.Margin, l.FoundationY)
}

// TalonAnchor returns the position of card i of an n-card talon. Only
// the top TalonVisible cards are fanned to the right; older cards stay
// stacked under the first fanned one.
func (l Layout) TalonAnchor(i, n int) core.Vec2 {
	base := core.V(l.columnX(talonColumn), l.FoundationY)
	first := max(n-l.cfg.TalonVisible, 0)
	if i <= first {
		return base
	}
	return base.Add(core.V(float64(i-first)*l.Splay, 0))
}

// NextAnchor returns where the next card placed on target will rest.
func (l Layout) NextAnchor(b *Board, t Target) core.Vec2 {
	switch t.Kind {
	case KindTableau:
		return l.TableauAnchor(t.Index, b.Tableau[t.Index].Len())
	case KindFoundation:
		return l.FoundationAnchor(t.Index)
	case KindTalon:
		n := b.Talon.Len() + 1
		return l.TalonAnchor(n-1, n)
	default:
		return l.ReserveAnchor()
	}
}

// CardRect returns the box of a card resting at pos.
func (l Layout) CardRect(pos core.Vec2) core.RectF {
	return core.RectF{Pos: pos, W: l.CardW, H: l.CardH}
}

// Place sets the resting position of every card on the board.
func (l Layout) Place(b *Board) {
	for col, p := range b.Tableau {
		p.Each(func(i int, c *cards.Card) {
			c.Pos = l.TableauAnchor(col, i)
		})
	}
	for slot, p := range b.Foundations {
		pos := l.FoundationAnchor(slot)
		p.Each(func(_ int, c *cards.Card) {
			c.Pos = pos
		})
	}
	n := b.Talon.Len()
	b.Talon.Each(func(i int, c *cards.Card) {
		c.Pos = l.TalonAnchor(i, n)
	})
	reserve := l.ReserveAnchor()
	b.Reserve.Each(func(_ int, c *cards.Card) {
		c.Pos = reserve
	})
}

package klondike

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-solitaire/internal/cards"
	"github.com/vovakirdan/tui-solitaire/internal/core"
)

// Render draws the table into a character-cell screen. A card is a box
// with its label on the top border so fanned cards stay readable.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	w, h := dst.Width(), dst.Height()

	g.Slots(func(s Slot) {
		r := s.Rect.Cells(w, h)
		dst.DrawBox(r, core.ColorGreen)
		if s.Target.Kind == KindReserve && !g.board.Talon.Empty() {
			dst.SetColored(r.X+r.W/2, r.Y+r.H/2, '↻', core.ColorGreen)
		}
	})

	g.eachVisible(func(c cards.Card, inFlight bool) {
		g.drawCard(dst, c, inFlight)
	})

	g.renderHUD(dst)
}

// drawCard paints one card: a blue hatched back or a face with the
// rank and suit in the suit color.
func (g *Game) drawCard(dst *core.Screen, c cards.Card, highlight bool) {
	r := g.layout.CardRect(c.Pos).Cells(dst.Width(), dst.Height())
	if r.W < 2 || r.H < 2 {
		return
	}

	if !c.FaceUp {
		border := core.ColorBlue
		if highlight {
			border = core.ColorYellow
		}
		dst.DrawRect(core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2), '░', core.ColorBlue)
		dst.DrawBox(r, border)
		return
	}

	color := core.ColorBlack
	if c.Color() == cards.Red {
		color = core.ColorRed
	}
	border := core.ColorDefault
	if highlight {
		border = core.ColorYellow
	}
	dst.DrawRect(core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2), ' ', core.ColorDefault)
	dst.DrawBox(r, border)
	dst.DrawTextColored(r.X+1, r.Y, c.String(), color)
	if r.H > 3 {
		dst.SetColored(r.X+r.W/2, r.Y+r.H/2, c.Suit.Symbol(), color)
	}
}

// renderHUD writes the deal status into the free top-row column between
// the talon and the reserve.
func (g *Game) renderHUD(dst *core.Screen) {
	x := int(math.Floor(g.layout.columnX(talonColumn+1) * float64(dst.Width())))
	y := int(math.Floor(g.layout.FoundationY * float64(dst.Height())))

	lines := []string{
		fmt.Sprintf("Moves %d", g.moves),
		fmt.Sprintf("Stock %d", g.board.Reserve.Len()),
		fmt.Sprintf("Home %d", g.board.FoundationCards()),
	}
	for i, line := range lines {
		dst.DrawTextColored(x, y+i, line, core.ColorGray)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	y := dst.Height() / 2
	dst.DrawTextCentered(y, msg)
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

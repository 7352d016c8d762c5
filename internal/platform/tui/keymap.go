package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-solitaire/internal/core"
)

// GameKeyMap defines the key bindings while a deal is on the table.
type GameKeyMap struct {
	NewDeal    key.Binding
	Redeal     key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewDeal, k.Redeal, k.Screenshot, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewDeal, k.Redeal},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		NewDeal: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new deal"),
		),
		Redeal: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay deal"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Bindings returns the bindings for help rendering.
func (km *KeyMapper) Bindings() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a platform action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.NewDeal):
		return core.ActionNewDeal, false
	case key.Matches(msg, km.keys.Redeal):
		return core.ActionRedeal, false
	case key.Matches(msg, km.keys.Help):
		return core.ActionHelp, false
	}
	return core.ActionNone, false
}

// IsScreenshot reports whether msg requests a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}

// CellToNormalized maps the center of cell (x, y) on a w by h grid to
// normalized screen units.
func CellToNormalized(x, y, w, h int) core.Vec2 {
	return core.V((float64(x)+0.5)/float64(w), (float64(y)+0.5)/float64(h))
}

// MapMouse records a mouse message in the frame's pointer. Only the left
// button presses; release and motion track any button. Cells outside
// the w by h board are ignored.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, w, h int, frame *core.InputFrame) {
	if w <= 0 || h <= 0 || msg.X < 0 || msg.X >= w || msg.Y < 0 || msg.Y >= h {
		return
	}
	pos := CellToNormalized(msg.X, msg.Y, w, h)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			frame.Press(pos)
		}
	case tea.MouseActionRelease:
		frame.Release(pos)
	case tea.MouseActionMotion:
		frame.Move(pos)
	}
}

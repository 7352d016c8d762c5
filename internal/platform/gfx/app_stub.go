//go:build !ebiten

package gfx

import (
	"github.com/vovakirdan/tui-solitaire/internal/core"
	"github.com/vovakirdan/tui-solitaire/internal/games/klondike"
)

// Run reports that the window frontend was not compiled in.
func Run(*klondike.Game, core.RuntimeConfig, Options) error {
	return ErrNoWindow
}

package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-solitaire/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "A♥", core.ColorRed)
	s.DrawTextColored(3, 0, "K♠", core.ColorBlack)
	s.DrawText(0, 1, "Moves 3")

	out := RenderScreen(s)
	for _, want := range []string{"A♥", "K♠", "Moves 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q", want)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("rendered %d line breaks, want 1", got)
	}
}

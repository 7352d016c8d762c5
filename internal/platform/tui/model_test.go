package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-solitaire/internal/core"
	"github.com/vovakirdan/tui-solitaire/internal/storage"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	resets   int
	resizes  []core.RuntimeConfig
	steps    int
	pointer  core.Pointer
	elapsed  float64
	newDeal  bool
	redeal   bool
	seed     int64
	state    core.GameState
	events   []core.Event
	rendered int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Seed() int64   { return g.seed }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.seed = cfg.Seed
}

func (g *fakeGame) Resize(cfg core.RuntimeConfig) {
	g.resizes = append(g.resizes, cfg)
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.pointer = in.Pointer
	g.elapsed = in.Elapsed
	g.newDeal = in.Has(core.ActionNewDeal)
	g.redeal = in.Has(core.ActionRedeal)
	if g.newDeal {
		g.seed++
		g.state = core.GameState{}
	}
	return core.StepResult{State: g.state, Events: g.events}
}

func (g *fakeGame) Render(dst *core.Screen) {
	g.rendered++
	dst.DrawText(0, 0, "table")
}

func (g *fakeGame) State() core.GameState { return g.state }

// fakeSound counts cues.
type fakeSound struct {
	played []core.EventKind
}

func (s *fakeSound) Play(kind core.EventKind) {
	s.played = append(s.played, kind)
}

func newTestModel(g *fakeGame, store *storage.Store, opts Options) Model {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 30, Seed: 7}
	m := NewModel(g, store, cfg, opts)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelReservesFooterRow(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil, Options{})

	if m.config.ScreenH != 24 {
		t.Errorf("board height = %d, want 24", m.config.ScreenH)
	}
	if g.resets != 1 || g.seed != 7 {
		t.Errorf("Init: resets=%d seed=%d", g.resets, g.seed)
	}

	view := m.View()
	if !strings.Contains(view, "table") || !strings.Contains(view, "seed 7") {
		t.Errorf("view missing board or footer:\n%s", view)
	}
}

func TestModelMouseReachesGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil, Options{})

	m = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg(time.Now()))

	if !g.pointer.Pressed {
		t.Fatal("press did not reach the game")
	}
	if want := CellToNormalized(10, 5, 80, 24); g.pointer.Pos != want {
		t.Errorf("pointer pos = %v, want %v", g.pointer.Pos, want)
	}

	update(t, m, TickMsg(time.Now()))
	if g.pointer.Pressed {
		t.Error("pressed edge should clear after one tick")
	}
	if !g.pointer.Down {
		t.Error("button level should carry over")
	}
}

func TestModelElapsedFromTicks(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil, Options{})

	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m = update(t, m, TickMsg(start))
	if g.elapsed != 0 {
		t.Errorf("first tick elapsed = %v, want 0", g.elapsed)
	}

	m = update(t, m, TickMsg(start.Add(50*time.Millisecond)))
	if g.elapsed != 0.05 {
		t.Errorf("elapsed = %v, want 0.05", g.elapsed)
	}

	update(t, m, TickMsg(start.Add(10*time.Second)))
	if g.elapsed != maxElapsed {
		t.Errorf("stalled tick elapsed = %v, want %v", g.elapsed, maxElapsed)
	}
}

func TestModelKeysBecomeActions(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil, Options{})

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg(time.Now()))
	if !g.redeal {
		t.Error("r should request a redeal")
	}

	m = update(t, m, runeKey('n'))
	update(t, m, TickMsg(time.Now()))
	if !g.newDeal {
		t.Error("n should request a new deal")
	}
}

func TestModelHelpToggle(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil, Options{})

	m = update(t, m, runeKey('?'))
	if !m.showHelp {
		t.Fatal("? should show help")
	}
	if !strings.Contains(m.View(), "new deal") {
		t.Error("help footer should list the new deal key")
	}

	m = update(t, m, runeKey('?'))
	if m.showHelp {
		t.Error("? should hide help again")
	}
}

func TestModelResizeKeepsDeal(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil, Options{})

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	if len(g.resizes) != 1 || g.resizes[0].ScreenW != 120 || g.resizes[0].ScreenH != 39 {
		t.Errorf("resizes = %+v, want one 120x39", g.resizes)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelPlaysEventSounds(t *testing.T) {
	g := &fakeGame{events: []core.Event{
		{Kind: core.EventPickup, Pile: "tableau[3]", Cards: 1},
		{Kind: core.EventLand, Pile: "foundation[0]", Cards: 1},
	}}
	snd := &fakeSound{}
	m := newTestModel(g, nil, Options{Sound: snd})

	update(t, m, TickMsg(time.Now()))

	if len(snd.played) != 2 || snd.played[0] != core.EventPickup || snd.played[1] != core.EventLand {
		t.Errorf("played = %v", snd.played)
	}
}

func TestModelRecordsDeals(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "deals.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	g := &fakeGame{}
	m := newTestModel(g, store, Options{Frontend: "ssh"})

	// A deal without moves is not recorded.
	m = update(t, m, runeKey('n'))
	m = update(t, m, TickMsg(time.Now()))

	g.state = core.GameState{Moves: 12, Foundation: 5}
	seed := g.seed
	m = update(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Fatal("q should quit")
	}

	deals, err := store.RecentDeals("fake", 10)
	if err != nil {
		t.Fatalf("RecentDeals: %v", err)
	}
	if len(deals) != 1 {
		t.Fatalf("recorded %d deals, want 1", len(deals))
	}
	d := deals[0]
	if d.Seed != seed || d.Moves != 12 || d.FoundationCards != 5 || d.Frontend != "ssh" {
		t.Errorf("deal = %+v", d)
	}
	if d.DealID != m.deal.id {
		t.Errorf("deal id = %q, want %q", d.DealID, m.deal.id)
	}

	// The program stopping after q must not record the deal again.
	m.FinishDeal()
	if deals, _ := store.RecentDeals("fake", 10); len(deals) != 1 {
		t.Errorf("recorded %d deals after FinishDeal, want 1", len(deals))
	}
}

func TestModelFinishDealFromCopy(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "deals.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	g := &fakeGame{}
	first := newTestModel(g, store, Options{Frontend: "ssh"})

	// The program works on copies; the first deal is replaced by a new one.
	g.state = core.GameState{Moves: 3}
	m := update(t, first, runeKey('n'))
	m = update(t, m, TickMsg(time.Now()))
	g.state = core.GameState{Moves: 7, Foundation: 2}

	first.FinishDeal()
	first.FinishDeal()

	deals, err := store.RecentDeals("fake", 10)
	if err != nil {
		t.Fatalf("RecentDeals: %v", err)
	}
	if len(deals) != 2 {
		t.Fatalf("recorded %d deals, want 2", len(deals))
	}
	var found bool
	for _, d := range deals {
		if d.DealID == m.deal.id {
			found = true
			if d.Moves != 7 || d.FoundationCards != 2 {
				t.Errorf("current deal = %+v", d)
			}
		}
	}
	if !found {
		t.Errorf("current deal %q not recorded: %+v", m.deal.id, deals)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGame{}
	m := newTestModel(g, nil, Options{ScreenshotDir: dir})

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	matches, err := filepath.Glob(filepath.Join(dir, "fake_7_*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Errorf("screenshots = %v, want one", matches)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{61, "1:01"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{-3, "0:00"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.secs); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestDealRow(t *testing.T) {
	row := DealRow(storage.DealRecord{Seed: 42, Moves: 9, FoundationCards: 4, Duration: 75, Frontend: "gui"})
	if len(row) != len(HistoryColumns) {
		t.Fatalf("row has %d cells, want %d", len(row), len(HistoryColumns))
	}
	want := []string{"42", "9", "4/52", "1:15", "gui"}
	for i, cell := range want {
		if row[i+1] != cell {
			t.Errorf("cell %d = %q, want %q", i+1, row[i+1], cell)
		}
	}
}

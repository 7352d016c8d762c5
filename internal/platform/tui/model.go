package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-solitaire/internal/core"
	"github.com/vovakirdan/tui-solitaire/internal/registry"
	"github.com/vovakirdan/tui-solitaire/internal/storage"
)

// footerHeight is the number of rows below the table reserved for help.
const footerHeight = 1

// SoundPlayer plays a cue for a game event.
type SoundPlayer interface {
	Play(kind core.EventKind)
}

// Options tune a Model for the frontend that runs it.
type Options struct {
	// Frontend is recorded with every deal ("terminal", "ssh").
	Frontend string

	// Logger receives deal and event logs. Nil discards them.
	Logger *log.Logger

	// Sound plays event cues. Nil is silent.
	Sound SoundPlayer

	// ScreenshotDir overrides ~/.solitaire/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for a solitaire deal in the terminal.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keys       *KeyMapper
	help       help.Model
	showHelp   bool
	inputFrame core.InputFrame
	gameState  core.GameState
	deal       *dealLog
	lastTick   time.Time
	quitting   bool
}

// dealLog tracks the deal in progress. Copies of a Model share it, so
// the deal can be finished from outside the program once it stops.
type dealLog struct {
	id     string
	start  time.Time
	closed bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenH is the full terminal height; one row is kept for the footer.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = max(cfg.ScreenH-footerHeight, 1)

	if opts.Frontend == "" {
		opts.Frontend = "terminal"
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		deal:       &dealLog{id: storage.NewDealID(), start: time.Now()},
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("deal started", "game", m.game.ID(), "seed", m.seed(), "deal", m.deal.id)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouse(msg, m.config.ScreenW, m.config.ScreenH, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	if quit {
		m.finishDeal()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionHelp:
		m.showHelp = !m.showHelp
	case core.ActionNewDeal, core.ActionRedeal:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize adapts the board to the new terminal size. Games that
// can resize keep their deal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-footerHeight, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config)
	} else {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.inputFrame.Elapsed = elapsedSince(m.lastTick, now)
	m.lastTick = now

	redeal := m.inputFrame.Has(core.ActionNewDeal) || m.inputFrame.Has(core.ActionRedeal)
	if redeal {
		m.finishDeal()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if redeal {
		m.startDeal(now)
	}

	for _, ev := range result.Events {
		m.opts.Logger.Debug("event", "kind", ev.Kind, "pile", ev.Pile, "cards", ev.Cards)
		if m.opts.Sound != nil {
			m.opts.Sound.Play(ev.Kind)
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// seed returns the seed of the current deal.
func (m *Model) seed() int64 {
	if s, ok := m.game.(registry.Seeded); ok {
		return s.Seed()
	}
	return m.config.Seed
}

// startDeal begins bookkeeping for a fresh deal.
func (m *Model) startDeal(now time.Time) {
	*m.deal = dealLog{id: storage.NewDealID(), start: now}
	m.opts.Logger.Info("deal started", "game", m.game.ID(), "seed", m.seed(), "deal", m.deal.id)
}

// FinishDeal records the current deal once the program has stopped.
// A deal already finished by quitting is not recorded twice.
func (m Model) FinishDeal() {
	m.finishDeal()
}

// finishDeal records the current deal if any move was made. Only the
// first call per deal has any effect.
func (m *Model) finishDeal() {
	if m.deal.closed {
		return
	}
	m.deal.closed = true

	state := m.game.State()
	m.opts.Logger.Info("deal finished",
		"deal", m.deal.id,
		"moves", state.Moves,
		"foundation", state.Foundation,
	)
	if m.store == nil || state.Moves == 0 {
		return
	}

	rec := storage.DealRecord{
		DealID:          m.deal.id,
		GameID:          m.game.ID(),
		Seed:            m.seed(),
		Moves:           state.Moves,
		FoundationCards: state.Foundation,
		Duration:        int(time.Since(m.deal.start).Seconds()),
		Frontend:        m.opts.Frontend,
	}
	if _, err := m.store.SaveDeal(rec); err != nil {
		m.opts.Logger.Warn("could not save deal", "deal", m.deal.id, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".solitaire", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%d_%s.txt", m.game.ID(), m.seed(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// footer renders the one-line status or help bar.
func (m Model) footer() string {
	if m.showHelp {
		return m.help.View(m.keys.Bindings())
	}
	return footerStyle.Render(fmt.Sprintf("%s  seed %d  ? help", m.game.Title(), m.seed()))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.footer()
}

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	model.FinishDeal()
	return err
}

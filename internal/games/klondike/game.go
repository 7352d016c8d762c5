// Package klondike implements single-player Klondike solitaire: the
// rules engine, the pile layout, the transit animator and the per-tick
// turn controller.
package klondike

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-solitaire/internal/cards"
	"github.com/vovakirdan/tui-solitaire/internal/config"
	"github.com/vovakirdan/tui-solitaire/internal/core"
	"github.com/vovakirdan/tui-solitaire/internal/registry"
)

// GameID is the registry identifier of the Klondike variant.
const GameID = "klondike"

// Game is the Klondike aggregate: the board, the animator and the
// deal bookkeeping. It is driven by one goroutine.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.SolitaireConfig
	fixed   bool // cfg was supplied by the caller, skip loading
	metrics core.Metrics

	board  *Board
	layout Layout
	anim   *Animator

	rng      *rand.Rand // Picks seeds for new deals
	seed     int64
	tick     uint64
	moves    int
	tooSmall bool
	events   []core.Event
}

// configPath stores the custom config path set via CLI
var configPath string
var speedPreset config.SpeedPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSpeedPreset sets the animation speed preset. Unknown names keep
// the configured speed.
func SetSpeedPreset(preset string) {
	p, err := config.ParseSpeedPreset(preset)
	if err != nil {
		p = ""
	}
	speedPreset = p
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.SolitaireConfig) *Game {
	return &Game{cfg: cfg, fixed: true}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Klondike"
}

// Reset loads the configuration, derives the layout and deals
// cfg.Seed. A zero Metrics value means a character-cell screen of
// ScreenW x ScreenH cells.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg

	if !g.fixed {
		loaded, err := config.LoadSolitaire(configPath)
		if err != nil {
			loaded = config.DefaultSolitaireConfig()
		}
		if speedPreset != "" {
			config.ApplySpeedPreset(&loaded, speedPreset)
		}
		g.cfg = loaded
	}

	g.applyMetrics()

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.seed = cfg.Seed
	g.deal()
}

// Resize adapts the layout to new screen dimensions without dealing
// again. A transfer in flight lands immediately.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	if g.board == nil {
		g.Reset(cfg)
		return
	}
	if _, ok := g.anim.Advance(math.Inf(1)); ok {
		g.moves++
	}

	g.runtime.ScreenW = cfg.ScreenW
	g.runtime.ScreenH = cfg.ScreenH
	g.runtime.Metrics = cfg.Metrics
	g.applyMetrics()
	g.anim = NewAnimator(g.cfg.Transit.TravelSpeed, g.layout.Fan)
	g.layout.Place(g.board)
}

// deal lays out a fresh board for the current seed.
func (g *Game) deal() {
	g.board = Deal(rand.New(rand.NewSource(g.seed)))
	g.anim = NewAnimator(g.cfg.Transit.TravelSpeed, g.layout.Fan)
	g.tick = 0
	g.moves = 0
	g.events = g.events[:0]
	g.layout.Place(g.board)
	g.reveal()
}

// applyMetrics derives the layout from the runtime metrics, falling
// back to character cells when none were supplied.
func (g *Game) applyMetrics() {
	layoutCfg := g.cfg.Layout
	g.metrics = g.runtime.Metrics
	if !g.metrics.Valid() {
		g.metrics = core.Metrics{
			ScreenW: float64(g.runtime.ScreenW),
			ScreenH: float64(g.runtime.ScreenH) * 2,
			CardW:   1,
			CardH:   g.cfg.Terminal.CardAspect,
		}
		layoutCfg = g.cfg.ForTerminal()
	}
	g.layout = NewLayout(g.metrics, layoutCfg)
	g.checkScreenSize()
}

// checkScreenSize pauses character-cell play when cards would be too
// narrow to label.
func (g *Game) checkScreenSize() {
	g.tooSmall = false
	if g.runtime.Metrics.Valid() {
		return
	}
	cardCells := int(g.layout.CardW * float64(g.runtime.ScreenW))
	g.tooSmall = cardCells < g.cfg.Terminal.MinCardWidth ||
		g.layout.CardH*float64(g.runtime.ScreenH) < 2
}

// Step advances the game by one tick. NewDeal draws a new seed from
// the game RNG; Redeal deals the current seed again.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionNewDeal):
		g.seed = g.rng.Int63()
		g.deal()
	case in.Has(core.ActionRedeal):
		g.deal()
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	dt := in.Elapsed
	if dt <= 0 {
		dt = 1 / float64(max(g.runtime.TickRate, 1))
	}
	events := g.Update(dt, in.Pointer)
	return core.StepResult{State: g.State(), Events: events}
}

// Update runs one tick of dt seconds: advance the transit, re-anchor
// resting cards, reveal column tops, then handle a pointer press unless
// a transit is in flight. It returns the events of this tick, valid
// until the next call.
func (g *Game) Update(dt float64, p core.Pointer) []core.Event {
	g.events = g.events[:0]
	g.tick++

	if landed, ok := g.anim.Advance(dt); ok {
		g.moves++
		g.emit(core.EventLand, landed.Dest.Name(), landed.Moving.Len())
	}

	g.layout.Place(g.board)
	g.reveal()

	if p.Pressed && !g.anim.Active() {
		g.press(p.Pos)
	}
	return g.events
}

// reveal turns the top card of every tableau column face-up. Cards
// below keep their state.
func (g *Game) reveal() {
	for _, p := range g.board.Tableau {
		if !p.Empty() {
			p.SetFaceUp(p.Len()-1, true)
		}
	}
}

// press resolves a pointer press at pos against the table.
func (g *Game) press(pos core.Vec2) {
	for col := range g.board.Tableau {
		if g.pressTableau(col, pos) {
			return
		}
	}

	if g.layout.CardRect(g.layout.ReserveAnchor()).Contains(pos) {
		g.pressReserve()
		return
	}

	if !g.board.Talon.Empty() {
		top := g.board.Talon.PeekTop()
		if g.layout.CardRect(top.Pos).Contains(pos) {
			g.pickup(Target{Kind: KindTalon}, g.board.Talon.Len()-1)
		}
	}
}

// pressTableau hit-tests column col from the visual top down. Every
// card under pos that starts a run is tried in turn, so a covered run
// still moves when the cards above it have nowhere to go. It reports
// whether a card of the column was hit.
func (g *Game) pressTableau(col int, pos core.Vec2) bool {
	p := g.board.Tableau[col]
	hit := false
	for i := p.Len() - 1; i >= 0; i-- {
		c := p.At(i)
		if !g.layout.CardRect(c.Pos).Contains(pos) {
			continue
		}
		hit = true
		if IsRun(p, i) && g.pickup(Target{KindTableau, col}, i) {
			return true
		}
	}
	return hit
}

// pickup detaches the cards [i, end) of the source pile and starts a
// transfer to the first accepting pile. Without one nothing changes.
// It reports whether a transfer started.
func (g *Game) pickup(from Target, i int) bool {
	src := g.board.Pile(from)
	bottom := src.At(i)
	to, ok := FindRunDestination(g.board, bottom, src.Len()-i, from)
	if !ok {
		return false
	}

	dest := g.board.Pile(to)
	anchor := g.layout.NextAnchor(g.board, to)
	moving := src.SplitAt(i)
	g.anim.Start(moving, bottom.Pos, anchor, dest)
	g.emit(core.EventPickup, src.Name(), moving.Len())
	return true
}

// pressReserve turns the top reserve card onto the talon, or returns
// the whole talon to the reserve face-down when the reserve is empty.
func (g *Game) pressReserve() {
	switch {
	case !g.board.Reserve.Empty():
		c := g.board.Reserve.Pop()
		c.FaceUp = true
		g.board.Talon.Append(c)
		g.emit(core.EventDraw, g.board.Reserve.Name(), 1)
	case !g.board.Talon.Empty():
		back := g.board.Talon.SplitAt(0)
		back.Each(func(_ int, c *cards.Card) {
			c.FaceUp = false
		})
		g.board.Reserve.AppendAll(back)
		g.emit(core.EventRecycle, g.board.Reserve.Name(), back.Len())
	default:
		return
	}
	g.layout.Place(g.board)
}

func (g *Game) emit(kind core.EventKind, pile string, n int) {
	g.events = append(g.events, core.Event{Kind: kind, Pile: pile, Cards: n})
}

// Destination is a legal target for a card together with the anchor
// the card would travel to.
type Destination struct {
	Target Target
	Pile   *cards.Pile
	Anchor core.Vec2
}

// FindDestination returns the first pile that accepts c, foundations
// before tableau, and the position c would rest at there.
func (g *Game) FindDestination(c cards.Card) (Destination, bool) {
	t, ok := FindDestination(g.board, c)
	if !ok {
		return Destination{}, false
	}
	return Destination{
		Target: t,
		Pile:   g.board.Pile(t),
		Anchor: g.layout.NextAnchor(g.board, t),
	}, true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:      g.moves,
		Foundation: g.board.FoundationCards(),
		InFlight:   g.anim.Active(),
		Paused:     g.tooSmall,
	}
}

// Seed returns the seed of the current deal.
func (g *Game) Seed() int64 {
	return g.seed
}

// Board exposes the resting piles for read-only inspection.
func (g *Game) Board() *Board {
	return g.board
}

// Layout returns the active pile layout.
func (g *Game) Layout() Layout {
	return g.layout
}

// CardCount returns the cards on the board plus those in flight.
func (g *Game) CardCount() int {
	n := g.board.Total()
	if t, ok := g.anim.Current(); ok {
		n += t.Moving.Len()
	}
	return n
}

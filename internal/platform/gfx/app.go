//go:build ebiten

package gfx

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-solitaire/internal/cards"
	"github.com/vovakirdan/tui-solitaire/internal/core"
	"github.com/vovakirdan/tui-solitaire/internal/games/klondike"
	"github.com/vovakirdan/tui-solitaire/internal/storage"
)

// App adapts a Klondike game to ebiten.Game.
type App struct {
	game    *klondike.Game
	opts    Options
	cfg     core.RuntimeConfig
	images  map[string]*ebiten.Image
	frame   core.InputFrame
	touches []ebiten.TouchID

	width, height int // current backbuffer size
	pendingW      int
	pendingH      int

	dealID    string
	dealStart time.Time
}

// NewApp deals cfg.Seed for a window of the option size.
func NewApp(game *klondike.Game, cfg core.RuntimeConfig, opts Options) *App {
	opts = opts.withDefaults()
	a := &App{
		game:   game,
		opts:   opts,
		cfg:    cfg,
		images: make(map[string]*ebiten.Image),
		frame:  core.NewInputFrame(),
		width:  opts.Width,
		height: opts.Height,
	}
	a.cfg.Metrics = cardMetrics(opts.Assets, a.width, a.height)
	a.game.Reset(a.cfg)
	a.startDeal()
	return a
}

// Run opens the window and blocks until it is closed.
func Run(game *klondike.Game, cfg core.RuntimeConfig, opts Options) error {
	app := NewApp(game, cfg, opts)

	ebiten.SetWindowSize(app.opts.Width, app.opts.Height)
	ebiten.SetWindowTitle(app.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(max(cfg.TickRate, 1))

	err := ebiten.RunGame(app)
	app.finishDeal()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update runs one simulation tick.
func (a *App) Update() error {
	if a.pendingW > 0 && (a.pendingW != a.width || a.pendingH != a.height) {
		a.width, a.height = a.pendingW, a.pendingH
		a.cfg.Metrics = cardMetrics(a.opts.Assets, a.width, a.height)
		a.game.Resize(a.cfg)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	redeal := false
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		a.frame.Set(core.ActionNewDeal)
		redeal = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.frame.Set(core.ActionRedeal)
		redeal = true
	}
	a.readPointer()

	a.frame.Elapsed = 1 / float64(ebiten.TPS())
	if redeal {
		a.finishDeal()
	}
	result := a.game.Step(a.frame)
	if redeal {
		a.startDeal()
	}
	for _, ev := range result.Events {
		a.opts.Logger.Debug("event", "kind", ev.Kind, "pile", ev.Pile, "cards", ev.Cards)
		if a.opts.Sound != nil {
			a.opts.Sound.Play(ev.Kind)
		}
	}
	a.frame.Clear()
	return nil
}

// readPointer folds the mouse and the first touch into the frame pointer.
func (a *App) readPointer() {
	x, y := ebiten.CursorPosition()
	pos := ToNormalized(x, y, a.width, a.height)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		a.frame.Press(pos)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		a.frame.Release(pos)
	default:
		a.frame.Move(pos)
	}

	a.touches = inpututil.AppendJustPressedTouchIDs(a.touches[:0])
	if len(a.touches) > 0 {
		tx, ty := ebiten.TouchPosition(a.touches[0])
		a.frame.Press(ToNormalized(tx, ty, a.width, a.height))
		return
	}
	a.touches = inpututil.AppendJustReleasedTouchIDs(a.touches[:0])
	if len(a.touches) > 0 {
		tx, ty := inpututil.TouchPositionInPreviousTick(a.touches[0])
		a.frame.Release(ToNormalized(tx, ty, a.width, a.height))
	}
}

// Draw paints the table: felt, empty slots, then cards back to front.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(feltColor)
	w, h := float64(a.width), float64(a.height)

	a.game.Slots(func(s klondike.Slot) {
		vector.StrokeRect(screen,
			float32(s.Rect.Pos.X*w), float32(s.Rect.Pos.Y*h),
			float32(s.Rect.W*w), float32(s.Rect.H*h),
			2, slotColor, true)
	})

	l := a.game.Layout()
	cw, ch := float32(l.CardW*w), float32(l.CardH*h)
	a.game.Sprites(func(s klondike.Sprite) {
		x, y := float32(s.Pos.X*w), float32(s.Pos.Y*h)
		if img := a.image(s.Asset); img != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(s.Scale, s.Scale)
			op.GeoM.Translate(float64(x), float64(y))
			screen.DrawImage(img, op)
		} else {
			drawPlainCard(screen, s.Card, x, y, cw, ch)
		}
		if s.InFlight {
			vector.StrokeRect(screen, x, y, cw, ch, 2, flightColor, true)
		}
	})
}

// drawPlainCard draws a card without its image.
func drawPlainCard(screen *ebiten.Image, c cards.Card, x, y, w, h float32) {
	fill := backColor
	if c.FaceUp {
		fill = faceColor
	}
	vector.DrawFilledRect(screen, x, y, w, h, fill, true)
	vector.StrokeRect(screen, x, y, w, h, 1, borderColor, true)
	if c.FaceUp {
		// The debug font is ASCII only, so suits are spelled out.
		label := c.Rank.String() + " " + c.Suit.String()
		ebitenutil.DebugPrintAt(screen, label, int(x)+4, int(y)+2)
	}
}

// image returns the texture for an asset, or nil when it cannot be loaded.
func (a *App) image(name string) *ebiten.Image {
	if a.opts.Assets == nil {
		return nil
	}
	if img, ok := a.images[name]; ok {
		return img
	}
	src, err := a.opts.Assets.Load(name)
	if err != nil {
		a.opts.Logger.Debug("missing card image", "asset", name, "error", err)
		a.images[name] = nil
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	a.images[name] = img
	return img
}

// Layout tracks the window size; the game is resized on the next Update.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.pendingW, a.pendingH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (a *App) startDeal() {
	a.dealID = storage.NewDealID()
	a.dealStart = time.Now()
	a.opts.Logger.Info("deal started", "seed", a.game.Seed(), "deal", a.dealID)
}

func (a *App) finishDeal() {
	state := a.game.State()
	if a.opts.Store == nil || state.Moves == 0 {
		return
	}
	_, err := a.opts.Store.SaveDeal(storage.DealRecord{
		DealID:          a.dealID,
		GameID:          a.game.ID(),
		Seed:            a.game.Seed(),
		Moves:           state.Moves,
		FoundationCards: state.Foundation,
		Duration:        int(time.Since(a.dealStart).Seconds()),
		Frontend:        "gui",
	})
	if err != nil {
		a.opts.Logger.Warn("could not save deal", "deal", a.dealID, "error", err)
	}
}

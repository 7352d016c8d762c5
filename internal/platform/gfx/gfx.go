// Package gfx runs a solitaire game in a graphical window with Ebitengine.
// The window build needs the 'ebiten' build tag; without it Run reports
// that the tag is missing.
package gfx

import (
	"errors"
	"image/color"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-solitaire/internal/assets"
	"github.com/vovakirdan/tui-solitaire/internal/core"
	"github.com/vovakirdan/tui-solitaire/internal/storage"
)

// ErrNoWindow is returned by Run in builds without the 'ebiten' tag.
var ErrNoWindow = errors.New("gfx: graphical window requires building with the 'ebiten' tag")

// Default window and card image sizes in pixels.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultCardW  = 100
	DefaultCardH  = 145
)

var (
	feltColor   = color.RGBA{R: 0x1b, G: 0x5e, B: 0x20, A: 0xff}
	slotColor   = color.RGBA{R: 0x9c, G: 0xcc, B: 0x65, A: 0xff}
	faceColor   = color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	backColor   = color.RGBA{R: 0x15, G: 0x65, B: 0xc0, A: 0xff}
	borderColor = color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}
	flightColor = color.RGBA{R: 0xff, G: 0xd5, B: 0x4f, A: 0xff}
)

// SoundPlayer plays a cue for a game event.
type SoundPlayer interface {
	Play(kind core.EventKind)
}

// Options configure the window frontend.
type Options struct {
	Title  string
	Width  int // Initial window width in pixels
	Height int // Initial window height in pixels

	// Assets supplies card images. Cards are drawn as labelled boxes
	// when it is nil or an image is missing.
	Assets assets.Provider

	Store  *storage.Store
	Logger *log.Logger
	Sound  SoundPlayer
}

// withDefaults fills unset options.
func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Solitaire"
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// ToNormalized maps a pixel position in a w by h window to normalized
// screen units.
func ToNormalized(x, y, w, h int) core.Vec2 {
	if w <= 0 || h <= 0 {
		return core.Vec2{}
	}
	return core.V(float64(x)/float64(w), float64(y)/float64(h))
}

// cardMetrics returns the metrics for a w by h window, taking the card
// size from the assets when available.
func cardMetrics(p assets.Provider, w, h int) core.Metrics {
	m := core.Metrics{
		ScreenW: float64(w),
		ScreenH: float64(h),
		CardW:   DefaultCardW,
		CardH:   DefaultCardH,
	}
	if p == nil {
		return m
	}
	if cw, ch, err := assets.CardSize(p); err == nil && cw > 0 && ch > 0 {
		m.CardW, m.CardH = float64(cw), float64(ch)
	}
	return m
}

package klondike

import (
	"errors"

	"github.com/vovakirdan/tui-solitaire/internal/cards"
	"github.com/vovakirdan/tui-solitaire/internal/core"
)

// ErrTransitBusy is the cause of the invariant panic raised when a
// transfer is started while another one is in flight.
var ErrTransitBusy = errors.New("klondike: transit already in flight")

// completionEpsilon absorbs float drift in accumulated progress.
const completionEpsilon = 1e-9

// Transit is a detached pile travelling from its source to a destination
// pile. The destination only receives the cards once Progress reaches 1.
type Transit struct {
	Moving   *cards.Pile
	From     core.Vec2
	To       core.Vec2
	Dest     *cards.Pile
	Progress float64
}

// Animator owns at most one transit. Active is the gate every other
// board mutation checks.
type Animator struct {
	speed float64 // Normalized units per second
	fan   float64 // Vertical step between moving cards
	cur   *Transit
}

// NewAnimator creates an idle animator.
func NewAnimator(speed, fan float64) *Animator {
	return &Animator{speed: speed, fan: fan}
}

// Active reports whether a transit is in flight.
func (a *Animator) Active() bool {
	return a.cur != nil
}

// Current returns a copy of the in-flight transit.
func (a *Animator) Current() (Transit, bool) {
	if a.cur == nil {
		return Transit{}, false
	}
	return *a.cur, true
}

// Start begins moving a detached pile from one anchor to another.
// Starting while a transit is in flight is a caller defect and panics.
func (a *Animator) Start(moving *cards.Pile, from, to core.Vec2, dest *cards.Pile) {
	if a.cur != nil {
		panic(&cards.InvariantError{
			Pile:   moving.Name(),
			Op:     "start-transit",
			Count:  moving.Len(),
			Detail: "another pile is in flight",
			Err:    ErrTransitBusy,
		})
	}
	a.cur = &Transit{Moving: moving, From: from, To: to, Dest: dest}
	a.place()
}

// Advance moves the transit dt seconds along its straight path at
// constant speed. When it arrives the moving cards are appended to the
// destination in order, the transit is cleared and returned with true.
func (a *Animator) Advance(dt float64) (Transit, bool) {
	t := a.cur
	if t == nil {
		return Transit{}, false
	}

	dist := t.From.Dist(t.To)
	if dist <= 0 {
		t.Progress = 1
	} else {
		t.Progress += a.speed * dt / dist
	}

	if t.Progress < 1-completionEpsilon {
		a.place()
		return Transit{}, false
	}

	t.Progress = 1
	a.place()
	t.Dest.AppendAll(t.Moving)
	a.cur = nil
	return *t, true
}

// place positions the moving cards along the path, fanned downwards.
func (a *Animator) place() {
	t := a.cur
	head := core.Lerp(t.From, t.To, t.Progress)
	t.Moving.Each(func(i int, c *cards.Card) {
		c.Pos = head.Add(core.V(0, float64(i)*a.fan))
	})
}

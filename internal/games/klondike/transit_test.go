package klondike

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-solitaire/internal/cards"
	"github.com/vovakirdan/tui-solitaire/internal/core"
)

func nearVec(a, b core.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestAnimatorCompletesAfterDistanceOverSpeed(t *testing.T) {
	dest := pileOf("dest", up(cards.Six, cards.Hearts))
	moving := pileOf("moving", up(cards.Five, cards.Clubs), up(cards.Four, cards.Hearts))
	from, to := core.V(0, 0), core.V(0.3, 0.4) // distance 0.5

	a := NewAnimator(1, 0.05)
	a.Start(moving, from, to, dest)
	if !a.Active() {
		t.Fatal("animator should be active after Start")
	}

	// 0.5 units at 1 unit/s takes 30 ticks of 1/60s.
	for tick := 1; tick <= 30; tick++ {
		landed, done := a.Advance(1.0 / 60)
		if tick < 30 {
			if done {
				t.Fatalf("transit completed early at tick %d", tick)
			}
			if dest.Len() != 1 {
				t.Fatalf("destination changed before completion at tick %d", tick)
			}
			continue
		}
		if !done {
			t.Fatalf("transit not complete after %d ticks", tick)
		}
		if landed.Dest != dest || landed.Moving.Len() != 2 {
			t.Errorf("landed transit = %+v", landed)
		}
	}

	if a.Active() {
		t.Error("animator should be idle after completion")
	}
	want := []cards.Card{up(cards.Six, cards.Hearts), up(cards.Five, cards.Clubs), up(cards.Four, cards.Hearts)}
	if dest.Len() != len(want) {
		t.Fatalf("dest = %s, want %d cards", dest, len(want))
	}
	for i, c := range want {
		if !dest.At(i).Same(c) {
			t.Errorf("dest[%d] = %s, want %s", i, dest.At(i), c)
		}
	}
	if !nearVec(dest.At(1).Pos, to) || !nearVec(dest.At(2).Pos, to.Add(core.V(0, 0.05))) {
		t.Errorf("landed positions = %v, %v", dest.At(1).Pos, dest.At(2).Pos)
	}
}

func TestAnimatorInterpolates(t *testing.T) {
	dest := cards.NewPile("dest")
	moving := pileOf("moving", up(cards.Five, cards.Clubs), up(cards.Four, cards.Hearts))

	a := NewAnimator(1, 0.05)
	a.Start(moving, core.V(0, 0), core.V(0.3, 0.4), dest)

	if _, done := a.Advance(0.25); done {
		t.Fatal("transit completed at half distance")
	}
	cur, ok := a.Current()
	if !ok {
		t.Fatal("Current() reports no transit")
	}
	if math.Abs(cur.Progress-0.5) > 1e-9 {
		t.Errorf("Progress = %v, want 0.5", cur.Progress)
	}
	if !nearVec(moving.At(0).Pos, core.V(0.15, 0.2)) {
		t.Errorf("head at %v, want (0.15, 0.2)", moving.At(0).Pos)
	}
	if !nearVec(moving.At(1).Pos, core.V(0.15, 0.25)) {
		t.Errorf("second card at %v, want (0.15, 0.25)", moving.At(1).Pos)
	}
}

func TestAnimatorZeroDistance(t *testing.T) {
	dest := cards.NewPile("dest")
	a := NewAnimator(1, 0.05)
	a.Start(pileOf("moving", up(cards.Ace, cards.Spades)), core.V(0.2, 0.2), core.V(0.2, 0.2), dest)

	if _, done := a.Advance(0); !done {
		t.Fatal("zero-distance transit should complete on the first advance")
	}
	if dest.Len() != 1 {
		t.Errorf("dest = %s", dest)
	}
}

func TestAnimatorIdleAdvance(t *testing.T) {
	a := NewAnimator(1, 0.05)
	if _, done := a.Advance(1); done {
		t.Error("idle animator reported completion")
	}
}

func TestAnimatorRejectsSecondStart(t *testing.T) {
	a := NewAnimator(1, 0.05)
	a.Start(pileOf("first", up(cards.Ace, cards.Spades)), core.V(0, 0), core.V(1, 0), cards.NewPile("a"))

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %v", r)
		}
		if !errors.Is(err, ErrTransitBusy) {
			t.Errorf("panic %v does not wrap ErrTransitBusy", err)
		}
		var inv *cards.InvariantError
		if !errors.As(err, &inv) || inv.Op != "start-transit" {
			t.Errorf("panic %v is not a start-transit InvariantError", err)
		}
	}()
	a.Start(pileOf("second", up(cards.Two, cards.Spades)), core.V(0, 0), core.V(1, 0), cards.NewPile("b"))
}

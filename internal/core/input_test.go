package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionNewDeal) {
		t.Fatal("new frame should have no actions")
	}

	f.Set(ActionNewDeal)
	if !f.Has(ActionNewDeal) {
		t.Error("Has(ActionNewDeal) = false after Set")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on a zero frame should allocate the action map")
	}
}

func TestInputFramePointerEdges(t *testing.T) {
	f := NewInputFrame()
	f.Press(V(0.5, 0.5))

	if !f.Pointer.Pressed || !f.Pointer.Down {
		t.Fatalf("after Press: %+v", f.Pointer)
	}

	f.Clear()
	if f.Pointer.Pressed {
		t.Error("Clear should reset the pressed edge")
	}
	if !f.Pointer.Down {
		t.Error("Clear should keep the down level")
	}
	if f.Pointer.Pos != V(0.5, 0.5) {
		t.Errorf("Clear should keep the position, got %v", f.Pointer.Pos)
	}

	f.Release(V(0.6, 0.5))
	if !f.Pointer.Released || f.Pointer.Down {
		t.Errorf("after Release: %+v", f.Pointer)
	}
}

func TestActionString(t *testing.T) {
	if ActionRedeal.String() != "Redeal" {
		t.Errorf("ActionRedeal.String() = %q", ActionRedeal.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}

package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(0.25, 0.5)
	b := V(0.5, 0.25)

	if got := a.Add(b); got != V(0.75, 0.75) {
		t.Errorf("Add() = %v, expected (0.75, 0.75)", got)
	}
	if got := a.Sub(b); got != V(-0.25, 0.25) {
		t.Errorf("Sub() = %v, expected (-0.25, 0.25)", got)
	}
	if got := a.Scale(2); got != V(0.5, 1) {
		t.Errorf("Scale() = %v, expected (0.5, 1)", got)
	}
	if got := V(0.3, 0.4).Len(); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Len() = %v, expected 0.5", got)
	}
	if got := V(0, 0).Dist(V(0, 0.75)); got != 0.75 {
		t.Errorf("Dist() = %v, expected 0.75", got)
	}
}

func TestLerp(t *testing.T) {
	a := V(0, 0)
	b := V(1, 0.5)

	tests := []struct {
		t        float64
		expected Vec2
	}{
		{0, V(0, 0)},
		{0.5, V(0.5, 0.25)},
		{1, V(1, 0.5)},
	}

	for _, tc := range tests {
		if got := Lerp(a, b, tc.t); got != tc.expected {
			t.Errorf("Lerp(t=%v) = %v, expected %v", tc.t, got, tc.expected)
		}
	}
}

func TestRectFContains(t *testing.T) {
	r := RectF{Pos: V(0.25, 0.25), W: 0.25, H: 0.5}

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", V(0.3, 0.5), true},
		{"top-left corner", V(0.25, 0.25), true},
		{"right edge (exclusive)", V(0.5, 0.5), false},
		{"bottom edge (exclusive)", V(0.3, 0.75), false},
		{"outside", V(0.1, 0.1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectFCells(t *testing.T) {
	r := RectF{Pos: V(0.25, 0.5), W: 0.5, H: 0.25}
	got := r.Cells(80, 24)
	expected := NewRect(20, 12, 40, 6)

	if got != expected {
		t.Errorf("Cells(80, 24) = %+v, expected %+v", got, expected)
	}
}

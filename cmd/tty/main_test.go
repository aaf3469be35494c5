package main

import (
	"testing"
	"time"

	"go-galaga/internal/app"
	"go-galaga/internal/input"
)

func TestPollInputHoldWindow(t *testing.T) {
	start := time.Now()
	g := &TTYGame{lastSeen: map[key]time.Time{
		keyLeft: start,
		keyFire: start.Add(-time.Second),
	}}
	g.confirm = true

	got := g.pollInput(start.Add(holdWindow / 2))
	want := input.State{Left: true, Confirm: true}
	if got != want {
		t.Errorf("pollInput = %+v, want %+v", got, want)
	}

	got = g.pollInput(start.Add(2 * holdWindow))
	if got != (input.State{}) {
		t.Errorf("keys still held after the window: %+v", got)
	}
}

func TestCellScaling(t *testing.T) {
	g := &TTYGame{width: 80, height: 30}
	v := &app.View{Width: 800, Height: 600}

	tests := []struct {
		x, y         float64
		wantX, wantY int
	}{
		{0, 0, 0, 0},
		{400, 300, 40, 15},
		{799, 599, 79, 29},
	}
	for _, tt := range tests {
		x, y := g.cell(v, tt.x, tt.y)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("cell(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, x, y, tt.wantX, tt.wantY)
		}
	}
}

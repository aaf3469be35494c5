package geom

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 10, H: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 15, Y: 15, W: 10, H: 10}, true},
		{"contained", Rect{X: 12, Y: 12, W: 2, H: 2}, true},
		{"edge touching right", Rect{X: 20, Y: 10, W: 5, H: 5}, false},
		{"edge touching bottom", Rect{X: 10, Y: 20, W: 5, H: 5}, false},
		{"apart", Rect{X: 100, Y: 100, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects() is not symmetric for %v", tt.other)
			}
		})
	}
}

func TestMoveTowards(t *testing.T) {
	t.Run("snaps within threshold", func(t *testing.T) {
		got := MoveTowards(V(0, 0), V(1.5, 1), 1, 2)
		if got != V(1.5, 1) {
			t.Errorf("MoveTowards() = %v, want exact target", got)
		}
	})

	t.Run("steps along direction", func(t *testing.T) {
		got := MoveTowards(V(0, 0), V(30, 40), 1, 2)
		if math.Abs(got.X()-0.6) > 1e-9 || math.Abs(got.Y()-0.8) > 1e-9 {
			t.Errorf("MoveTowards() = %v, want (0.6, 0.8)", got)
		}
	})
}

func TestClamp(t *testing.T) {
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3) = %v", got)
	}
	if got := Clamp(13, 0, 10); got != 10 {
		t.Errorf("Clamp(13) = %v", got)
	}
	if got := Clamp(4, 0, 10); got != 4 {
		t.Errorf("Clamp(4) = %v", got)
	}
}

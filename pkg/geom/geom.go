// pkg/geom/geom.go
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a screen-space point or direction. Origin top-left, +Y down.
type Vec2 = mgl64.Vec2

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	X, Y, W, H float64
}

// RectAt builds a box with its top-left corner at pos.
func RectAt(pos Vec2, w, h float64) Rect {
	return Rect{X: pos.X(), Y: pos.Y(), W: w, H: h}
}

// Intersects reports whether the two boxes overlap with positive area.
// Boxes that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// CenterX returns the horizontal centre of the box.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Bottom returns the lower edge of the box.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// MoveTowards steps from `from` to `to` by at most `step` along the straight
// line between them. When the remaining distance is within snap the result
// is exactly `to`.
func MoveTowards(from, to Vec2, step, snap float64) Vec2 {
	delta := to.Sub(from)
	dist := delta.Len()
	if dist <= snap {
		return to
	}
	return from.Add(delta.Mul(step / dist))
}

// Distance between two points.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}


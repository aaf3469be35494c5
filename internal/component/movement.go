// component/movement.go
package component

import "go-galaga/pkg/geom"

// Body — позиция и фиксированные размеры сущности.
type Body struct {
	Pos    geom.Vec2
	Width  float64
	Height float64
}

// BoundingBox returns the collision rectangle at the current position.
func (b Body) BoundingBox() geom.Rect {
	return geom.RectAt(b.Pos, b.Width, b.Height)
}

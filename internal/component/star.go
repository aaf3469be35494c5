package component

import "go-galaga/pkg/geom"

// Star — декоративная звезда фона.
type Star struct {
	Pos   geom.Vec2
	Speed float64
	Size  float64
}

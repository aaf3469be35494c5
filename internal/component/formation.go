package component

import "go-galaga/pkg/geom"

// Formation owns the live enemies of one wave and the shared offset applied
// to every enemy still in formation.
type Formation struct {
	Enemies     []*Enemy
	Offset      geom.Vec2
	Direction   float64 // направление покачивания по X: +1 или -1
	AttackTimer int
}

// IsEmpty reports whether the wave is cleared.
func (f *Formation) IsEmpty() bool {
	return len(f.Enemies) == 0
}

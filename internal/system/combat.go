package system

import (
	"go-galaga/internal/component"
)

// CombatSystem resolves the hostile side of a frame: enemy bullets and
// enemy bodies against the player ship. Order matters: bullets are tested
// first, so a bullet hit opens the invulnerability window before the
// overlap test runs in the same frame.
type CombatSystem struct {
	players    *PlayerSystem
	formations *FormationSystem
}

func NewCombatSystem(players *PlayerSystem, formations *FormationSystem) *CombatSystem {
	return &CombatSystem{players: players, formations: formations}
}

// EnemyFire tests every active enemy bullet against the ship. A bullet is
// consumed only when its hit registered. Returns true if the ship ran out
// of lives.
func (s *CombatSystem) EnemyFire(bullets []component.Projectile, p *component.Player) bool {
	box := p.BoundingBox()
	dead := false
	for i := range bullets {
		b := &bullets[i]
		if !b.Active || !b.BoundingBox().Intersects(box) {
			continue
		}
		if s.players.Hit(p) {
			b.Active = false
			if p.Lives <= 0 {
				dead = true
			}
		}
	}
	return dead
}

// Ram handles enemies overlapping the ship. The enemy survives the contact.
// Returns true if the ship ran out of lives.
func (s *CombatSystem) Ram(f *component.Formation, p *component.Player) bool {
	if !s.formations.CheckPlayerCollision(f, p.BoundingBox()) {
		return false
	}
	return s.players.Hit(p) && p.Lives <= 0
}

package system

import (
	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/internal/entity"
	"go-galaga/internal/event"
	"go-galaga/internal/types"
	"go-galaga/internal/utils"
	"go-galaga/pkg/geom"
)

// ShotRequest asks the controller to materialise one enemy bullet.
type ShotRequest struct {
	X, Y float64
}

// FormationSystem drives a wave: the shared sway, attacker selection,
// shot throttling and the collision queries against the live enemies.
type FormationSystem struct {
	cfg             config.Config
	enemies         *EnemySystem
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewFormationSystem(cfg config.Config, enemies *EnemySystem, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *FormationSystem {
	return &FormationSystem{
		cfg:             cfg,
		enemies:         enemies,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Spawn builds a full grid. The first BossRows rows are bosses.
func (s *FormationSystem) Spawn(newID func() types.EntityID) *component.Formation {
	fc := s.cfg.Formation
	f := &component.Formation{
		Enemies:   make([]*component.Enemy, 0, fc.Rows*fc.Cols),
		Direction: 1,
	}
	for row := 0; row < fc.Rows; row++ {
		kind := component.Normal
		if row < fc.BossRows {
			kind = component.Boss
		}
		for col := 0; col < fc.Cols; col++ {
			home := geom.V(fc.StartX+float64(col)*fc.SpacingX, fc.StartY+float64(row)*fc.SpacingY)
			f.Enemies = append(f.Enemies, s.enemies.Spawn(newID(), home, kind))
		}
	}
	return f
}

// Update runs one frame of the wave and returns the shots that survived
// the probability filter.
func (s *FormationSystem) Update(f *component.Formation) []ShotRequest {
	s.sway(f)

	var shots []ShotRequest
	for _, e := range f.Enemies {
		if s.enemies.Update(e, f.Offset) && s.rng.Chance(s.cfg.Enemy.ShootChance) {
			box := e.BoundingBox()
			shots = append(shots, ShotRequest{X: box.CenterX(), Y: box.Bottom()})
		}
	}

	s.sweep(f)
	s.maybeLaunchAttack(f)
	return shots
}

// sway moves the shared offset sideways; at ±SwayLimit it reverses and
// steps the whole formation down once.
func (s *FormationSystem) sway(f *component.Formation) {
	fc := s.cfg.Formation
	f.Offset[0] += f.Direction * fc.SwayStep
	if f.Offset.X() >= fc.SwayLimit || f.Offset.X() <= -fc.SwayLimit {
		f.Direction = -f.Direction
		f.Offset[1] += fc.DescendStep
	}
}

func (s *FormationSystem) sweep(f *component.Formation) {
	f.Enemies = entity.Sweep(f.Enemies, func(e **component.Enemy) bool { return (*e).Active })
}

func (s *FormationSystem) maybeLaunchAttack(f *component.Formation) {
	f.AttackTimer++
	if f.AttackTimer <= s.cfg.Formation.AttackInterval || f.IsEmpty() {
		return
	}
	f.AttackTimer = 0
	if !s.rng.Chance(s.cfg.Formation.AttackChance) {
		return
	}

	var candidates []*component.Enemy
	for _, e := range f.Enemies {
		if e.Mode == component.InFormation {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return
	}
	s.enemies.StartAttack(candidates[s.rng.Intn(len(candidates))])
}

// CheckCollisions tests active player bullets against live enemies. A bullet
// destroys at most one enemy. Destroyed enemies leave the live set before
// returning. The result is the score earned.
func (s *FormationSystem) CheckCollisions(f *component.Formation, bullets []component.Projectile) int {
	score := 0
	for i := range bullets {
		b := &bullets[i]
		if !b.Active {
			continue
		}
		box := b.BoundingBox()
		for _, e := range f.Enemies {
			if !e.Active || !box.Intersects(e.BoundingBox()) {
				continue
			}
			e.Active = false
			b.Active = false
			points := e.Kind.Spec(s.cfg.Enemy).Score
			score += points
			s.eventDispatcher.Emit(event.EnemyDestroyed, event.EnemyDestroyedData{Kind: e.Kind, Score: points})
			break
		}
	}
	s.sweep(f)
	return score
}

// CheckPlayerCollision reports whether any live enemy overlaps the box.
// It does not change any state.
func (s *FormationSystem) CheckPlayerCollision(f *component.Formation, player geom.Rect) bool {
	for _, e := range f.Enemies {
		if e.Active && e.BoundingBox().Intersects(player) {
			return true
		}
	}
	return false
}

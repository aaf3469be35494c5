package system

import (
	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/internal/event"
	"go-galaga/internal/types"
	"go-galaga/internal/utils"
	"go-galaga/pkg/geom"
)

// EnemySystem implements the per-enemy state machine: follow the formation
// slot, or dive once attacking.
type EnemySystem struct {
	cfg             config.Config
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewEnemySystem(cfg config.Config, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *EnemySystem {
	return &EnemySystem{cfg: cfg, rng: rng, eventDispatcher: eventDispatcher}
}

// Spawn creates an enemy sitting on its home slot.
func (s *EnemySystem) Spawn(id types.EntityID, home geom.Vec2, kind component.EnemyKind) *component.Enemy {
	spec := kind.Spec(s.cfg.Enemy)
	timer := s.cfg.Enemy.InitialShootTimer
	return &component.Enemy{
		Body: component.Body{
			Pos:    home,
			Width:  spec.Width,
			Height: spec.Height,
		},
		ID:         id,
		Home:       home,
		Kind:       kind,
		Mode:       component.InFormation,
		AttackDir:  s.rng.Sign(),
		ShootTimer: s.rng.IntRange(timer.Min, timer.Max),
		Active:     true,
	}
}

// Update advances one enemy by a frame. The result is the one-frame shoot
// signal: true only on the frame the shoot timer elapses. Callers must act
// on it immediately, it is not stored anywhere.
func (s *EnemySystem) Update(e *component.Enemy, offset geom.Vec2) bool {
	if !e.Active {
		return false
	}

	if e.Mode == component.Attacking {
		s.dive(e)
		return false
	}

	target := e.Home.Add(offset)
	e.Pos = geom.MoveTowards(e.Pos, target, s.cfg.Enemy.FormationSpeed, s.cfg.Enemy.SnapDistance)

	e.ShootTimer--
	if e.ShootTimer <= 0 {
		r := s.cfg.Enemy.ShootTimer
		e.ShootTimer = s.rng.IntRange(r.Min, r.Max)
		return true
	}
	return false
}

func (s *EnemySystem) dive(e *component.Enemy) {
	speed := s.cfg.Enemy.AttackSpeed
	e.Pos[0] += e.AttackDir * speed
	e.Pos[1] += speed

	m := s.cfg.Enemy.OffscreenMargin
	x, y := e.Pos.X(), e.Pos.Y()
	if x < -m || x > float64(s.cfg.Screen.Width)+m || y < -m || y > float64(s.cfg.Screen.Height)+m {
		e.Active = false
	}
}

// StartAttack switches the enemy into its dive. Calling it again is a no-op.
func (s *EnemySystem) StartAttack(e *component.Enemy) {
	if e.Mode == component.Attacking {
		return
	}
	e.Mode = component.Attacking
	s.eventDispatcher.Emit(event.AttackStarted, e.ID)
}

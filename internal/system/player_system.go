// internal/system/player_system.go
package system

import (
	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/internal/event"
	"go-galaga/internal/input"
	"go-galaga/pkg/geom"
	"math"
)

// PlayerSystem отвечает за корабль игрока: движение, стрельбу и попадания.
type PlayerSystem struct {
	cfg             config.Config
	projectiles     *ProjectileSystem
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(cfg config.Config, projectiles *ProjectileSystem, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{
		cfg:             cfg,
		projectiles:     projectiles,
		eventDispatcher: eventDispatcher,
	}
}

// Spawn places a fresh ship centred at the bottom of the screen.
func (s *PlayerSystem) Spawn() *component.Player {
	pc := s.cfg.Player
	w, h := float64(s.cfg.Screen.Width), float64(s.cfg.Screen.Height)
	return &component.Player{
		Body: component.Body{
			Pos:    geom.V(math.Floor(w/2-pc.Width/2), h-pc.Height-pc.BottomMargin),
			Width:  pc.Width,
			Height: pc.Height,
		},
		Speed:   pc.Speed,
		Lives:   pc.Lives,
		Bullets: make([]component.Projectile, 0, 16),
	}
}

// Update runs one frame of the ship: move and clamp, cooldown, fire,
// advance owned bullets, then tick invulnerability.
func (s *PlayerSystem) Update(p *component.Player, in input.State) {
	if in.Left {
		p.Pos[0] -= p.Speed
	}
	if in.Right {
		p.Pos[0] += p.Speed
	}
	p.Pos[0] = geom.Clamp(p.Pos.X(), 0, float64(s.cfg.Screen.Width)-p.Width)

	if p.ShootCooldown > 0 {
		p.ShootCooldown--
	}
	if in.Fire && p.ShootCooldown == 0 {
		s.fire(p)
		p.ShootCooldown = s.cfg.Player.FireCooldown
	}

	p.Bullets = s.projectiles.Update(p.Bullets)

	if p.Invulnerable > 0 {
		p.Invulnerable--
	}
}

func (s *PlayerSystem) fire(p *component.Player) {
	x := p.Pos.X() + math.Floor(p.Width/2) - 1
	p.Bullets = append(p.Bullets, s.projectiles.NewPlayerBullet(x, p.Pos.Y()))
	s.eventDispatcher.Emit(event.PlayerFired, nil)
}

// Hit costs a life unless the ship is inside its invulnerability window.
// It returns whether the hit registered.
func (s *PlayerSystem) Hit(p *component.Player) bool {
	if p.Invulnerable > 0 {
		return false
	}
	p.Lives--
	p.Invulnerable = s.cfg.Player.InvulnerableFrames
	s.eventDispatcher.Emit(event.PlayerHit, event.PlayerHitData{LivesLeft: p.Lives})
	return true
}

// ActiveBullets returns the ship's projectiles that can still collide.
// The returned slice shares storage with the player, so collisions that
// deactivate a bullet are seen by the owner.
func (s *PlayerSystem) ActiveBullets(p *component.Player) []component.Projectile {
	p.Bullets = Purge(p.Bullets)
	return p.Bullets
}

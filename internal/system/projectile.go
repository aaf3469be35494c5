// internal/system/projectile.go
package system

import (
	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/internal/entity"
	"go-galaga/pkg/geom"
)

// ProjectileSystem двигает снаряды по вертикали и гасит вылетевшие за экран.
type ProjectileSystem struct {
	cfg config.Config
}

func NewProjectileSystem(cfg config.Config) *ProjectileSystem {
	return &ProjectileSystem{cfg: cfg}
}

// NewPlayerBullet creates an upward projectile with its top-left at (x, y).
func (s *ProjectileSystem) NewPlayerBullet(x, y float64) component.Projectile {
	return component.Projectile{
		Body: component.Body{
			Pos:    geom.V(x, y),
			Width:  s.cfg.Player.BulletWidth,
			Height: s.cfg.Player.BulletHeight,
		},
		Velocity: -s.cfg.Player.BulletSpeed,
		Owner:    component.PlayerOwned,
		Active:   true,
	}
}

// NewEnemyBullet creates a downward projectile with its top-left at (x, y).
func (s *ProjectileSystem) NewEnemyBullet(x, y float64) component.Projectile {
	return component.Projectile{
		Body: component.Body{
			Pos:    geom.V(x, y),
			Width:  s.cfg.Enemy.BulletWidth,
			Height: s.cfg.Enemy.BulletHeight,
		},
		Velocity: s.cfg.Enemy.BulletSpeed,
		Owner:    component.EnemyOwned,
		Active:   true,
	}
}

// Step advances one projectile by a frame. The live band is the open
// interval (0, height): reaching either edge deactivates it.
func (s *ProjectileSystem) Step(p *component.Projectile) {
	if !p.Active {
		return
	}
	p.Pos[1] += p.Velocity
	y := p.Pos.Y()
	if y <= 0 || y >= float64(s.cfg.Screen.Height) {
		p.Active = false
	}
}

// Update steps every projectile and purges the inactive ones.
func (s *ProjectileSystem) Update(list []component.Projectile) []component.Projectile {
	for i := range list {
		s.Step(&list[i])
	}
	return Purge(list)
}

// Purge drops inactive projectiles (ones consumed by a collision included).
func Purge(list []component.Projectile) []component.Projectile {
	return entity.Sweep(list, func(p *component.Projectile) bool { return p.Active })
}

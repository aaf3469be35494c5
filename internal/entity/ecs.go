// internal/entity/ecs.go
package entity

import (
	"go-galaga/internal/component"
	"go-galaga/internal/types"
)

// World — владелец всех популяций сущностей одной симуляции.
// Изменяется только потоком симуляции, рендер получает копии.
type World struct {
	NextID       types.EntityID
	Player       *component.Player
	Formation    *component.Formation
	EnemyBullets []component.Projectile
	Stars        []component.Star
}

func NewWorld() *World {
	return &World{
		NextID:       1,
		EnemyBullets: make([]component.Projectile, 0, 64),
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Reset drops every per-game population. Stars survive between games.
func (w *World) Reset() {
	w.Player = nil
	w.Formation = nil
	w.EnemyBullets = w.EnemyBullets[:0]
}

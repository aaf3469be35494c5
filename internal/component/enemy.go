package component

import (
	"go-galaga/internal/config"
	"go-galaga/internal/types"
	"go-galaga/pkg/geom"
)

// EnemyKind is a closed set of enemy variants. Variants differ only in data.
type EnemyKind int

const (
	Normal EnemyKind = iota
	Boss
)

func (k EnemyKind) String() string {
	if k == Boss {
		return "Boss"
	}
	return "Normal"
}

// Spec returns the per-variant size and score from the configuration.
func (k EnemyKind) Spec(cfg config.Enemy) config.KindSpec {
	if k == Boss {
		return cfg.Boss
	}
	return cfg.Normal
}

// EnemyMode — состояние конечного автомата врага.
type EnemyMode int

const (
	InFormation EnemyMode = iota
	Attacking               // переход необратим
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	Body
	ID         types.EntityID
	Home       geom.Vec2 // слот в строю, фиксирован при создании
	Kind       EnemyKind
	Mode       EnemyMode
	AttackDir  float64 // -1 или +1, выбирается при создании
	ShootTimer int
	Active     bool
}

package system

import (
	"io"
	"log"

	"go-galaga/internal/config"
	"go-galaga/internal/entity"
	"go-galaga/internal/event"
	"go-galaga/internal/utils"
)

type testRig struct {
	cfg        config.Config
	events     *event.Dispatcher
	world      *entity.World
	rng        *utils.PRNGService
	projectile *ProjectileSystem
	players    *PlayerSystem
	enemies    *EnemySystem
	formations *FormationSystem
	combat     *CombatSystem
	waves      *WaveSystem
}

func newRig(cfg config.Config) *testRig {
	r := &testRig{
		cfg:    cfg,
		events: event.NewDispatcher(),
		world:  entity.NewWorld(),
		rng:    utils.NewPRNGService(42),
	}
	r.projectile = NewProjectileSystem(cfg)
	r.players = NewPlayerSystem(cfg, r.projectile, r.events)
	r.enemies = NewEnemySystem(cfg, r.rng, r.events)
	r.formations = NewFormationSystem(cfg, r.enemies, r.rng, r.events)
	r.combat = NewCombatSystem(r.players, r.formations)
	r.waves = NewWaveSystem(r.formations, cfg.Wave.GraceFrames, r.events, log.New(io.Discard, "", 0))
	return r
}

// quietConfig disables every random source of enemy fire and attacks.
func quietConfig() config.Config {
	cfg := config.Default()
	cfg.Enemy.ShootChance = 0
	cfg.Formation.AttackChance = 0
	return cfg
}

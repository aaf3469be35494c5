// internal/app/game.go
package app

import (
	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/internal/entity"
	"go-galaga/internal/event"
	"go-galaga/internal/input"
	"go-galaga/internal/state"
	"go-galaga/internal/system"
	"go-galaga/internal/utils"
	"log"
)

// Game is the simulation controller. It is driven by the host once per
// frame via Update and exposes read-only state through View. It is not
// safe for concurrent use; renderers on other goroutines must work from
// the View copy.
type Game struct {
	Config          config.Config
	World           *entity.World
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	ProjectileSystem *system.ProjectileSystem
	PlayerSystem     *system.PlayerSystem
	EnemySystem      *system.EnemySystem
	FormationSystem  *system.FormationSystem
	CombatSystem     *system.CombatSystem
	WaveSystem       *system.WaveSystem
	StarfieldSystem  *system.StarfieldSystem
	ScoreSystem      *system.ScoreSystem

	stateMachine *state.StateMachine
	logger       *log.Logger
	frame        uint64
}

// Option customises a Game at construction.
type Option func(*Game)

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithDispatcher lets the host subscribe before the first frame.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(g *Game) { g.EventDispatcher = d }
}

// NewGame wires the systems for one independent simulation. The
// configuration is assumed valid (see config.Validate).
func NewGame(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		Config:          cfg,
		World:           entity.NewWorld(),
		EventDispatcher: event.NewDispatcher(),
		Rng:             utils.NewPRNGService(cfg.Seed),
		logger:          log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.ProjectileSystem = system.NewProjectileSystem(cfg)
	g.PlayerSystem = system.NewPlayerSystem(cfg, g.ProjectileSystem, g.EventDispatcher)
	g.EnemySystem = system.NewEnemySystem(cfg, g.Rng, g.EventDispatcher)
	g.FormationSystem = system.NewFormationSystem(cfg, g.EnemySystem, g.Rng, g.EventDispatcher)
	g.CombatSystem = system.NewCombatSystem(g.PlayerSystem, g.FormationSystem)
	g.WaveSystem = system.NewWaveSystem(g.FormationSystem, cfg.Wave.GraceFrames, g.EventDispatcher, g.logger)
	g.StarfieldSystem = system.NewStarfieldSystem(cfg, g.Rng)
	g.ScoreSystem = &system.ScoreSystem{}

	g.World.Stars = g.StarfieldSystem.Spawn()

	g.stateMachine = state.NewStateMachine()
	g.stateMachine.SetState(state.NewMenuState(g.stateMachine, g))
	return g
}

// Update advances the simulation by exactly one frame.
func (g *Game) Update(in input.State) {
	g.frame++
	g.stateMachine.Update(in)
}

// Phase returns the top-level mode.
func (g *Game) Phase() component.Phase {
	return g.stateMachine.Phase()
}

// Frame returns the number of steps simulated so far.
func (g *Game) Frame() uint64 {
	return g.frame
}

// StartGame resets score, player, formation and enemy bullets.
func (g *Game) StartGame() {
	g.ScoreSystem.Reset()
	g.World.Reset()
	g.World.Player = g.PlayerSystem.Spawn()
	g.WaveSystem.Start(g.World)
	g.logger.Printf("game started (seed %d)", g.Rng.Seed())
	g.EventDispatcher.Emit(event.GameStarted, nil)
}

// StepPlaying runs one Playing frame in a fixed order: stars, player,
// formation, enemy bullet spawn and update, player fire, enemy fire,
// ramming, wave check. It reports whether the player ran out of lives.
func (g *Game) StepPlaying(in input.State) bool {
	w := g.World
	g.StarfieldSystem.Update(w.Stars)

	g.PlayerSystem.Update(w.Player, in)

	for _, shot := range g.FormationSystem.Update(w.Formation) {
		w.EnemyBullets = append(w.EnemyBullets, g.ProjectileSystem.NewEnemyBullet(shot.X, shot.Y))
		g.EventDispatcher.Emit(event.EnemyFired, nil)
	}
	w.EnemyBullets = g.ProjectileSystem.Update(w.EnemyBullets)

	gained := g.FormationSystem.CheckCollisions(w.Formation, g.PlayerSystem.ActiveBullets(w.Player))
	g.ScoreSystem.Add(gained)

	dead := g.CombatSystem.EnemyFire(w.EnemyBullets, w.Player)
	w.EnemyBullets = system.Purge(w.EnemyBullets)
	if g.CombatSystem.Ram(w.Formation, w.Player) {
		dead = true
	}

	g.WaveSystem.Update(w)
	return dead
}

// EndGame is called on entering GameOver.
func (g *Game) EndGame() {
	if g.ScoreSystem.Commit() {
		g.logger.Printf("new high score: %d", g.ScoreSystem.HighScore)
	}
	g.logger.Printf("game over: score %d, wave %d", g.ScoreSystem.Score, g.WaveSystem.Number)
	g.EventDispatcher.Emit(event.GameOver, event.GameOverData{
		Score: g.ScoreSystem.Score,
		Wave:  g.WaveSystem.Number,
	})
}

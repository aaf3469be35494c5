package app

import (
	"io"
	"log"
	"reflect"
	"testing"

	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/internal/event"
	"go-galaga/internal/input"
	"go-galaga/pkg/geom"
)

func quietConfig() config.Config {
	cfg := config.Default()
	cfg.Enemy.ShootChance = 0
	cfg.Formation.AttackChance = 0
	cfg.Seed = 1
	return cfg
}

func newTestGame(t *testing.T, cfg config.Config) *Game {
	t.Helper()
	return NewGame(cfg, WithLogger(log.New(io.Discard, "", 0)))
}

// startPlaying moves a fresh game from the menu into Playing and releases
// the confirm key.
func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	g.Update(input.State{Confirm: true})
	if g.Phase() != component.PlayingPhase {
		t.Fatalf("phase = %v, want Playing", g.Phase())
	}
}

func TestNewGameStartsInMenu(t *testing.T) {
	g := newTestGame(t, quietConfig())
	if g.Phase() != component.MenuPhase {
		t.Fatalf("phase = %v, want Menu", g.Phase())
	}
	g.Update(input.State{Left: true})
	if g.Phase() != component.MenuPhase {
		t.Error("menu left without fire/confirm")
	}
	v := g.View()
	if v.HasPlayer || len(v.Enemies) != 0 || len(v.Stars) != 100 {
		t.Errorf("menu view = player %v, %d enemies, %d stars", v.HasPlayer, len(v.Enemies), len(v.Stars))
	}
}

func TestStartGame(t *testing.T) {
	g := newTestGame(t, quietConfig())
	started := 0
	g.EventDispatcher.Subscribe(event.GameStarted, event.ListenerFunc(func(event.Event) { started++ }))

	startPlaying(t, g)

	if started != 1 {
		t.Errorf("GameStarted emitted %d times", started)
	}
	if g.World.Player == nil || g.World.Player.Lives != 3 {
		t.Fatalf("player = %+v", g.World.Player)
	}
	if n := len(g.World.Formation.Enemies); n != 50 {
		t.Errorf("enemies = %d, want 50", n)
	}
	if g.ScoreSystem.Score != 0 || g.WaveSystem.Number != 1 || len(g.World.EnemyBullets) != 0 {
		t.Errorf("score=%d wave=%d enemy bullets=%d", g.ScoreSystem.Score, g.WaveSystem.Number, len(g.World.EnemyBullets))
	}
}

func TestLastLifeEnemyBulletEndsGameSameFrame(t *testing.T) {
	g := newTestGame(t, quietConfig())
	startPlaying(t, g)

	p := g.World.Player
	p.Lives = 1
	p.Invulnerable = 0
	speed := g.Config.Enemy.BulletSpeed
	g.World.EnemyBullets = append(g.World.EnemyBullets,
		g.ProjectileSystem.NewEnemyBullet(p.Pos.X()+5, p.Pos.Y()+5-speed))

	g.Update(input.State{})

	if p.Lives != 0 {
		t.Errorf("lives = %d, want 0", p.Lives)
	}
	if g.Phase() != component.GameOverPhase {
		t.Errorf("phase = %v, want GameOver on the same frame", g.Phase())
	}
}

func TestWaveReplacedOnLastKill(t *testing.T) {
	g := newTestGame(t, quietConfig())
	startPlaying(t, g)

	f := g.World.Formation
	last := f.Enemies[0]
	for _, e := range f.Enemies[1:] {
		e.Active = false
	}
	// after this frame the formation shifts by one and the bullet by -10
	p := g.World.Player
	p.Bullets = append(p.Bullets, g.ProjectileSystem.NewPlayerBullet(last.Pos.X()+1, last.Pos.Y()+11))
	p.ShootCooldown = 5

	g.Update(input.State{})

	if g.ScoreSystem.Score != last.Kind.Spec(g.Config.Enemy).Score {
		t.Errorf("score = %d after the last kill", g.ScoreSystem.Score)
	}
	if g.World.Formation == f {
		t.Fatal("formation was not replaced")
	}
	if n := len(g.World.Formation.Enemies); n != 50 {
		t.Errorf("new formation has %d enemies, want 50", n)
	}
	if p.Invulnerable != 120 {
		t.Errorf("invulnerable = %d, want 120", p.Invulnerable)
	}
	if g.WaveSystem.Number != 2 {
		t.Errorf("wave = %d, want 2", g.WaveSystem.Number)
	}
}

func TestRamDoesNotDestroyEnemy(t *testing.T) {
	g := newTestGame(t, quietConfig())
	startPlaying(t, g)

	p := g.World.Player
	e := g.World.Formation.Enemies[3]
	g.EnemySystem.StartAttack(e)
	e.Pos = geom.V(p.Pos.X()-3*e.AttackDir, p.Pos.Y()-3)

	g.Update(input.State{})

	if p.Lives != 2 || p.Invulnerable != 120 {
		t.Errorf("lives=%d invulnerable=%d, want 2/120", p.Lives, p.Invulnerable)
	}
	if !e.Active {
		t.Error("rammed enemy was destroyed")
	}
	if g.Phase() != component.PlayingPhase {
		t.Errorf("phase = %v", g.Phase())
	}

	g.Update(input.State{})
	if p.Lives != 2 {
		t.Errorf("sustained overlap cost another life inside the window")
	}
}

func TestGameOverRoundTrip(t *testing.T) {
	g := newTestGame(t, quietConfig())
	var over event.GameOverData
	g.EventDispatcher.Subscribe(event.GameOver, event.ListenerFunc(func(e event.Event) {
		over = e.Data.(event.GameOverData)
	}))
	startPlaying(t, g)
	g.ScoreSystem.Add(700)

	p := g.World.Player
	p.Lives = 1
	g.World.EnemyBullets = append(g.World.EnemyBullets,
		g.ProjectileSystem.NewEnemyBullet(p.Pos.X()+5, p.Pos.Y()))

	// fire held from the playing frame must not skip the game over screen
	g.Update(input.State{Fire: true})
	g.Update(input.State{Fire: true})
	if g.Phase() != component.GameOverPhase {
		t.Fatalf("phase = %v, want GameOver", g.Phase())
	}
	if over.Score != 700 || g.ScoreSystem.HighScore != 700 {
		t.Errorf("game over score=%d high=%d", over.Score, g.ScoreSystem.HighScore)
	}

	g.Update(input.State{})
	g.Update(input.State{Confirm: true})
	if g.Phase() != component.MenuPhase {
		t.Fatalf("phase = %v, want Menu", g.Phase())
	}
	g.Update(input.State{})
	g.Update(input.State{Fire: true})
	if g.Phase() != component.PlayingPhase {
		t.Fatalf("phase = %v, want Playing", g.Phase())
	}
	if g.ScoreSystem.Score != 0 || g.ScoreSystem.HighScore != 700 || g.World.Player.Lives != 3 {
		t.Errorf("restart: score=%d high=%d lives=%d", g.ScoreSystem.Score, g.ScoreSystem.HighScore, g.World.Player.Lives)
	}
}

func TestSameSeedSameRun(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 2024
	a, b := newTestGame(t, cfg), newTestGame(t, cfg)

	script := []input.State{{Confirm: true}, {Fire: true}, {Left: true, Fire: true}, {Right: true}, {}}
	for frame := 0; frame < 1500; frame++ {
		in := script[0]
		if frame > 0 {
			in = script[1+(frame/40)%(len(script)-1)]
		}
		a.Update(in)
		b.Update(in)
	}

	if !reflect.DeepEqual(a.View(), b.View()) {
		t.Error("two simulations with the same seed diverged")
	}
	if a.Frame() != 1500 {
		t.Errorf("frame = %d", a.Frame())
	}
}

func TestIndependentSimulations(t *testing.T) {
	slow := quietConfig()
	fast := quietConfig()
	fast.Player.Speed = 10

	a, b := newTestGame(t, slow), newTestGame(t, fast)
	startPlaying(t, a)
	startPlaying(t, b)
	a.Update(input.State{Left: true})
	b.Update(input.State{Left: true})

	if a.World.Player.Pos.X() != 375 || b.World.Player.Pos.X() != 370 {
		t.Errorf("positions %v and %v, want 375 and 370", a.World.Player.Pos.X(), b.World.Player.Pos.X())
	}
}

func TestViewIsACopy(t *testing.T) {
	g := newTestGame(t, quietConfig())
	startPlaying(t, g)
	g.Update(input.State{Fire: true})

	v := g.View()
	if len(v.Bullets) != 1 || v.Bullets[0].Owner != component.PlayerOwned {
		t.Fatalf("bullets = %+v", v.Bullets)
	}
	if len(v.Enemies) != 50 || !v.HasPlayer || !v.Player.Visible {
		t.Fatalf("view = %d enemies, player %v", len(v.Enemies), v.HasPlayer)
	}

	v.Enemies[0].Box.X = -999
	if g.World.Formation.Enemies[0].Pos.X() == -999 {
		t.Error("view aliases simulation state")
	}

	g.World.Player.Invulnerable = 3
	if g.View().Player.Visible {
		t.Error("flicker not reflected in the view")
	}
}

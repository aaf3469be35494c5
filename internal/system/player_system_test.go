package system

import (
	"testing"

	"go-galaga/internal/event"
	"go-galaga/internal/input"
)

func TestPlayerSpawn(t *testing.T) {
	r := newRig(quietConfig())
	p := r.players.Spawn()
	if p.Pos.X() != 380 || p.Pos.Y() != 550 {
		t.Errorf("spawn at %v, want (380, 550)", p.Pos)
	}
	if p.Lives != 3 || p.Invulnerable != 0 || p.ShootCooldown != 0 {
		t.Errorf("spawn state = %+v", p)
	}
}

func TestPlayerBoundsClamp(t *testing.T) {
	r := newRig(quietConfig())
	p := r.players.Spawn()
	maxX := float64(r.cfg.Screen.Width) - p.Width

	inputs := []input.State{{Left: true}, {Right: true}, {Left: true, Right: true}, {}}
	for frame := 0; frame < 2000; frame++ {
		in := inputs[(frame/137)%len(inputs)]
		r.players.Update(p, in)
		if p.Pos.X() < 0 || p.Pos.X() > maxX {
			t.Fatalf("frame %d: x = %v outside [0, %v]", frame, p.Pos.X(), maxX)
		}
	}

	for i := 0; i < 200; i++ {
		r.players.Update(p, input.State{Left: true})
	}
	if p.Pos.X() != 0 {
		t.Errorf("x = %v after holding left, want 0", p.Pos.X())
	}
	for i := 0; i < 200; i++ {
		r.players.Update(p, input.State{Right: true})
	}
	if p.Pos.X() != maxX {
		t.Errorf("x = %v after holding right, want %v", p.Pos.X(), maxX)
	}
}

func TestPlayerFireRate(t *testing.T) {
	for _, frames := range []int{1, 9, 10, 11, 25, 100} {
		r := newRig(quietConfig())
		p := r.players.Spawn()
		shots := 0
		r.events.Subscribe(event.PlayerFired, event.ListenerFunc(func(event.Event) { shots++ }))

		for i := 0; i < frames; i++ {
			r.players.Update(p, input.State{Fire: true})
		}
		want := (frames + 9) / 10
		if shots != want {
			t.Errorf("%d frames of fire: %d shots, want %d", frames, shots, want)
		}
	}
}

func TestPlayerBulletSpawnPosition(t *testing.T) {
	r := newRig(quietConfig())
	p := r.players.Spawn()
	r.players.Update(p, input.State{Fire: true})

	if len(p.Bullets) != 1 {
		t.Fatalf("bullets = %d, want 1", len(p.Bullets))
	}
	b := p.Bullets[0]
	// spawned at (380+20-1, 550) then moved once by -10
	if b.Pos.X() != 399 || b.Pos.Y() != 540 {
		t.Errorf("bullet at %v, want (399, 540)", b.Pos)
	}
}

func TestPlayerBulletsLeaveScreen(t *testing.T) {
	r := newRig(quietConfig())
	p := r.players.Spawn()
	r.players.Update(p, input.State{Fire: true})
	for i := 0; i < 60; i++ {
		r.players.Update(p, input.State{})
	}
	if len(p.Bullets) != 0 {
		t.Errorf("bullets = %d after leaving the screen, want 0", len(p.Bullets))
	}
}

func TestPlayerHitInvulnerability(t *testing.T) {
	r := newRig(quietConfig())
	p := r.players.Spawn()

	if !r.players.Hit(p) {
		t.Fatal("first hit was ignored")
	}
	if p.Lives != 2 || p.Invulnerable != 120 {
		t.Fatalf("after hit lives=%d invulnerable=%d, want 2/120", p.Lives, p.Invulnerable)
	}

	for frame := 0; frame < 119; frame++ {
		if r.players.Hit(p) {
			t.Fatalf("hit registered inside the window at frame %d", frame)
		}
		r.players.Update(p, input.State{})
	}
	if p.Lives != 2 {
		t.Errorf("lives = %d, want 2", p.Lives)
	}

	r.players.Update(p, input.State{})
	if p.Invulnerable != 0 {
		t.Fatalf("invulnerable = %d after 120 frames", p.Invulnerable)
	}
	if !r.players.Hit(p) || p.Lives != 1 {
		t.Errorf("hit after the window: lives = %d, want 1", p.Lives)
	}
}

func TestPlayerFlicker(t *testing.T) {
	r := newRig(quietConfig())
	p := r.players.Spawn()
	if !p.Visible() {
		t.Fatal("player hidden while vulnerable")
	}

	visible := 0
	for inv := 1; inv <= 10; inv++ {
		p.Invulnerable = inv
		if p.Visible() {
			visible++
		}
	}
	if visible != 5 {
		t.Errorf("visible in %d of 10 frames, want 5", visible)
	}
}

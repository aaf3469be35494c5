package app

import (
	"go-galaga/internal/component"
	"go-galaga/pkg/geom"
)

// PlayerView — данные игрока для отрисовки.
type PlayerView struct {
	Box     geom.Rect
	Lives   int
	Visible bool
}

type EnemyView struct {
	Box       geom.Rect
	Kind      component.EnemyKind
	Attacking bool
}

type BulletView struct {
	Box   geom.Rect
	Owner component.Owner
}

type StarView struct {
	Pos  geom.Vec2
	Size float64
}

// View is a value snapshot of everything a host draws. It shares no memory
// with the simulation.
type View struct {
	Width, Height int
	Phase         component.Phase
	Score         int
	HighScore     int
	Wave          int
	HasPlayer     bool
	Player        PlayerView
	Enemies       []EnemyView
	Bullets       []BulletView
	Stars         []StarView
}

// View builds the render snapshot for the current frame.
func (g *Game) View() View {
	w := g.World
	v := View{
		Width:     g.Config.Screen.Width,
		Height:    g.Config.Screen.Height,
		Phase:     g.Phase(),
		Score:     g.ScoreSystem.Score,
		HighScore: g.ScoreSystem.HighScore,
		Wave:      g.WaveSystem.Number,
		Stars:     make([]StarView, len(w.Stars)),
	}
	for i, s := range w.Stars {
		v.Stars[i] = StarView{Pos: s.Pos, Size: s.Size}
	}

	if w.Player != nil {
		v.HasPlayer = true
		v.Player = PlayerView{
			Box:     w.Player.BoundingBox(),
			Lives:   w.Player.Lives,
			Visible: w.Player.Visible(),
		}
		for _, b := range w.Player.Bullets {
			if b.Active {
				v.Bullets = append(v.Bullets, BulletView{Box: b.BoundingBox(), Owner: b.Owner})
			}
		}
	}
	for _, b := range w.EnemyBullets {
		if b.Active {
			v.Bullets = append(v.Bullets, BulletView{Box: b.BoundingBox(), Owner: b.Owner})
		}
	}
	if w.Formation != nil {
		v.Enemies = make([]EnemyView, 0, len(w.Formation.Enemies))
		for _, e := range w.Formation.Enemies {
			if e.Active {
				v.Enemies = append(v.Enemies, EnemyView{
					Box:       e.BoundingBox(),
					Kind:      e.Kind,
					Attacking: e.Mode == component.Attacking,
				})
			}
		}
	}
	return v
}

package system

import (
	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/internal/utils"
	"go-galaga/pkg/geom"
)

// StarfieldSystem — декоративный фон, на геймплей не влияет.
type StarfieldSystem struct {
	cfg config.Config
	rng *utils.PRNGService
}

func NewStarfieldSystem(cfg config.Config, rng *utils.PRNGService) *StarfieldSystem {
	return &StarfieldSystem{cfg: cfg, rng: rng}
}

func (s *StarfieldSystem) Spawn() []component.Star {
	stars := make([]component.Star, s.cfg.Stars.Count)
	for i := range stars {
		stars[i] = component.Star{
			Pos:   geom.V(float64(s.rng.IntRange(0, s.cfg.Screen.Width)), float64(s.rng.IntRange(0, s.cfg.Screen.Height))),
			Speed: s.rng.Uniform(s.cfg.Stars.MinSpeed, s.cfg.Stars.MaxSpeed),
			Size:  float64(s.rng.IntRange(1, 2)),
		}
	}
	return stars
}

// Update lets every star fall; stars below the screen wrap to the top at a
// random column.
func (s *StarfieldSystem) Update(stars []component.Star) {
	h := float64(s.cfg.Screen.Height)
	for i := range stars {
		st := &stars[i]
		st.Pos[1] += st.Speed
		if st.Pos.Y() > h {
			st.Pos = geom.V(float64(s.rng.IntRange(0, s.cfg.Screen.Width)), 0)
		}
	}
}

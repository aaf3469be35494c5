package render

import (
	"image/color"

	"go-galaga/internal/app"
	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const strokeWidth = 2

// Renderer рисует игровое поле по снимку app.View. Интерфейс поверх поля
// рисует пакет ui.
type Renderer struct {
	Background color.RGBA
}

func NewRenderer() *Renderer {
	return &Renderer{Background: config.BackgroundColor}
}

// Draw рисует звёзды всегда, а корабль, врагов и пули — если они есть в снимке.
func (r *Renderer) Draw(screen *ebiten.Image, v *app.View) {
	screen.Fill(r.Background)

	for _, s := range v.Stars {
		vector.DrawFilledCircle(screen, float32(s.Pos.X()), float32(s.Pos.Y()), float32(s.Size), config.StarColor, true)
	}
	for _, e := range v.Enemies {
		r.drawEnemy(screen, e)
	}
	if v.HasPlayer && v.Player.Visible {
		r.drawPlayer(screen, v.Player.Box)
	}
	for _, b := range v.Bullets {
		clr := config.PlayerBullet
		if b.Owner == component.EnemyOwned {
			clr = config.EnemyBullet
		}
		x, y, w, h := box32(b.Box)
		vector.DrawFilledRect(screen, x, y, w, h, clr, false)
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, box geom.Rect) {
	x, y, w, h := box32(box)
	path := TrianglePath(x, y, w, h, true)
	FillPath(screen, path, config.PlayerColor)
	StrokePath(screen, path, strokeWidth, config.PlayerStroke)
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	x, y, w, h := box32(e.Box)
	body, stroke := config.NormalBody, config.NormalStroke
	if e.Kind == component.Boss {
		body, stroke = config.BossBody, config.BossStroke
	}
	if e.Attacking {
		stroke = DarkenColor(stroke)
	}

	switch e.Kind {
	case component.Boss:
		vector.DrawFilledRect(screen, x, y, w, h, body, true)
		vector.StrokeRect(screen, x, y, w, h, strokeWidth, stroke, true)
	default:
		path := EllipsePath(x, y, w, h)
		FillPath(screen, path, body)
		StrokePath(screen, path, strokeWidth, stroke)
	}
}

// DarkenColor уменьшает яркость цвета вдвое.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

func box32(b geom.Rect) (x, y, w, h float32) {
	return float32(b.X), float32(b.Y), float32(b.W), float32(b.H)
}

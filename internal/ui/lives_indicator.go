package ui

import (
	"go-galaga/internal/config"
	"go-galaga/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	lifeIconWidth   = 16
	lifeIconHeight  = 12
	lifeIconSpacing = 6
)

// LivesIndicator рисует оставшиеся жизни маленькими корабликами.
type LivesIndicator struct {
	X, Y float32 // правый верхний угол
}

// NewLivesIndicator создает индикатор, прижатый правым краем к x.
func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// Draw рисует по иконке на каждую жизнь, справа налево.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives int) {
	for j := 0; j < lives; j++ {
		right := i.X - float32(j)*(lifeIconWidth+lifeIconSpacing)
		left := right - lifeIconWidth

		path := render.TrianglePath(left, i.Y, lifeIconWidth, lifeIconHeight, true)
		render.FillPath(screen, path, config.PlayerColor)
	}
}

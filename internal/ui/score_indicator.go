package ui

import (
	"fmt"

	"go-galaga/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ScoreIndicator — счёт и рекорд в левом верхнем углу.
type ScoreIndicator struct {
	X, Y int
	face font.Face
}

func NewScoreIndicator(x, y int, face font.Face) *ScoreIndicator {
	return &ScoreIndicator{X: x, Y: y, face: face}
}

func (i *ScoreIndicator) Draw(screen *ebiten.Image, score, highScore int) {
	lineHeight := i.face.Metrics().Height.Ceil()
	text.Draw(screen, fmt.Sprintf("Score: %d", score), i.face, i.X, i.Y, config.TextLightColor)
	if highScore > 0 {
		text.Draw(screen, fmt.Sprintf("High: %d", highScore), i.face, i.X, i.Y+lineHeight, config.TextLightColor)
	}
}

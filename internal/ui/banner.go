package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// Banner — экран с крупным заголовком и строками подсказок под ним,
// используется для меню и экрана окончания игры.
type Banner struct {
	Title      string
	TitleColor color.Color
	titleFace  font.Face
	lineFace   font.Face
}

// NewBanner создает баннер.
func NewBanner(title string, titleColor color.Color, titleFace, lineFace font.Face) *Banner {
	return &Banner{
		Title:      title,
		TitleColor: titleColor,
		titleFace:  titleFace,
		lineFace:   lineFace,
	}
}

// Draw рисует заголовок над центром экрана, а строки — под ним.
func (b *Banner) Draw(screen *ebiten.Image, lines []string, lineColor color.Color) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx := w / 2
	titleY := h/2 - b.titleFace.Metrics().Height.Ceil()/2
	drawCentered(screen, b.Title, b.titleFace, cx, titleY, b.TitleColor)

	step := b.lineFace.Metrics().Height.Ceil() + 10
	y := h/2 + step
	for _, line := range lines {
		drawCentered(screen, line, b.lineFace, cx, y, lineColor)
		y += step
	}
}

package ui

import (
	"image/color"
	"strings"

	"go-galaga/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int // центр по X, базовая линия по Y
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
	face             font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.WaveColor,
		OutlineColor:     color.White,
		OutlineThickness: 1,
		face:             face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	label := toRoman(waveNumber)

	// каждая десятая волна — красным
	textColor := i.Color
	if waveNumber%10 == 0 {
		textColor = config.GameOverColor
	}

	x := i.X - textWidth(i.face, label)/2
	drawOutlined(screen, label, i.face, x, i.Y, i.OutlineThickness, textColor, i.OutlineColor)
}

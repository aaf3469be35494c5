package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// textWidth возвращает ширину строки в пикселях.
func textWidth(face font.Face, s string) int {
	b := text.BoundString(face, s)
	return b.Max.X - b.Min.X
}

// drawCentered рисует строку так, что её центр по X приходится на cx,
// а базовая линия — на y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	text.Draw(screen, s, face, cx-textWidth(face, s)/2, y, clr)
}

// drawOutlined рисует текст с обводкой толщиной thickness.
func drawOutlined(screen *ebiten.Image, s string, face font.Face, x, y, thickness int, fg, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, face, x+dx, y+dy, outline)
		}
	}
	text.Draw(screen, s, face, x, y, fg)
}

package ui

import (
	"fmt"

	"go-galaga/internal/app"
	"go-galaga/internal/assets"
	"go-galaga/internal/component"
	"go-galaga/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// HUD собирает все элементы интерфейса и рисует нужные для текущей фазы.
type HUD struct {
	score    *ScoreIndicator
	wave     *WaveIndicator
	lives    *LivesIndicator
	title    *Banner
	gameOver *Banner
}

// NewHUD раскладывает элементы под экран width×height.
func NewHUD(fonts *assets.FontManager, width, height int) *HUD {
	hud := fonts.MustFace(assets.SizeHUD)
	banner := fonts.MustFace(assets.SizeBanner)
	title := fonts.MustFace(assets.SizeTitle)
	return &HUD{
		score:    NewScoreIndicator(10, 24, hud),
		wave:     NewWaveIndicator(width/2, 30, banner),
		lives:    NewLivesIndicator(float32(width-10), 10),
		title:    NewBanner("GALAGA", config.TitleColor, title, hud),
		gameOver: NewBanner("GAME OVER", config.GameOverColor, title, hud),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, v *app.View) {
	switch v.Phase {
	case component.MenuPhase:
		lines := []string{"Press SPACE to start", "Arrows to move, SPACE to fire"}
		if v.HighScore > 0 {
			lines = append(lines, fmt.Sprintf("High score: %d", v.HighScore))
		}
		h.title.Draw(screen, lines, config.TextLightColor)
	case component.PlayingPhase:
		h.score.Draw(screen, v.Score, v.HighScore)
		h.wave.Draw(screen, v.Wave)
		if v.HasPlayer {
			h.lives.Draw(screen, v.Player.Lives)
		}
	case component.GameOverPhase:
		lines := []string{
			fmt.Sprintf("Score: %d", v.Score),
			fmt.Sprintf("Wave: %s", toRoman(v.Wave)),
			"Press SPACE to continue",
		}
		if v.Score > 0 && v.Score == v.HighScore {
			lines = append(lines, "New high score!")
		}
		h.gameOver.Draw(screen, lines, config.TextLightColor)
	}
}

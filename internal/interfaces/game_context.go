// internal/interfaces/game_context.go
package interfaces

import "go-galaga/internal/input"

// GameContext is what the top-level states need from the controller. It
// lives here so that state does not import app.
type GameContext interface {
	StartGame()
	StepPlaying(in input.State) (gameOver bool)
	EndGame()
}

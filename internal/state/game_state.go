// internal/state/game_state.go
package state

import (
	"go-galaga/internal/component"
	"go-galaga/internal/interfaces"
)

// PlayingState runs the simulation one step per frame.
type PlayingState struct {
	sm  *StateMachine
	ctx interfaces.GameContext
}

func NewPlayingState(sm *StateMachine, ctx interfaces.GameContext) *PlayingState {
	return &PlayingState{sm: sm, ctx: ctx}
}

// Enter starts a fresh game: score, player, formation and enemy bullets.
func (g *PlayingState) Enter() {
	g.ctx.StartGame()
}

func (g *PlayingState) Update(f Frame) {
	if g.ctx.StepPlaying(f.Input) {
		g.sm.SetState(NewGameOverState(g.sm, g.ctx))
	}
}

func (g *PlayingState) Exit() {}

func (g *PlayingState) Phase() component.Phase { return component.PlayingPhase }

// GameOverState shows the final score until fire/confirm returns to the menu.
type GameOverState struct {
	sm  *StateMachine
	ctx interfaces.GameContext
}

var _ State = (*GameOverState)(nil)

func NewGameOverState(sm *StateMachine, ctx interfaces.GameContext) *GameOverState {
	return &GameOverState{sm: sm, ctx: ctx}
}

func (s *GameOverState) Enter() {
	s.ctx.EndGame()
}

func (s *GameOverState) Update(f Frame) {
	if f.Accept {
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *GameOverState) Exit() {}

func (s *GameOverState) Phase() component.Phase { return component.GameOverPhase }

// internal/state/menu_state.go
package state

import (
	"go-galaga/internal/component"
	"go-galaga/internal/interfaces"
)

// MenuState — стартовый экран, ждёт fire/confirm.
type MenuState struct {
	sm  *StateMachine
	ctx interfaces.GameContext
}

func NewMenuState(sm *StateMachine, ctx interfaces.GameContext) *MenuState {
	return &MenuState{sm: sm, ctx: ctx}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(f Frame) {
	if f.Accept {
		m.sm.SetState(NewPlayingState(m.sm, m.ctx))
	}
}

func (m *MenuState) Exit() {}

func (m *MenuState) Phase() component.Phase { return component.MenuPhase }

// internal/state/state.go
package state

import (
	"go-galaga/internal/component"
	"go-galaga/internal/input"
)

// Frame — вход одного кадра для состояний.
type Frame struct {
	Input  input.State
	Accept bool // fire/confirm нажаты именно в этом кадре
}

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(f Frame)
	Exit()
	Phase() component.Phase
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	edge    input.Edge
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние. Фронт нажатия считается каждый кадр,
// даже во время игры, чтобы удержание огня не пролистывало экраны.
func (sm *StateMachine) Update(in input.State) {
	f := Frame{Input: in, Accept: sm.edge.Pressed(in)}
	if sm.current != nil {
		sm.current.Update(f)
	}
}

// Phase returns the phase of the current state; Menu when none is set.
func (sm *StateMachine) Phase() component.Phase {
	if sm.current == nil {
		return component.MenuPhase
	}
	return sm.current.Phase()
}

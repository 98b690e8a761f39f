// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Layouter — состояния, которым нужен размер экрана.
type Layouter interface {
	Layout(width, height int)
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current       State
	width, height int
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		// Новое состояние сразу узнаёт текущий размер экрана
		if l, ok := sm.current.(Layouter); ok && sm.width > 0 && sm.height > 0 {
			l.Layout(sm.width, sm.height)
		}
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current возвращает активное состояние
func (sm *StateMachine) Current() State {
	return sm.current
}

// Layout запоминает размер экрана и передаёт его текущему состоянию
func (sm *StateMachine) Layout(width, height int) {
	sm.width, sm.height = width, height
	if l, ok := sm.current.(Layouter); ok {
		l.Layout(width, height)
	}
}

// Size возвращает последний известный размер экрана
func (sm *StateMachine) Size() (int, int) {
	return sm.width, sm.height
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// internal/app/board.go
package app

import (
	"go-color-circles/internal/component"
	"go-color-circles/internal/config"
	"go-color-circles/internal/event"
	"go-color-circles/internal/utils"
	"image/color"
)

// noDrag — значение dragIndex, когда ничего не перетаскивается.
const noDrag = -1

// Options задаёт параметры генерации поля.
type Options struct {
	Count       int     // сколько кружков создаётся при сбросе
	Radius      float64 // радиус всех кружков
	StripHeight float64 // высота "лузы" внизу экрана
	MaxAttempts int     // попыток на один кружок, 0 — без ограничения
}

// DefaultOptions возвращает параметры из config.
func DefaultOptions() Options {
	return Options{
		Count:       config.CircleCount,
		Radius:      config.CircleRadius,
		StripHeight: config.TargetStripHeight,
		MaxAttempts: config.MaxPlacementAttempts,
	}
}

// Board holds the puzzle state: circles, the current target and the drag session.
// Все методы вызываются из одного игрового цикла, блокировки не нужны.
type Board struct {
	width, height float64
	opts          Options
	circles       []component.Circle
	targetIndex   int
	dragIndex     int // индекс в circles или noDrag
	cleared       bool

	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

// NewBoard создаёт пустое поле. Кружки появляются только после Reset.
// dispatcher может быть nil.
func NewBoard(width, height int, opts Options, rng *utils.PRNGService, dispatcher *event.Dispatcher) *Board {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	return &Board{
		width:      float64(width),
		height:     float64(height),
		opts:       opts,
		dragIndex:  noDrag,
		rng:        rng,
		dispatcher: dispatcher,
	}
}

// Layout запоминает новый размер экрана. Кружки не переставляются
// и не проверяются на попадание в новые границы.
func (b *Board) Layout(width, height int) {
	b.width = float64(width)
	b.height = float64(height)
}

// Size возвращает текущий размер экрана.
func (b *Board) Size() (width, height float64) {
	return b.width, b.height
}

// Options возвращает параметры генерации.
func (b *Board) Options() Options {
	return b.opts
}

// Circles возвращает кружки в порядке добавления. Срез принадлежит полю,
// изменять его нельзя.
func (b *Board) Circles() []component.Circle {
	return b.circles
}

func (b *Board) TargetIndex() int {
	return b.targetIndex
}

// TargetColor возвращает цвет текущей цели. ok == false, если кружков не осталось.
func (b *Board) TargetColor() (color.RGBA, bool) {
	if b.cleared || b.targetIndex < 0 || b.targetIndex >= len(b.circles) {
		return color.RGBA{}, false
	}
	return b.circles[b.targetIndex].Color, true
}

// Dragging возвращает индекс перетаскиваемого кружка.
func (b *Board) Dragging() (int, bool) {
	return b.dragIndex, b.dragIndex != noDrag
}

// Cleared сообщает, что игра окончена: все кружки убраны.
func (b *Board) Cleared() bool {
	return b.cleared
}

// StripTop возвращает Y верхней границы "лузы".
func (b *Board) StripTop() float64 {
	return b.height - b.opts.StripHeight
}

func (b *Board) dispatch(t event.EventType, data interface{}) {
	b.dispatcher.Dispatch(event.Event{Type: t, Data: data})
}

func (b *Board) requestRedraw() {
	b.dispatch(event.RedrawRequested, nil)
}

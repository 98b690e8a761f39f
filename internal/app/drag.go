// internal/app/drag.go
package app

import (
	"go-color-circles/internal/event"
	"go-color-circles/internal/input"
	"slices"
)

// HandlePointer обрабатывает событие мыши/касания. Событие всегда
// считается поглощённым, поэтому возвращается true.
func (b *Board) HandlePointer(ev input.PointerEvent) bool {
	switch ev.Action {
	case input.ActionDown:
		b.press(ev.X, ev.Y)
	case input.ActionMove:
		b.move(ev.X, ev.Y)
	case input.ActionUp:
		b.release()
	}
	return true
}

// press берёт первый по порядку добавления кружок под точкой.
// Во время перетаскивания повторное нажатие игнорируется: касание одно.
func (b *Board) press(x, y float64) {
	if b.dragIndex != noDrag {
		return
	}
	for i := range b.circles {
		if b.circles[i].Contains(x, y) {
			b.dragIndex = i
			b.circles[i].IsDragging = true
			b.dispatch(event.CirclePicked, event.CircleData{Index: i, X: b.circles[i].X, Y: b.circles[i].Y})
			return
		}
	}
}

// move переносит центр кружка в точку без ограничения границами экрана.
func (b *Board) move(x, y float64) {
	if b.dragIndex == noDrag {
		return
	}
	c := &b.circles[b.dragIndex]
	c.X, c.Y = x, y
	b.dispatch(event.CircleMoved, event.CircleData{Index: b.dragIndex, X: x, Y: y})
	b.requestRedraw()
}

func (b *Board) release() {
	if b.dragIndex == noDrag {
		return
	}
	i := b.dragIndex
	c := &b.circles[i]
	c.IsDragging = false
	b.dragIndex = noDrag
	data := event.CircleData{Index: i, X: c.X, Y: c.Y}

	if !b.InTargetStrip(c.X, c.Y) {
		// Кружок остаётся там, где его отпустили.
		b.dispatch(event.CircleDropped, data)
		b.requestRedraw()
		return
	}

	b.circles = slices.Delete(b.circles, i, i+1)
	b.dispatch(event.CircleScored, data)
	if len(b.circles) == 0 {
		b.cleared = true
		b.targetIndex = 0
		b.dispatch(event.BoardCleared, nil)
	} else {
		// Цель сдвигается по позиции в списке, а не по конкретному кружку.
		b.targetIndex = (b.targetIndex + 1) % len(b.circles)
	}
	b.requestRedraw()
}

// InTargetStrip проверяет, лежит ли точка в "лузе": вся ширина экрана,
// нижние StripHeight единиц.
func (b *Board) InTargetStrip(x, y float64) bool {
	top := b.StripTop()
	return x >= 0 && x <= b.width && y >= top && y <= b.height
}

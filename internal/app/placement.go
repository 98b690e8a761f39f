// internal/app/placement.go
package app

import (
	"errors"
	"fmt"
	"go-color-circles/internal/component"
	"go-color-circles/internal/event"
	"go-color-circles/internal/utils"
)

var (
	// ErrViewportTooSmall — свободная часть экрана уже одного диаметра.
	ErrViewportTooSmall = errors.New("viewport too small for a single circle")
	// ErrNoRoom — очередной кружок не удалось поставить за MaxAttempts попыток.
	ErrNoRoom = errors.New("no room left for another circle")
)

// Reset удаляет все кружки и расставляет новые, не перекрывающие друг друга,
// выше "лузы". Цвета выбираются случайно.
//
// Если кружок не помещается, Reset останавливается, оставляет уже
// расставленные кружки и возвращает ошибку. Пустое поле считается пройденным.
func (b *Board) Reset() error {
	b.circles = b.circles[:0]
	b.targetIndex = 0
	b.dragIndex = noDrag
	b.cleared = false

	err := b.placeCircles()
	b.cleared = len(b.circles) == 0

	b.dispatch(event.BoardReset, event.ResetData{Placed: len(b.circles), Requested: b.opts.Count})
	b.requestRedraw()
	return err
}

func (b *Board) placeCircles() error {
	r := b.opts.Radius
	minX, maxX := r, b.width-r
	minY, maxY := r, b.height-b.opts.StripHeight-r
	if b.opts.Count > 0 && (maxX < minX || maxY < minY) {
		return fmt.Errorf("place %d circles in %.0fx%.0f: %w", b.opts.Count, b.width, b.height, ErrViewportTooSmall)
	}

	minDistSq := 4 * r * r
	for i := 0; i < b.opts.Count; i++ {
		attempts := 0
		for {
			if b.opts.MaxAttempts > 0 && attempts >= b.opts.MaxAttempts {
				return fmt.Errorf("circle %d of %d after %d attempts: %w", i+1, b.opts.Count, attempts, ErrNoRoom)
			}
			attempts++

			x := b.rng.Range(minX, maxX)
			y := b.rng.Range(minY, maxY)
			if b.fits(x, y, minDistSq) {
				b.circles = append(b.circles, component.Circle{
					X:      x,
					Y:      y,
					Radius: r,
					Color:  b.rng.RGB(),
				})
				break
			}
		}
	}
	return nil
}

// fits проверяет, что кандидат не ближе 2R ни к одному уже поставленному кружку.
func (b *Board) fits(x, y, minDistSq float64) bool {
	for i := range b.circles {
		if utils.DistanceSq(x, y, b.circles[i].X, b.circles[i].Y) < minDistSq {
			return false
		}
	}
	return true
}

// internal/ui/pointer.go
package ui

import (
	"go-color-circles/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenPointer читает левую кнопку мыши, а если она не нажата — первое касание.
type EbitenPointer struct {
	touchIDs []ebiten.TouchID
}

var _ input.PointerSource = (*EbitenPointer)(nil)

func NewEbitenPointer() *EbitenPointer {
	return &EbitenPointer{touchIDs: make([]ebiten.TouchID, 0, 4)}
}

func (p *EbitenPointer) Pointer() (x, y int, pressed bool) {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return x, y, true
	}
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		x, y = ebiten.TouchPosition(p.touchIDs[0])
		return x, y, true
	}
	return 0, 0, false
}

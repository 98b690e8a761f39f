// internal/interfaces/canvas.go
package interfaces

import "image/color"

// Canvas — 2D-поверхность, на которой рисует игровое поле.
// Реализация для Ebiten лежит в pkg/render, в тестах используется заглушка.
type Canvas interface {
	Fill(clr color.Color)
	FillRect(x, y, width, height float64, clr color.Color)
	FillCircle(cx, cy, radius float64, clr color.Color)
	DrawCenteredText(s string, cx, cy float64, clr color.Color)
}

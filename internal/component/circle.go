// internal/component/circle.go
package component

import "image/color"

// Circle — кружок на игровом поле
type Circle struct {
	X, Y       float64
	Radius     float64
	Color      color.RGBA
	IsDragging bool
}

// Contains проверяет, попадает ли точка в кружок (граница включительно).
func (c *Circle) Contains(px, py float64) bool {
	dx := px - c.X
	dy := py - c.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

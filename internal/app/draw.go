// internal/app/draw.go
package app

import (
	"go-color-circles/internal/config"
	"go-color-circles/internal/interfaces"
)

// Draw рисует поле. Состояние не меняется.
func (b *Board) Draw(canvas interfaces.Canvas) {
	canvas.Fill(config.BackgroundColor)

	for i := range b.circles {
		c := &b.circles[i]
		canvas.FillCircle(c.X, c.Y, c.Radius, c.Color)
	}

	// После конца игры индекс цели ни на что не указывает, луза не рисуется.
	if targetColor, ok := b.TargetColor(); ok {
		canvas.FillRect(0, b.StripTop(), b.width, b.opts.StripHeight, targetColor)
	}

	if b.cleared {
		canvas.DrawCenteredText(config.GameOverText, b.width/2, b.height/2, config.GameOverColor)
	}
}

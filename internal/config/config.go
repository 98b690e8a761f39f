// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 600
	ScreenHeight = 900
	WindowTitle  = "Color Circles"
	MaxDeltaTime = 0.06

	CircleCount       = 5
	CircleRadius      = 50.0
	TargetStripHeight = 100.0 // высота "лузы" внизу экрана

	// Лимит попыток на один кружок при расстановке. 0 — без ограничения.
	MaxPlacementAttempts = 10000

	GameOverText     = "Game Over!"
	GameOverFontSize = 50
	MenuFontSize     = 24
	PromptBlinkRate  = 1.2 // секунд на полный цикл мигания
)

var (
	BackgroundColor = color.RGBA{204, 204, 204, 255} // светло-серый
	GameOverColor   = color.RGBA{255, 0, 0, 255}
	MenuBackground  = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
)

// cmd/game/main.go
package main

import (
	"go-color-circles/internal/config"
	"go-color-circles/internal/state"
	"go-color-circles/pkg/render"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = true // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout — логические координаты совпадают с размером окна.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.stateMachine.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	fonts, err := render.LoadFonts(config.GameOverFontSize, config.MenuFontSize)
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.Layout(config.ScreenWidth, config.ScreenHeight)
	if startFromGame {
		sm.SetState(state.NewPlayState(sm, fonts)) // Устанавливаем состояние игры
	} else {
		sm.SetState(state.NewMenuState(sm, fonts)) // Устанавливаем состояние меню
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Игровой экран перерисовывается только по запросу
	ebiten.SetScreenClearedEveryFrame(false)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

// internal/state/menu_state.go
package state

import (
	"go-color-circles/internal/config"
	"go-color-circles/internal/utils"
	"go-color-circles/pkg/render"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*MenuState)(nil)

// MenuState — стартовый экран
type MenuState struct {
	sm      *StateMachine
	fonts   *render.Fonts
	elapsed float64
	touches []ebiten.TouchID
}

func NewMenuState(sm *StateMachine, fonts *render.Fonts) *MenuState {
	return &MenuState{sm: sm, fonts: fonts}
}

func (m *MenuState) Enter() {
	m.elapsed = 0
}

func (m *MenuState) Update(deltaTime float64) {
	m.elapsed += deltaTime

	m.touches = inpututil.AppendJustPressedTouchIDs(m.touches[:0])
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(m.touches) > 0 {
		m.sm.SetState(NewPlayState(m.sm, m.fonts))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx, cy := float64(w)/2, float64(h)/2

	title := render.NewScreenCanvas(screen, m.fonts.Title)
	title.Fill(config.MenuBackground)
	title.DrawCenteredText(config.WindowTitle, cx, cy-60, config.TextLightColor)

	// Подсказка плавно мигает
	phase := 0.5 + 0.5*math.Sin(2*math.Pi*m.elapsed/config.PromptBlinkRate)
	alpha := utils.Lerp(60, 255, float32(phase))
	prompt := render.NewScreenCanvas(screen, m.fonts.Label)
	prompt.DrawCenteredText("Press Space or tap to start", cx, cy+20, render.WithAlpha(config.TextLightColor, uint8(alpha)))
}

func (m *MenuState) Exit() {}

// pkg/render/canvas.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// textShadowOffset — смещение тени под надписями, в пикселях.
const textShadowOffset = 2

// ScreenCanvas рисует примитивы на кадре Ebiten.
// Создаётся на каждый кадр, сама ничего не хранит, кроме ссылок.
type ScreenCanvas struct {
	screen   *ebiten.Image
	fontFace font.Face
}

func NewScreenCanvas(screen *ebiten.Image, face font.Face) *ScreenCanvas {
	return &ScreenCanvas{screen: screen, fontFace: face}
}

func (c *ScreenCanvas) Fill(clr color.Color) {
	c.screen.Fill(clr)
}

func (c *ScreenCanvas) FillRect(x, y, width, height float64, clr color.Color) {
	vector.DrawFilledRect(c.screen, float32(x), float32(y), float32(width), float32(height), clr, false)
}

func (c *ScreenCanvas) FillCircle(cx, cy, radius float64, clr color.Color) {
	vector.DrawFilledCircle(c.screen, float32(cx), float32(cy), float32(radius), clr, true)
}

// DrawCenteredText рисует строку с центром в (cx, cy) и тёмной тенью.
func (c *ScreenCanvas) DrawCenteredText(s string, cx, cy float64, clr color.Color) {
	if c.fontFace == nil {
		return
	}
	bounds := text.BoundString(c.fontFace, s)
	x := int(cx) - (bounds.Min.X+bounds.Max.X)/2
	y := int(cy) - (bounds.Min.Y+bounds.Max.Y)/2

	text.Draw(c.screen, s, c.fontFace, x+textShadowOffset, y+textShadowOffset, DarkenColor(toRGBA(clr)))
	text.Draw(c.screen, s, c.fontFace, x, y, clr)
}

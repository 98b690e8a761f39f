package app

import (
	"go-color-circles/internal/config"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawCall struct {
	op         string
	x, y, w, h float64
	text       string
	clr        color.Color
}

type fakeCanvas struct {
	calls []drawCall
}

func (f *fakeCanvas) Fill(clr color.Color) {
	f.calls = append(f.calls, drawCall{op: "fill", clr: clr})
}

func (f *fakeCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	f.calls = append(f.calls, drawCall{op: "rect", x: x, y: y, w: w, h: h, clr: clr})
}

func (f *fakeCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	f.calls = append(f.calls, drawCall{op: "circle", x: cx, y: cy, w: r, clr: clr})
}

func (f *fakeCanvas) DrawCenteredText(s string, cx, cy float64, clr color.Color) {
	f.calls = append(f.calls, drawCall{op: "text", x: cx, y: cy, text: s, clr: clr})
}

func (f *fakeCanvas) ops() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.op)
	}
	return out
}

func TestDrawBoardInProgress(t *testing.T) {
	b, _ := newTestBoard(t, circleAt(100, 100, red), circleAt(300, 200, green))
	b.targetIndex = 1
	canvas := &fakeCanvas{}

	b.Draw(canvas)

	require.Equal(t, []string{"fill", "circle", "circle", "rect"}, canvas.ops())
	assert.Equal(t, config.BackgroundColor, canvas.calls[0].clr)
	assert.Equal(t, drawCall{op: "circle", x: 100, y: 100, w: 50, clr: red}, canvas.calls[1])
	assert.Equal(t, drawCall{op: "circle", x: 300, y: 200, w: 50, clr: green}, canvas.calls[2])
	assert.Equal(t, drawCall{op: "rect", x: 0, y: 800, w: 600, h: 100, clr: green}, canvas.calls[3])
}

func TestDrawClearedBoard(t *testing.T) {
	b, _ := newTestBoard(t)
	b.cleared = true
	b.targetIndex = 3 // устаревший индекс не должен читаться
	canvas := &fakeCanvas{}

	assert.NotPanics(t, func() { b.Draw(canvas) })

	require.Equal(t, []string{"fill", "text"}, canvas.ops())
	label := canvas.calls[1]
	assert.Equal(t, config.GameOverText, label.text)
	assert.Equal(t, 300.0, label.x)
	assert.Equal(t, 450.0, label.y)
	assert.Equal(t, config.GameOverColor, label.clr)
}

func TestDrawDoesNotMutate(t *testing.T) {
	b, _ := newTestBoard(t, circleAt(100, 100, red))
	b.HandlePointer(down(100, 100))
	before := append(b.Circles()[:0:0], b.Circles()...)

	b.Draw(&fakeCanvas{})

	assert.Equal(t, before, b.Circles())
	idx, ok := b.Dragging()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

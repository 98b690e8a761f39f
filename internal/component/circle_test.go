package component

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircleContains(t *testing.T) {
	c := Circle{X: 0, Y: 0, Radius: 50, Color: color.RGBA{255, 0, 0, 255}}

	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"Center", 0, 0, true},
		{"Boundary", 30, 40, true},
		{"Just outside", 30, 41, false},
		{"Negative quadrant boundary", -30, -40, true},
		{"On axis", 50, 0, true},
		{"Far away", 200, 200, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Contains(tt.px, tt.py))
		})
	}
}

func TestCircleContainsOffsetCenter(t *testing.T) {
	c := Circle{X: 100, Y: 200, Radius: 50}
	assert.True(t, c.Contains(130, 240))
	assert.False(t, c.Contains(130, 241))
}

package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	x, y    int
	pressed bool
}

func (f *fakeSource) Pointer() (int, int, bool) { return f.x, f.y, f.pressed }

func TestPointerTrackerSequence(t *testing.T) {
	src := &fakeSource{}
	tr := NewPointerTracker()

	assert.Empty(t, tr.Poll(src), "idle pointer produces nothing")

	src.x, src.y, src.pressed = 10, 20, true
	evs := tr.Poll(src)
	require.Len(t, evs, 1)
	assert.Equal(t, PointerEvent{Action: ActionDown, X: 10, Y: 20}, evs[0])

	assert.Empty(t, tr.Poll(src), "held still pointer produces nothing")

	src.x, src.y = 15, 40
	evs = tr.Poll(src)
	require.Len(t, evs, 1)
	assert.Equal(t, PointerEvent{Action: ActionMove, X: 15, Y: 40}, evs[0])

	// Координаты после отпускания игнорируются.
	src.x, src.y, src.pressed = 0, 0, false
	evs = tr.Poll(src)
	require.Len(t, evs, 1)
	assert.Equal(t, PointerEvent{Action: ActionUp, X: 15, Y: 40}, evs[0])

	assert.Empty(t, tr.Poll(src))
}

func TestPointerTrackerReset(t *testing.T) {
	src := &fakeSource{x: 1, y: 1, pressed: true}
	tr := NewPointerTracker()
	require.Len(t, tr.Poll(src), 1)

	tr.Reset()
	evs := tr.Poll(src)
	require.Len(t, evs, 1)
	assert.Equal(t, ActionDown, evs[0].Action)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "down", ActionDown.String())
	assert.Equal(t, "move", ActionMove.String())
	assert.Equal(t, "up", ActionUp.String())
	assert.Equal(t, "unknown", Action(42).String())
}

func TestPointerTrackerSyncSwallowsHeldPress(t *testing.T) {
	src := &fakeSource{x: 5, y: 5, pressed: true}
	tr := NewPointerTracker()
	tr.Sync(src)

	assert.Empty(t, tr.Poll(src), "press carried over from another screen is not a down")

	src.pressed = false
	evs := tr.Poll(src)
	require.Len(t, evs, 1)
	assert.Equal(t, PointerEvent{Action: ActionUp, X: 5, Y: 5}, evs[0])
}

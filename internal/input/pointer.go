// internal/input/pointer.go
package input

// Action — тип события указателя
type Action int

const (
	ActionDown Action = iota
	ActionMove
	ActionUp
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	}
	return "unknown"
}

// PointerEvent — событие мыши или касания в логических координатах экрана.
type PointerEvent struct {
	Action Action
	X, Y   float64
}

// PointerSource отдаёт текущее положение единственного указателя.
type PointerSource interface {
	Pointer() (x, y int, pressed bool)
}

// PointerTracker превращает опрос состояния указателя в поток событий
// down/move/up. Отслеживается только один указатель.
type PointerTracker struct {
	pressed    bool
	lastX      int
	lastY      int
	eventsBuff []PointerEvent
}

func NewPointerTracker() *PointerTracker {
	return &PointerTracker{eventsBuff: make([]PointerEvent, 0, 2)}
}

// Poll опрашивает источник и возвращает события, произошедшие с прошлого кадра.
// Возвращаемый срез переиспользуется при следующем вызове.
func (t *PointerTracker) Poll(src PointerSource) []PointerEvent {
	t.eventsBuff = t.eventsBuff[:0]
	x, y, pressed := src.Pointer()

	switch {
	case pressed && !t.pressed:
		t.eventsBuff = append(t.eventsBuff, PointerEvent{Action: ActionDown, X: float64(x), Y: float64(y)})
	case pressed && t.pressed:
		if x != t.lastX || y != t.lastY {
			t.eventsBuff = append(t.eventsBuff, PointerEvent{Action: ActionMove, X: float64(x), Y: float64(y)})
		}
	case !pressed && t.pressed:
		// Отпускание фиксируем в последней известной точке: у касания
		// после отрыва пальца координат уже нет.
		t.eventsBuff = append(t.eventsBuff, PointerEvent{Action: ActionUp, X: float64(t.lastX), Y: float64(t.lastY)})
	}

	t.pressed = pressed
	if pressed {
		t.lastX, t.lastY = x, y
	}
	return t.eventsBuff
}

// Sync запоминает текущее состояние указателя без генерации событий.
// Нажатие, начатое на предыдущем экране, не превратится в down.
func (t *PointerTracker) Sync(src PointerSource) {
	t.eventsBuff = t.eventsBuff[:0]
	t.lastX, t.lastY, t.pressed = src.Pointer()
}

// Reset забывает текущее нажатие, например при смене экрана.
func (t *PointerTracker) Reset() {
	t.pressed = false
	t.eventsBuff = t.eventsBuff[:0]
}

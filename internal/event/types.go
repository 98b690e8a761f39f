// internal/event/types.go
package event

const (
	CirclePicked    EventType = "CirclePicked"    // Кружок взят пальцем/мышью
	CircleMoved     EventType = "CircleMoved"     // Кружок перетащен
	CircleDropped   EventType = "CircleDropped"   // Кружок отпущен вне лузы
	CircleScored    EventType = "CircleScored"    // Кружок отпущен в лузе и удалён
	BoardCleared    EventType = "BoardCleared"    // Кружков не осталось
	BoardReset      EventType = "BoardReset"      // Поле сгенерировано заново
	RedrawRequested EventType = "RedrawRequested" // Нужно перерисовать экран
)

// CircleData — данные событий CirclePicked/CircleMoved/CircleDropped/CircleScored.
type CircleData struct {
	Index int
	X, Y  float64
}

// ResetData — данные события BoardReset.
type ResetData struct {
	Placed    int
	Requested int
}

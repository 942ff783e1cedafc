package core

// Event tells an observer why the model changed.
type Event int

const (
	EventClear   Event = iota // board cleared and score reset
	EventAddTile              // a tile was placed
	EventTilt                 // a tilt moved or merged at least one tile
)

func (e Event) String() string {
	switch e {
	case EventClear:
		return "clear"
	case EventAddTile:
		return "add_tile"
	case EventTilt:
		return "tilt"
	default:
		return "unknown"
	}
}

// Observer is notified after each change to a Model.
type Observer interface {
	Changed(m *Model, ev Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(m *Model, ev Event)

// Changed calls f(m, ev).
func (f ObserverFunc) Changed(m *Model, ev Event) {
	f(m, ev)
}

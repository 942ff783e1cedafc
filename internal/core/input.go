package core

// Action is a semantic game action, decoupled from physical keys.
type Action uint8

const (
	ActionNone    Action = iota
	ActionUp             // tilt toward the top edge
	ActionDown           // tilt toward the bottom edge
	ActionLeft           // tilt toward the left edge
	ActionRight          // tilt toward the right edge
	ActionRestart        // start a new game after game over
	ActionQuit           // leave the program
	ActionPause          // toggle pause

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered during one simulation tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint16
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

package core

// Action represents a semantic platform action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart the simulation
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// EventKind is the type of a raw input event delivered to a game.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventPointerMove
	EventPointerDown
	EventPointerUp
)

// String returns the name used in input scripts and logs.
func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "key_down"
	case EventKeyUp:
		return "key_up"
	case EventPointerMove:
		return "pointer_move"
	case EventPointerDown:
		return "pointer_down"
	case EventPointerUp:
		return "pointer_up"
	default:
		return "unknown"
	}
}

// ParseEventKind is the inverse of EventKind.String.
func ParseEventKind(s string) (EventKind, bool) {
	for k := EventKeyDown; k <= EventPointerUp; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// InputEvent is a single key or pointer event.
// Key is set for key events, X/Y (world coordinates) for pointer moves.
type InputEvent struct {
	Kind EventKind
	Key  string
	X, Y float64
}

// InputFrame collects the input delivered to a game during one simulation tick.
// Actions are platform intents; Events are forwarded to the game in arrival order.
type InputFrame struct {
	Actions map[Action]bool
	Events  []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Push appends a raw input event.
func (f *InputFrame) Push(ev InputEvent) {
	f.Events = append(f.Events, ev)
}

// Clear resets all actions and events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Events = f.Events[:0]
}

package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move paddle left
	ActionRight          // Right arrow, D - move paddle right
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
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

// Direction is a horizontal movement direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// Sign returns -1 for left and +1 for right.
func (d Direction) Sign() int {
	if d == DirLeft {
		return -1
	}
	return 1
}

// InputFrame represents the input collected for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is an absolute horizontal position in playfield units,
	// valid only when HasPointer is set.
	Pointer    int
	HasPointer bool
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

// SetPointer records an absolute pointer position for this frame.
// A later call overrides an earlier one.
func (f *InputFrame) SetPointer(x int) {
	f.Pointer = x
	f.HasPointer = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = 0
	f.HasPointer = false
}

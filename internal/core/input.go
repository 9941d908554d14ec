package core

// Action is a semantic input, abstracted from physical key presses.
// Modes consume actions so key bindings stay a platform concern.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, k - move cursor up
	ActionDown           // S, Down arrow, j - move cursor down
	ActionConfirm        // Enter, Space - confirm selection
	ActionBack           // B, Escape - back out one screen
	ActionPause          // P - pause the field animation
	ActionQuit           // Q, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// NoDigit is the Digit value when no number key was pressed this frame.
const NoDigit = -1

// InputFrame is the input state for a single tick. Menus in this program
// are number-driven, so alongside the action set the frame carries the
// digit key (0-9) pressed this frame, if any.
type InputFrame struct {
	Actions map[Action]bool
	Digit   int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Digit:   NoDigit,
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetDigit records a number key press for this frame.
func (f *InputFrame) SetDigit(d int) {
	if d >= 0 && d <= 9 {
		f.Digit = d
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Digit = NoDigit
}

package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, a, h - move left while held
	ActionRight        // Right arrow, d, l - move right while held
	ActionFire         // Space - fire one projectile per press
	ActionPause        // P, Escape - pause/unpause game
	ActionQuit         // Q, Ctrl+C - end the session
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
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// Pressed holds discrete key-down edges seen since the previous tick; Held
// holds continuous key state.
type InputFrame struct {
	Pressed map[Action]int
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]int),
		Held:    make(map[Action]bool),
	}
}

// Press records one key-down edge for the action.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]int)
	}
	f.Pressed[a]++
}

// Presses returns how many key-down edges were recorded for the action.
func (f InputFrame) Presses(a Action) int {
	return f.Pressed[a]
}

// Has returns true if the action was pressed at least once this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a] > 0
}

// SetHeld marks the action as held (or released) for this frame.
func (f *InputFrame) SetHeld(a Action, held bool) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	if held {
		f.Held[a] = true
		return
	}
	delete(f.Held, a)
}

// IsHeld returns true if the action is currently held.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}

package core

// Action represents a semantic platform action, abstracted from physical
// key presses. Card play itself goes through the Pointer, never through
// actions.
type Action int

const (
	ActionNone    Action = iota
	ActionNewDeal        // N - shuffle a fresh deal
	ActionRedeal         // R - deal the current seed again
	ActionHelp           // ? - toggle the controls footer
	ActionBack           // B, Escape - leave a sub-screen
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNewDeal:
		return "NewDeal"
	case ActionRedeal:
		return "Redeal"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the state of the single logical pointer (mouse or touch)
// for one tick. Pos is in normalized [0,1]x[0,1] screen units. Pressed
// and Released are edge-triggered; Down is level-triggered.
type Pointer struct {
	Pos      Vec2
	Pressed  bool
	Released bool
	Down     bool
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is the pointer state accumulated since the previous tick.
	Pointer Pointer

	// Elapsed is the wall time in seconds since the previous tick.
	// Zero means "one nominal tick" and is resolved by the game.
	Elapsed float64
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

// Press records a pointer press at pos.
func (f *InputFrame) Press(pos Vec2) {
	f.Pointer.Pos = pos
	f.Pointer.Pressed = true
	f.Pointer.Down = true
}

// Release records a pointer release at pos.
func (f *InputFrame) Release(pos Vec2) {
	f.Pointer.Pos = pos
	f.Pointer.Released = true
	f.Pointer.Down = false
}

// Move records pointer motion without changing button state.
func (f *InputFrame) Move(pos Vec2) {
	f.Pointer.Pos = pos
}

// Clear resets actions and pointer edges for the next frame.
// The pointer position and Down level carry over.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.Pressed = false
	f.Pointer.Released = false
	f.Elapsed = 0
}

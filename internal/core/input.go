package core

// Action represents a semantic game action, abstracted from physical key
// presses. The simulation only ever sees these; raw key codes stay in the
// platform layer.
type Action int

const (
	ActionNone        Action = iota
	ActionRotateLeft         // Left arrow, A - turn counter-clockwise
	ActionRotateRight        // Right arrow, D - turn clockwise
	ActionThrust             // Up arrow, W - accelerate along facing
	ActionFire               // Space - fire a bullet (edge-triggered)
	ActionQuit               // Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionThrust:
		return "Thrust"
	case ActionFire:
		return "Fire"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the per-tick input state consumed by the simulation: the set
// of actions active this tick. Rotate and thrust are level-triggered (active
// every tick the key is held); Fire is edge-triggered and must only be set on
// the transition from released to pressed.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
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
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// FireEdge tracks edge detection for the fire action so holding the key
// (or terminal auto-repeat) produces exactly one shot per press.
type FireEdge struct {
	wasPressed bool
}

// Update takes whether fire is currently pressed and returns true only on
// the rising edge.
func (e *FireEdge) Update(pressed bool) bool {
	fired := pressed && !e.wasPressed
	e.wasPressed = pressed
	return fired
}

package ui

// ScreenState represents the lifecycle state of a screen controller
type ScreenState int

const (
	// StateIdle means the screen is inactive and shows no transient data
	StateIdle ScreenState = iota

	// StateLoading means a background request is in flight
	StateLoading

	// StateLoaded means the last request finished successfully
	StateLoaded

	// StateError means the last request failed and the error is shown
	StateError
)

// String returns the string representation of ScreenState
func (s ScreenState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// StateMachine tracks screen state and rejects invalid transitions.
// Transient state never survives screen deactivation; callers Reset()
// when a screen goes away.
type StateMachine struct {
	current ScreenState
}

// NewStateMachine creates a state machine in the idle state
func NewStateMachine() *StateMachine {
	return &StateMachine{current: StateIdle}
}

// Current returns the current state
func (m *StateMachine) Current() ScreenState {
	return m.current
}

// To moves the machine to next and reports whether the transition is
// allowed. Disallowed transitions leave the current state untouched.
func (m *StateMachine) To(next ScreenState) bool {
	if !canTransition(m.current, next) {
		return false
	}
	m.current = next
	return true
}

// Reset returns the machine to idle, used on screen deactivation.
func (m *StateMachine) Reset() {
	m.current = StateIdle
}

func canTransition(from, to ScreenState) bool {
	switch from {
	case StateIdle:
		return to == StateLoading
	case StateLoading:
		return to == StateLoaded || to == StateError
	case StateLoaded, StateError:
		return to == StateLoading
	default:
		return false
	}
}

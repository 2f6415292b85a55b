package game

import "fmt"

// InputError reports malformed construction input: bad stacks, bad
// positions, out-of-range seats, or duplicate cards. The caller must
// correct the input and retry; there is no internal recovery.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Reason
}

func inputErrorf(format string, args ...any) error {
	return &InputError{Reason: fmt.Sprintf(format, args...)}
}

// StateError reports an action that is illegal against the current state:
// wrong actor, wrong street, under-sized bet or raise, acting after a
// terminal state. The state is never mutated when a StateError is returned.
type StateError struct {
	Reason string
}

func (e *StateError) Error() string {
	return "illegal action: " + e.Reason
}

func stateErrorf(format string, args ...any) error {
	return &StateError{Reason: fmt.Sprintf(format, args...)}
}

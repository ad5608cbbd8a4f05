package navigation

import "fmt"

// TransitionError reports an intent that is not valid on the current screen.
// The machine's state is unchanged when it is returned.
type TransitionError struct {
	From   Screen
	Intent string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s from %s", e.Intent, e.From)
}

func NewTransitionError(from Screen, intent string) *TransitionError {
	return &TransitionError{From: from, Intent: intent}
}

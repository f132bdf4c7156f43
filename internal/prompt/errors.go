package prompt

import (
	"errors"
	"fmt"
)

// ErrAborted is returned when the user interrupts a prompt with Ctrl-C or
// closes its input.
var ErrAborted = errors.New("prompt aborted by user")

// TTYRequiredError is returned when interactive input is needed but stdin is
// not a terminal.
type TTYRequiredError struct {
	Operation string
}

func (e *TTYRequiredError) Error() string {
	if e.Operation != "" {
		return "stdin is not a terminal; cannot " + e.Operation + " interactively"
	}
	return "stdin is not a terminal; interactive input not available"
}

// MissingError is returned by non-interactive prompts that hold no value for
// a parameter.
type MissingError struct {
	Namespace string
	Name      string
	// Source names where the value was looked for, e.g. an environment
	// variable.
	Source string
}

func (e *MissingError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("no value for param '%s' in namespace '%s' (set %s)", e.Name, e.Namespace, e.Source)
	}
	return fmt.Sprintf("no value for param '%s' in namespace '%s'", e.Name, e.Namespace)
}

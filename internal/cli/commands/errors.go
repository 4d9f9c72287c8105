package commands

import (
	"fmt"
	"strings"
)

// ExitError carries a process exit code out of a command whose diagnostics
// have already been printed.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// MissingArgumentsError lists required positional arguments that were not given.
type MissingArgumentsError struct {
	Names []string
}

func (e *MissingArgumentsError) Error() string {
	return "missing required arguments: " + strings.Join(e.Names, ", ")
}

// Messages returns one diagnostic line per missing argument.
func (e *MissingArgumentsError) Messages() []string {
	msgs := make([]string, len(e.Names))
	for i, name := range e.Names {
		msgs[i] = "Missing required argument: " + name
	}
	return msgs
}

// missingArguments returns a MissingArgumentsError naming every position in
// names that args does not fill, or nil.
func missingArguments(args []string, names ...string) *MissingArgumentsError {
	if len(args) >= len(names) {
		return nil
	}
	return &MissingArgumentsError{Names: names[len(args):]}
}

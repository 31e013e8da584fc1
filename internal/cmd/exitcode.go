package cmd

import (
	"context"
	"errors"
	"fmt"
)

const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitCanceled = 130
)

// ExitStatusError carries an explicit process exit code through the error
// chain for paths that set one.
type ExitStatusError struct {
	Code int
	Err  error
}

func (e *ExitStatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitStatusError) Unwrap() error {
	return e.Err
}

// ExitCode maps a command error to a stable process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	var ese *ExitStatusError
	if errors.As(err, &ese) {
		return ese.Code
	}
	return ExitFailure
}

package cmd

import (
	"errors"
	"fmt"
)

// SilentExitError signals an exit code without printing an error. Scripting
// commands such as "kpart check" use it to report status.
type SilentExitError struct {
	Code int
}

func (e *SilentExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

// NewSilentExit returns an error that makes Execute exit with code.
func NewSilentExit(code int) error {
	return &SilentExitError{Code: code}
}

// IsSilentExit reports whether err is a SilentExitError and returns its code.
func IsSilentExit(err error) (int, bool) {
	var se *SilentExitError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}

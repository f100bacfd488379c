package commands

import (
	"errors"
	"fmt"
)

// Exit codes returned by the gtts binary.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// UsageError reports invalid or conflicting command-line input. It is
// never retried and maps to ExitUsage.
type UsageError struct {
	// Param names the offending argument or flag, if any.
	Param string

	// Msg describes the problem.
	Msg string
}

func (e *UsageError) Error() string {
	if e.Param == "" {
		return e.Msg
	}
	return fmt.Sprintf("invalid value for %s: %s", e.Param, e.Msg)
}

func usageErrorf(param, format string, args ...any) *UsageError {
	return &UsageError{Param: param, Msg: fmt.Sprintf(format, args...)}
}

// IsUsageError reports whether err is or wraps a *UsageError.
func IsUsageError(err error) bool {
	var e *UsageError
	return errors.As(err, &e)
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsUsageError(err):
		return ExitUsage
	default:
		return ExitError
	}
}

package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agbru/questbench/internal/quest"
)

// Application exit codes define the standard exit statuses for the
// harness. Per-cell errors never surface here; only whole-run failures
// map to a non-zero code.
const (
	ExitSuccess          = 0   // Indicates successful execution.
	ExitErrorGeneric     = 1   // Indicates a generic error.
	ExitErrorEmptyReport = 2   // Indicates that no cell produced an outcome.
	ExitErrorMergeTarget = 3   // Indicates an invalid benchmark merge target.
	ExitErrorConfig      = 4   // Indicates a configuration error.
	ExitErrorCanceled    = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ErrEmptyReport signals that an orchestration run attempted zero cells.
// It is fatal to the whole run: an empty calendar means the registry was
// never populated, which is an upstream misconfiguration.
var ErrEmptyReport = errors.New("empty report: no cell had a registered solver")

// ConfigError represents a user configuration error, such as invalid
// flags or values. It indicates that the harness cannot proceed due to
// incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// MissingInputError reports that a cell's persisted input data could not
// be read. It is fatal to that one cell only; the batch continues.
type MissingInputError struct {
	// Path is the data file that could not be read.
	Path string
	// Cause is the underlying filesystem error.
	Cause error
}

// Error returns a formatted message naming the unreadable data file.
func (e MissingInputError) Error() string {
	return fmt.Sprintf("missing input file %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying filesystem error, allowing inspection
// with errors.Is and errors.As.
func (e MissingInputError) Unwrap() error { return e.Cause }

// SolverFailureError reports that a solver aborted or exceeded its
// timeout. It is recorded as a failure outcome for exactly that cell;
// sibling cells are unaffected.
type SolverFailureError struct {
	// Day and Part identify the failed cell.
	Day  quest.Day
	Part quest.Part
	// Message describes the abnormal termination.
	Message string
}

// Error returns a formatted message identifying the failed cell.
func (e SolverFailureError) Error() string {
	return fmt.Sprintf("day %s part %s: solver failed: %s", e.Day, e.Part, e.Message)
}

// TimeoutError represents a solver that exceeded its per-cell bound. It
// captures the operation name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// MergeTargetError reports that the benchmark merge target is unusable:
// the file is unreadable or its sentinel markers are absent or inverted.
// The merge is all-or-nothing, so the target is never partially written.
type MergeTargetError struct {
	// Path is the target document, when known.
	Path string
	// Reason explains why the merge could not proceed.
	Reason string
}

// Error returns a formatted message describing the invalid target.
func (e MergeTargetError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid merge target: %s", e.Reason)
	}
	return fmt.Sprintf("invalid merge target %s: %s", e.Path, e.Reason)
}

// WrapError wraps an error with additional context using fmt.Errorf and
// %w, preserving the chain for errors.Is and errors.As.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or
// deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps err to the process exit code. Unrecognized errors map
// to the generic failure code.
func ExitCodeFor(err error) int {
	var configErr ConfigError
	var mergeErr MergeTargetError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrEmptyReport):
		return ExitErrorEmptyReport
	case errors.As(err, &mergeErr):
		return ExitErrorMergeTarget
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}

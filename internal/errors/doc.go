// Package apperrors defines the error taxonomy and exit codes of the
// harness.
//
// Per-cell errors (MissingInputError, SolverFailureError) never abort
// sibling cells; only the whole-run errors (ErrEmptyReport,
// MergeTargetError) terminate the overall operation. ExitCodeFor maps
// an error to the corresponding process exit status.
package apperrors

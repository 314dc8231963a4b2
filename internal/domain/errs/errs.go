// Package errs holds the error kinds shared by every allocation operation.
// Each kind is a sentinel; callers match with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotEligible       = errors.New("applicant not eligible")
	ErrAlreadyApplied    = errors.New("applicant already has an application")
	ErrNoCapacity        = errors.New("no remaining capacity")
	ErrRoleConflict      = errors.New("applicant and officer roles conflict on this project")
	ErrInvalidTransition = errors.New("transition not allowed from current state")
	ErrUnauthorized      = errors.New("actor not entitled to this action")
	ErrAlreadyIssued     = errors.New("receipt already issued")
	ErrAlreadyPaid       = errors.New("invoice already paid")
	ErrAlreadyBooked     = errors.New("application already booked")
	ErrAlreadyRequested  = errors.New("withdrawal already requested")
	ErrAlreadyAssigned   = errors.New("officer already holds a project assignment")
	ErrProjectInUse      = errors.New("project still has officers or applicants attached")
	ErrManagerBusy       = errors.New("manager already handles a project in this period")

	// ErrStorage matches every *StorageError.
	ErrStorage = errors.New("storage failure")
)

// StorageError reports a repository call that did not complete.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage: %s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// Storage wraps err as a StorageError. Nil stays nil and errors that already
// carry a kind from this package are returned as they are.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) || errors.Is(err, ErrNotFound) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// Reason attaches a human-readable reason to a kind without losing it.
func Reason(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

var kinds = []struct {
	err  error
	name string
}{
	{ErrNotFound, "not_found"},
	{ErrInvalidInput, "invalid_input"},
	{ErrNotEligible, "not_eligible"},
	{ErrAlreadyApplied, "already_applied"},
	{ErrNoCapacity, "no_capacity"},
	{ErrRoleConflict, "role_conflict"},
	{ErrInvalidTransition, "invalid_transition"},
	{ErrUnauthorized, "unauthorized"},
	{ErrAlreadyIssued, "already_issued"},
	{ErrAlreadyPaid, "already_paid"},
	{ErrAlreadyBooked, "already_booked"},
	{ErrAlreadyRequested, "already_requested"},
	{ErrAlreadyAssigned, "already_assigned"},
	{ErrProjectInUse, "project_in_use"},
	{ErrManagerBusy, "manager_busy"},
	{ErrStorage, "storage"},
}

// Kind names the error kind carried by err: "ok" for nil, "unknown" when
// err carries none of the kinds above.
func Kind(err error) string {
	if err == nil {
		return "ok"
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "unknown"
}

package credentials

import (
	"errors"
	"fmt"

	"github.com/jellydator/validation"
)

// ErrNotFound is the single outcome for an unknown username, a wrong password and an unknown
// session token. Callers cannot tell these cases apart.
var ErrNotFound error = errors.New("user not found")

var ErrTokenAttemptsExhausted error = errors.New("no unique session token found")

var (
	errTaken      = validation.NewError("validation_taken", "has already been taken")
	errUnhashable = validation.NewError("validation_password_unhashable", "cannot be hashed")
)

// ValidationError carries field-level failures keyed by field name.
type ValidationError struct {
	Errors validation.Errors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid user: %s", e.Errors.Error())
}

// Field returns the failure recorded for name, or nil.
func (e *ValidationError) Field(name string) error {
	return e.Errors[name]
}

// PersistenceError is a storage failure the caller may retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

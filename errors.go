package dto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey indicates an attribute name that is empty or numeric.
	ErrInvalidKey = errors.New("dto: invalid attribute key")
	// ErrReadOnly indicates a mutation on an initialized read-only container.
	ErrReadOnly = errors.New("dto: container is read only")
	// ErrNotFillable indicates an attribute outside the fillable whitelist.
	ErrNotFillable = errors.New("dto: attribute is not fillable")
	// ErrOverrideForbidden indicates an overwrite attempt under the
	// forbid-overrides policy.
	ErrOverrideForbidden = errors.New("dto: attribute override forbidden")
	// ErrUnknownAttribute indicates a read of an absent attribute while
	// ignore-unknown is disabled.
	ErrUnknownAttribute = errors.New("dto: unknown attribute")
	// ErrInvalidArgument indicates the factory received an empty or invalid
	// target type, or source data that normalizes to nothing.
	ErrInvalidArgument = errors.New("dto: invalid argument")
	// ErrRuleRejected indicates an attribute rule evaluated to false.
	ErrRuleRejected = errors.New("dto: attribute rejected by rule")
)

// AttributeError carries the attribute name alongside the failure kind so
// callers can match the kind with errors.Is and still recover the name.
type AttributeError struct {
	Name string
	Err  error
}

func (e *AttributeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Name == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Name)
}

func (e *AttributeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func attributeError(name string, kind error) error {
	return &AttributeError{Name: name, Err: kind}
}

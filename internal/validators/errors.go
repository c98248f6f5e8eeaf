// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRequired         = errors.New("is required")
	ErrInvalidProgram   = errors.New("unknown program")
	ErrInvalidClassroom = errors.New("classroom does not belong to the program")
	ErrInvalidPeriod    = errors.New("period must be between 1 and 6")
	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD")
	ErrInvalidKind      = errors.New("type must be book or borrow")
	ErrInvalidRole      = errors.New("role must be admin or teacher")
	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidUsername  = errors.New("username must not contain spaces")
)

// ValidationError reports a single invalid field.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

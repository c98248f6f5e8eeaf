// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the booking store
// or the remote API.
//
// Every failure is a *[ValidationError] naming the offending field and
// matching [ErrValidation] with errors.Is, so callers can tell bad input
// apart from conflicts and remote failures.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

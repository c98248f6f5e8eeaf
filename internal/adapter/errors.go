// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport matches every *TransportError.
	ErrTransport = errors.New("remote transport failure")
	// ErrRemote matches every *RemoteError.
	ErrRemote = errors.New("remote operation failed")
	// ErrEmptyAddress is returned when no endpoint URL is configured.
	ErrEmptyAddress = errors.New("empty address")
)

// TransportError reports that an operation never produced a usable
// envelope: the request failed on the network, the HTTP status was not 2xx,
// or the answer could not be decoded.
type TransportError struct {
	// Action is the remote operation name.
	Action string
	// StatusCode and Status are set for non-2xx answers.
	StatusCode int
	Status     string
	// Err is the underlying network or decoding failure.
	Err error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: transport: %v", e.Action, e.Err)
	}
	return fmt.Sprintf("%s: http %d %s", e.Action, e.StatusCode, e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// RemoteError carries the message of a non-success envelope.
type RemoteError struct {
	Action  string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: remote error", e.Action)
	}
	return fmt.Sprintf("%s: %s", e.Action, e.Message)
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}

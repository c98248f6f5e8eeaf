// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// EnvelopeStatusSuccess is the status value of a successful response.
const EnvelopeStatusSuccess = "success"

// Request is the single request shape accepted by the remote API.
type Request struct {
	// Action names the remote operation, e.g. "getBookings".
	Action string `json:"action"`

	// Payload is the operation argument, or null.
	Payload any `json:"payload"`
}

// Response is the envelope every remote operation answers with.
type Response struct {
	// Status is "success" or an error marker.
	Status string `json:"status"`

	// Data holds the operation result when Status is "success".
	Data json.RawMessage `json:"data,omitempty"`

	// Message describes the failure otherwise.
	Message string `json:"message,omitempty"`
}

// OK reports whether the envelope signals success.
func (r Response) OK() bool {
	return r.Status == EnvelopeStatusSuccess
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording of the booking client.
//
// All Msg* constants are the messages the CLI prints when an operation
// fails. Keeping them in one place keeps the wording consistent across
// commands.
package app

const (
	// MsgServerUnavailable is shown when the booking service cannot be
	// reached or answers with something other than a response envelope.
	MsgServerUnavailable = "Network unavailable or booking service unreachable. Please try again."

	// MsgTimeout is shown when a remote call exceeds the request timeout.
	MsgTimeout = "The booking service did not answer in time. Please try again."

	// MsgRemoteFailed is shown for a failed remote operation that carries
	// no message of its own.
	MsgRemoteFailed = "The booking service rejected the request."

	// MsgInvalidLoginPassword is shown when login is refused.
	MsgInvalidLoginPassword = "Invalid username or password."

	// MsgNotSignedIn is shown when a command needs a session.
	MsgNotSignedIn = "You are not signed in. Run `avbook login <username>` first."

	// MsgAccessDenied is shown when the signed-in role may not perform an
	// operation.
	MsgAccessDenied = "You do not have permission to do that."

	// MsgBookingNotFound is shown for an unknown booking id.
	MsgBookingNotFound = "Booking not found. It may have been removed; refresh and try again."

	// MsgInvalidTransition is shown when a status change skips a step or
	// leaves a final status.
	MsgInvalidTransition = "That status change is not allowed for this booking."

	// MsgMutationInFlight is shown when a booking already has a pending
	// change.
	MsgMutationInFlight = "This booking is still being updated. Please wait a moment."

	// MsgClassroomConflict is the prefix of a classroom double-booking.
	MsgClassroomConflict = "Classroom already booked"

	// MsgEquipmentConflict is the prefix of an equipment double-booking.
	MsgEquipmentConflict = "Equipment already booked for this period"

	// MsgInvalidDataProvided is the prefix of a field validation failure.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgUnexpected is the fallback for errors without a dedicated message.
	MsgUnexpected = "Something went wrong. Please try again."
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-av-booking/internal/adapter"
	"github.com/MKhiriev/go-av-booking/internal/booking"
	"github.com/MKhiriev/go-av-booking/internal/service"
	"github.com/MKhiriev/go-av-booking/internal/validators"
)

var messages = []struct {
	err error
	msg string
}{
	{service.ErrLoginRefused, MsgInvalidLoginPassword},
	{service.ErrNotAuthenticated, MsgNotSignedIn},
	{service.ErrForbidden, MsgAccessDenied},
	{service.ErrBookingNotFound, MsgBookingNotFound},
	{service.ErrInvalidTransition, MsgInvalidTransition},
	{service.ErrMutationInFlight, MsgMutationInFlight},
	{context.DeadlineExceeded, MsgTimeout},
	{adapter.ErrTransport, MsgServerUnavailable},
	{adapter.ErrRemote, MsgRemoteFailed},
}

var fieldLabels = map[string]string{
	validators.FieldTeacherName: "Teacher",
	validators.FieldProgram:     "Program",
	validators.FieldClassroom:   "Classroom",
	validators.FieldPeriod:      "Period",
	validators.FieldDate:        "Date",
	validators.FieldEquipment:   "Equipment",
	validators.FieldKind:        "Type",
	validators.FieldID:          "ID",
	validators.FieldName:        "Name",
	validators.FieldUsername:    "Username",
	validators.FieldRole:        "Role",
	validators.FieldPassword:    "Password",
}

// Describe turns err into the message shown to the user. Conflicts name the
// booking or items in the way, validation failures name the field, and a
// remote failure shows the service's own message when it has one.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var conflict *booking.ConflictError
	if errors.As(err, &conflict) {
		if conflict.Kind == booking.ClassroomConflict {
			return fmt.Sprintf("%s: %s, period %d (by %s).",
				MsgClassroomConflict, conflict.With.Classroom, conflict.With.Period, conflict.With.TeacherName)
		}
		return fmt.Sprintf("%s: %s.", MsgEquipmentConflict, strings.Join(conflict.Items, ", "))
	}

	var invalid *validators.ValidationError
	if errors.As(err, &invalid) {
		label, ok := fieldLabels[invalid.Field]
		if !ok {
			label = invalid.Field
		}
		return fmt.Sprintf("%s: %s %v.", MsgInvalidDataProvided, label, invalid.Err)
	}

	var remote *adapter.RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}

	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return MsgUnexpected
}

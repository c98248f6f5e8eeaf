// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/go-av-booking/internal/booking"
	"github.com/MKhiriev/go-av-booking/models"
)

// Booking draft field names, as used in the wire format.
const (
	FieldTeacherName = "teacherName"
	FieldProgram     = "program"
	FieldClassroom   = "classroom"
	FieldPeriod      = "period"
	FieldDate        = "date"
	FieldEquipment   = "equipment"
	FieldKind        = "type"
)

var draftFields = []string{
	FieldTeacherName, FieldProgram, FieldClassroom, FieldPeriod, FieldDate, FieldEquipment, FieldKind,
}

// BookingValidator validates [models.BookingDraft] values.
type BookingValidator struct {
	cal booking.Calendar
}

// NewBookingValidator returns a validator reading dates in cal's timezone.
func NewBookingValidator(cal booking.Calendar) Validator {
	return &BookingValidator{cal: cal}
}

// Validate checks a draft (value or pointer). Without fields every required
// field is checked, in wire order, and the first failure is returned.
func (v *BookingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BookingDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.BookingDraft:
		return v.validateDraft(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *BookingValidator) validateDraft(_ context.Context, d models.BookingDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = draftFields
	}

	for _, f := range fields {
		switch f {
		case FieldTeacherName:
			if strings.TrimSpace(d.TeacherName) == "" {
				return invalid(f, ErrRequired)
			}
		case FieldProgram:
			if d.Program == "" {
				return invalid(f, ErrRequired)
			}
			if !booking.ValidProgram(d.Program) {
				return invalid(f, ErrInvalidProgram)
			}
		case FieldClassroom:
			classroom := strings.TrimSpace(d.Classroom)
			if classroom == "" {
				return invalid(f, ErrRequired)
			}
			if !slices.Contains(booking.ClassroomsFor(d.Program), classroom) {
				return invalid(f, ErrInvalidClassroom)
			}
		case FieldPeriod:
			if d.Period == 0 {
				return invalid(f, ErrRequired)
			}
			if !booking.ValidPeriod(d.Period) {
				return invalid(f, ErrInvalidPeriod)
			}
		case FieldDate:
			if strings.TrimSpace(d.Date) == "" {
				return invalid(f, ErrRequired)
			}
			if _, ok := v.cal.Day(d.Date); !ok {
				return invalid(f, ErrInvalidDate)
			}
		case FieldEquipment:
			if len(models.NormalizeEquipment(d.Equipment)) == 0 {
				return invalid(f, ErrRequired)
			}
		case FieldKind:
			if d.Kind == "" {
				return invalid(f, ErrRequired)
			}
			if !d.Kind.Valid() {
				return invalid(f, ErrInvalidKind)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// NormalizeDraft trims every text field, normalizes the equipment list and
// rewrites the date to "2006-01-02" when it can be read.
func NormalizeDraft(cal booking.Calendar, d models.BookingDraft) models.BookingDraft {
	d.TeacherName = strings.TrimSpace(d.TeacherName)
	d.Program = models.Program(strings.TrimSpace(string(d.Program)))
	d.Classroom = strings.TrimSpace(d.Classroom)
	d.UnitNumber = strings.TrimSpace(d.UnitNumber)
	d.UnitName = strings.TrimSpace(d.UnitName)
	d.LessonPlan = strings.TrimSpace(d.LessonPlan)
	d.Equipment = models.NormalizeEquipment(d.Equipment)
	d.Kind = models.Kind(strings.TrimSpace(string(d.Kind)))
	if day, ok := cal.Day(d.Date); ok {
		d.Date = day
	} else {
		d.Date = strings.TrimSpace(d.Date)
	}
	return d
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package booking

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // school timezone must resolve on hosts without zoneinfo

	"github.com/MKhiriev/go-av-booking/models"
)

// DayLayout is the layout of a calendar day string.
const DayLayout = "2006-01-02"

// DefaultTimezone is the civil timezone booking days are defined in.
const DefaultTimezone = "Asia/Bangkok"

// Calendar turns stored booking dates into school days.
//
// The backend keeps dates in spreadsheet cells and may return either a plain
// day or a full UTC timestamp of local midnight. A timestamp is converted to
// the school's civil timezone before its day is taken; local device time and
// UTC are never used.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// NewCalendar returns a calendar for the named IANA timezone. An empty name
// selects [DefaultTimezone].
func NewCalendar(timezone string) (Calendar, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Calendar{}, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return Calendar{loc: loc, now: time.Now}, nil
}

// MustCalendar is like NewCalendar but panics on an unknown timezone.
func MustCalendar(timezone string) Calendar {
	cal, err := NewCalendar(timezone)
	if err != nil {
		panic(err)
	}
	return cal
}

// WithClock returns a copy of c that reads the current time from now.
func (c Calendar) WithClock(now func() time.Time) Calendar {
	c.now = now
	return c
}

// Location returns the civil timezone of the calendar.
func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// Day normalizes a stored date to "2006-01-02" in the school timezone.
// ok is false when raw cannot be read as a date.
func (c Calendar) Day(raw string) (day string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	if len(raw) == len(DayLayout) {
		if _, err := time.Parse(DayLayout, raw); err == nil {
			return raw, true
		}
		return "", false
	}

	if t, ok := models.ParseTimestamp(raw, c.Location()); ok {
		return t.In(c.Location()).Format(DayLayout), true
	}

	return "", false
}

// SameDay reports whether two stored dates fall on the same school day.
func (c Calendar) SameDay(a, b string) bool {
	da, okA := c.Day(a)
	db, okB := c.Day(b)
	return okA && okB && da == db
}

// Today returns the current school day.
func (c Calendar) Today() string {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	return now().In(c.Location()).Format(DayLayout)
}

// FormatDay renders t as a school day.
func (c Calendar) FormatDay(t time.Time) string {
	return t.In(c.Location()).Format(DayLayout)
}

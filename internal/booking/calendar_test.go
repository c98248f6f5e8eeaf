// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendar_Day(t *testing.T) {
	cal := MustCalendar("Asia/Bangkok")

	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "plain day", raw: "2024-07-22", want: "2024-07-22", wantOK: true},
		{name: "utc timestamp of local midnight", raw: "2024-07-21T17:00:00.000Z", want: "2024-07-22", wantOK: true},
		{name: "utc timestamp late evening", raw: "2024-07-22T16:59:59Z", want: "2024-07-22", wantOK: true},
		{name: "utc timestamp crossing midnight", raw: "2024-07-22T17:00:00Z", want: "2024-07-23", wantOK: true},
		{name: "offset timestamp", raw: "2024-07-22T09:00:00+07:00", want: "2024-07-22", wantOK: true},
		{name: "civil timestamp without zone", raw: "2024-07-22 08:30:00", want: "2024-07-22", wantOK: true},
		{name: "padded", raw: "  2024-07-22 ", want: "2024-07-22", wantOK: true},
		{name: "empty", raw: "", wantOK: false},
		{name: "garbage", raw: "next monday", wantOK: false},
		{name: "invalid day", raw: "2024-13-40", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cal.Day(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCalendar_UsesSchoolTimezoneNotUTC(t *testing.T) {
	bkk := MustCalendar("Asia/Bangkok")
	utc := MustCalendar("UTC")

	raw := "2024-07-21T17:00:00Z"

	bkkDay, _ := bkk.Day(raw)
	utcDay, _ := utc.Day(raw)

	assert.Equal(t, "2024-07-22", bkkDay)
	assert.Equal(t, "2024-07-21", utcDay)
}

func TestCalendar_SameDay(t *testing.T) {
	cal := MustCalendar("")

	assert.True(t, cal.SameDay("2024-07-22", "2024-07-21T17:00:00Z"))
	assert.False(t, cal.SameDay("2024-07-22", "2024-07-23"))
	assert.False(t, cal.SameDay("2024-07-22", "bad"))
}

func TestCalendar_Today(t *testing.T) {
	fixed := time.Date(2024, 7, 21, 18, 0, 0, 0, time.UTC)
	cal := MustCalendar("Asia/Bangkok").WithClock(func() time.Time { return fixed })

	assert.Equal(t, "2024-07-22", cal.Today())
}

func TestNewCalendar_UnknownTimezone(t *testing.T) {
	_, err := NewCalendar("Mars/Olympus_Mons")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load timezone")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking_UnmarshalJSON_CreatedAt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{name: "rfc3339 millis", raw: `"2024-07-22T03:00:00.000Z"`, want: time.Date(2024, 7, 22, 3, 0, 0, 0, time.UTC)},
		{name: "offset", raw: `"2024-07-22T10:00:00+07:00"`, want: time.Date(2024, 7, 22, 3, 0, 0, 0, time.UTC)},
		{name: "space separated", raw: `"2024-07-22 10:00:00"`, want: time.Date(2024, 7, 22, 10, 0, 0, 0, time.UTC)},
		{name: "plain day", raw: `"2024-07-22"`, want: time.Date(2024, 7, 22, 0, 0, 0, 0, time.UTC)},
		{name: "empty cell", raw: `""`},
		{name: "garbage", raw: `"yesterday"`},
		{name: "null", raw: `null`},
		{name: "number", raw: `1721617200`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Booking
			require.NoError(t, json.Unmarshal([]byte(`{"id":7,"createdAt":`+tt.raw+`}`), &b))
			assert.Equal(t, int64(7), b.ID)
			assert.True(t, tt.want.Equal(b.CreatedAt), "got %v", b.CreatedAt)
		})
	}
}

func TestBooking_UnmarshalJSON_OneBadRowKeepsList(t *testing.T) {
	raw := `[
		{"id":1,"classroom":"P.1A TP","equipment":"tv","status":"Booked","createdAt":"2024-07-22T03:00:00.000Z"},
		{"id":2,"classroom":"P.2A TP","equipment":["remote"],"status":"In Use","createdAt":""},
		{"id":3,"classroom":"Hall","status":"Returned"}
	]`

	var got []Booking
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	require.Len(t, got, 3)

	assert.False(t, got[0].CreatedAt.IsZero())
	assert.True(t, got[1].CreatedAt.IsZero())
	assert.True(t, got[2].CreatedAt.IsZero())

	// остальные поля декодируются как обычно
	assert.Equal(t, "P.2A TP", got[1].Classroom)
	assert.Equal(t, Equipment{"remote"}, got[1].Equipment)
	assert.Equal(t, StatusInUse, got[1].Status)
	assert.Equal(t, Equipment{"tv"}, got[0].Equipment)
}

func TestBooking_UnmarshalJSON_OverwritesPreviousCreatedAt(t *testing.T) {
	b := Booking{CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"createdAt":""}`), &b))
	assert.True(t, b.CreatedAt.IsZero())
}

func TestParseTimestamp(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)

	got, ok := ParseTimestamp(" 2024-07-22 08:30:00 ", loc)
	require.True(t, ok)
	assert.True(t, time.Date(2024, 7, 22, 1, 30, 0, 0, time.UTC).Equal(got))

	_, ok = ParseTimestamp("", loc)
	assert.False(t, ok)

	_, ok = ParseTimestamp("2024-07-22", loc)
	assert.False(t, ok)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ReportFilter narrows the booking cache for the usage report. Zero values
// disable the corresponding criterion.
type ReportFilter struct {
	// Status keeps only bookings in exactly this status.
	Status Status

	// From and To bound the usage day inclusively ("2006-01-02").
	From string
	To   string

	// Query is matched case-insensitively against teacher, equipment items,
	// classroom and lesson plan.
	Query string
}

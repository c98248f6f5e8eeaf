// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
)

// Equipment is the ordered list of equipment item names attached to a
// booking. Items are never empty strings.
//
// The backend stores the list in a spreadsheet cell, so it may come back as a
// JSON array or as a single comma-joined string. Both are accepted; any other
// shape decodes to an empty list.
type Equipment []string

// ParseEquipment splits a comma-joined list, trimming items and dropping
// empty ones.
func ParseEquipment(raw string) Equipment {
	parts := strings.Split(raw, ",")
	items := make(Equipment, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// NormalizeEquipment trims every item and drops empty ones, keeping order.
func NormalizeEquipment(items []string) Equipment {
	out := make(Equipment, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Equipment) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		*e = Equipment{}
		return nil
	}

	switch value := v.(type) {
	case []any:
		items := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		*e = NormalizeEquipment(items)
	case string:
		*e = ParseEquipment(value)
	default:
		*e = Equipment{}
	}

	return nil
}

// MarshalJSON always emits an array, never null.
func (e Equipment) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(e))
}

// String joins the items with ", " for display and export.
func (e Equipment) String() string {
	return strings.Join(e, ", ")
}

// Clone returns an independent copy of the list.
func (e Equipment) Clone() Equipment {
	if e == nil {
		return nil
	}
	return append(Equipment(nil), e...)
}

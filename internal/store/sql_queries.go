// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const localStateTable = "local_state"

func buildGetStateQuery(key string) (string, []any, error) {
	return sq.Select("value").
		From(localStateTable).
		Where(sq.Eq{"name": key}).
		Limit(1).
		ToSql()
}

// buildPutStateQuery builds an upsert keyed on the primary key.
func buildPutStateQuery(key, value string, now time.Time) (string, []any, error) {
	return sq.Insert(localStateTable).
		Columns("name", "value", "updated_at").
		Values(key, value, now.UTC()).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteStateQuery(key string) (string, []any, error) {
	return sq.Delete(localStateTable).
		Where(sq.Eq{"name": key}).
		ToSql()
}

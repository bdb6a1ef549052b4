// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	preferencesTable = "preferences"

	colPrefKey   = "pref_key"
	colPrefValue = "pref_value"
	colUpdatedAt = "updated_at"
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetPreferenceQuery(key string) (string, []any, error) {
	return sqlite.
		Select(colPrefValue).
		From(preferencesTable).
		Where(sq.Eq{colPrefKey: key}).
		ToSql()
}

func buildSetPreferenceQuery(key, value string, updatedAt time.Time) (string, []any, error) {
	return sqlite.
		Insert(preferencesTable).
		Columns(colPrefKey, colPrefValue, colUpdatedAt).
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT(" + colPrefKey + ") DO UPDATE SET " +
			colPrefValue + " = excluded." + colPrefValue + ", " +
			colUpdatedAt + " = excluded." + colUpdatedAt).
		ToSql()
}

func buildDeletePreferenceQuery(key string) (string, []any, error) {
	return sqlite.
		Delete(preferencesTable).
		Where(sq.Eq{colPrefKey: key}).
		ToSql()
}

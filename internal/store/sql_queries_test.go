// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildGetPreferenceQuery(t *testing.T) {
	query, args, err := buildGetPreferenceQuery("custom_servers")
	require.NoError(t, err)

	assert.Equal(t, "SELECT pref_value FROM preferences WHERE pref_key = ?", query)
	assert.Equal(t, []any{"custom_servers"}, args)
}

func Test_buildSetPreferenceQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	query, args, err := buildSetPreferenceQuery("k", "v", now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "insert into preferences (pref_key,pref_value,updated_at) values (?,?,?)"))
	assert.Contains(t, q, "on conflict(pref_key) do update set")
	assert.Contains(t, q, "pref_value = excluded.pref_value")
	assert.Contains(t, q, "updated_at = excluded.updated_at")
	assert.NotContains(t, query, "$1", "sqlite uses question mark placeholders")
	assert.Equal(t, []any{"k", "v", now}, args)
}

func Test_buildDeletePreferenceQuery(t *testing.T) {
	query, args, err := buildDeletePreferenceQuery("k")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM preferences WHERE pref_key = ?", query)
	assert.Equal(t, []any{"k"}, args)
}

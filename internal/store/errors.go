// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the store. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrPreferenceNotFound is returned when no value is stored under a key.
	ErrPreferenceNotFound = errors.New("preference was not found")

	// ErrCreatingDirectory is returned when the working directory or one of
	// its subdirectories can not be created.
	ErrCreatingDirectory = errors.New("failed to create working directory")

	// ErrWritingMarker is returned when the completion marker can not be
	// written.
	ErrWritingMarker = errors.New("failed to write completion marker")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when reading a result row fails.
	ErrScanningRow = errors.New("failed to scan preference row")
)

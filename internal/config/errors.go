// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [LauncherConfig.validate].
var (
	// ErrInvalidAppConfigs indicates invalid launcher settings (for example,
	// a non-positive minimum Java version or a malformed URL).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates an invalid core URL or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty or in-memory DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidProcessConfigs indicates a negative command timeout.
	ErrInvalidProcessConfigs = errors.New("invalid process configuration")
)

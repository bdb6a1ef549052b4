// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the launcher packages: the
// resty based HTTP client wrapper and the identifier generator.
package utils

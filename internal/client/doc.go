// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive launcher runtime.
//
// It runs the terminal UI in the foreground and the background workers next to
// it, and releases persistent storage once both have stopped.
package client

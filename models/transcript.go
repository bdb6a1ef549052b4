// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EntryKind classifies a console transcript entry.
type EntryKind string

const (
	EntryCommand EntryKind = "command"
	EntryOutput  EntryKind = "output"
	EntryError   EntryKind = "error"
	EntryStdin   EntryKind = "stdin"
)

// TranscriptEntry is one line of the console transcript.
type TranscriptEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text"`
	Kind      EntryKind `json:"kind"`
}

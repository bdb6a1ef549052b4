// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CommandResult is the outcome of a single external process invocation.
// It is produced once per call and never merged with other results.
type CommandResult struct {
	// Success is true when the process started and exited with status 0.
	Success bool `json:"success"`
	// Output holds stdout, or stderr when stdout was empty.
	Output string `json:"output"`
	// Error holds stderr (or the spawn failure) for unsuccessful runs.
	Error string `json:"error,omitempty"`
}

// FailureMessage returns the best available description of a failed run.
func (r CommandResult) FailureMessage() string {
	if r.Error != "" {
		return r.Error
	}
	if r.Output != "" {
		return r.Output
	}
	return "command failed"
}

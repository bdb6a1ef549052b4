// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccountOperation names a tool call that can change the account roster.
type AccountOperation string

const (
	OperationList    AccountOperation = "list"
	OperationRefresh AccountOperation = "refresh"
	OperationLogin   AccountOperation = "login"
	OperationSelect  AccountOperation = "select"
	OperationDelete  AccountOperation = "delete"
)

// RosterPolicy describes what happens to the cached roster after an
// operation succeeds.
type RosterPolicy int

const (
	// RosterReplace rebuilds the roster from the operation's own output.
	RosterReplace RosterPolicy = iota
	// RosterRefetch discards the output and runs a fresh listing.
	RosterRefetch
	// RosterPatchSelect marks the target as the only selected account.
	RosterPatchSelect
	// RosterPatchRemove drops the target from the roster.
	RosterPatchRemove
)

func (p RosterPolicy) String() string {
	switch p {
	case RosterReplace:
		return "replace"
	case RosterRefetch:
		return "refetch"
	case RosterPatchSelect:
		return "patch-select"
	case RosterPatchRemove:
		return "patch-remove"
	default:
		return "unknown"
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// JavaStatus is the result of probing the local Java runtime.
//
// Installed is true only when a runtime was found and it satisfies the
// minimum version. Version holds whatever version text could be recovered,
// and is empty when no runtime answered.
type JavaStatus struct {
	Installed bool   `json:"installed"`
	Version   string `json:"version,omitempty"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/acgs-launcher/models"
)

type wizardUpdatedMsg struct{}

type wizardRetiredMsg struct{}

type accountsDoneMsg struct {
	status string
	err    error
}

type serversDoneMsg struct {
	status string
	err    error
}

type downloadDoneMsg struct {
	path string
	err  error
}

type downloadTickMsg struct{}

type consoleDoneMsg struct {
	err error
}

type coreStatusMsg models.CoreStatus

type linkOpenedMsg struct {
	url    string
	err    error
	copied bool
}

type clearStatusMsg struct{}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WizardStep identifies a step of the first-run setup wizard.
type WizardStep int

const (
	StepEnvironmentCheck WizardStep = iota
	StepDirectorySetup
	StepLicenseAgreement
	StepFinalize
)

// WizardStepCount is the number of wizard steps.
const WizardStepCount = 4

// LastWizardStep is the final wizard step.
const LastWizardStep = StepFinalize

// String returns the human readable title of the step.
func (s WizardStep) String() string {
	switch s {
	case StepEnvironmentCheck:
		return "Environment check"
	case StepDirectorySetup:
		return "Directory setup"
	case StepLicenseAgreement:
		return "License agreement"
	case StepFinalize:
		return "Finish setup"
	default:
		return "Unknown step"
	}
}

// WizardState is a snapshot of the setup wizard.
type WizardState struct {
	CurrentStep   WizardStep
	StepCompleted [WizardStepCount]bool
	Loading       bool
	Error         string

	// Java is the result of the latest environment check.
	Java JavaStatus
	// WorkDir is the path returned by directory creation.
	WorkDir string
	// LicensePromptOpen is true while the license acceptance prompt is shown.
	LicensePromptOpen bool
	// Done is set once the finalize step completed; it never resets.
	Done bool
}

// Completed reports whether the given step has been completed.
func (s WizardState) Completed(step WizardStep) bool {
	if step < 0 || int(step) >= WizardStepCount {
		return false
	}
	return s.StepCompleted[step]
}

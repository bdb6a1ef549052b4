// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/acgs-launcher/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	w := m.services.Wizard
	state := w.State()
	if key.Matches(keyMsg, keys.quit) {
		return m, tea.Quit
	}
	if state.Loading || state.Done {
		return m, nil
	}

	if state.LicensePromptOpen {
		switch {
		case key.Matches(keyMsg, keys.yes):
			w.AcceptLicense()
		case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
			w.DeclineLicense()
		case key.Matches(keyMsg, keys.open):
			return m, cmdOpenLink(w.OpenLicenseDocument, m.services.Links.LicenseURL)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.right):
		return m, m.cmdWizard(w.Advance)
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.left):
		w.Retreat()
	case key.Matches(keyMsg, keys.retry):
		return m, m.cmdWizard(w.RetryCurrent)
	case key.Matches(keyMsg, keys.open):
		switch state.CurrentStep {
		case models.StepEnvironmentCheck:
			return m, cmdOpenLink(w.OpenJavaDownload, m.services.Links.JavaDownloadURL)
		case models.StepLicenseAgreement:
			return m, cmdOpenLink(w.OpenLicenseDocument, m.services.Links.LicenseURL)
		}
	}
	return m, nil
}

func (m appModel) viewWizard() string {
	state := m.services.Wizard.State()

	var b strings.Builder
	for i := range models.WizardStepCount {
		step := models.WizardStep(i)
		marker := "[ ]"
		if state.Completed(step) {
			marker = "[x]"
		}
		line := fmt.Sprintf("%s %d. %s", marker, i+1, step)
		if step == state.CurrentStep {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(wizardStepBody(state))

	if state.Loading {
		b.WriteString("\n\n" + m.spinner.View() + " working...")
	}
	if state.Error != "" {
		b.WriteString("\n\n" + errorStyle.Render(state.Error))
	}

	hotKeys := "enter: next  esc: back  r: retry  q: quit"
	switch {
	case state.Done:
		hotKeys = ""
	case state.LicensePromptOpen:
		hotKeys = "y: accept  n: decline  o: read the license"
	case state.CurrentStep == models.StepEnvironmentCheck, state.CurrentStep == models.StepLicenseAgreement:
		hotKeys = "enter: next  esc: back  r: retry  o: open link  q: quit"
	}

	return renderPage(fmt.Sprintf("FIRST RUN SETUP %d/%d", int(state.CurrentStep)+1, models.WizardStepCount), b.String(), hotKeys)
}

func wizardStepBody(state models.WizardState) string {
	switch state.CurrentStep {
	case models.StepEnvironmentCheck:
		if state.Java.Installed {
			return "Java found: " + valueOrDash(state.Java.Version)
		}
		return "The launcher core needs Java 17 or newer."
	case models.StepDirectorySetup:
		if state.WorkDir != "" {
			return "Working directory: " + state.WorkDir
		}
		return "The working directory is created on this step."
	case models.StepLicenseAgreement:
		switch {
		case state.LicensePromptOpen:
			return "Do you accept the license agreement?"
		case state.Completed(models.StepLicenseAgreement):
			return successStyle.Render("License accepted")
		}
		return "Press r to review the license agreement again."
	case models.StepFinalize:
		if state.Done {
			return successStyle.Render("Setup complete")
		}
		return "Finishing setup."
	}
	return ""
}

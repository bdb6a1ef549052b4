// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package browser opens URLs in the user's default browser.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/MKhiriev/acgs-launcher/internal/logger"
)

//go:generate mockgen -source=opener.go -destination=../mock/browser_mock.go -package=mock

// ErrOpenFailed is returned when no browser could be launched.
var ErrOpenFailed = errors.New("failed to open url")

// Opener opens a URL outside the launcher. It does not wait for the browser.
type Opener interface {
	Open(rawURL string) error
}

type systemOpener struct {
	goos   string
	start  func(name string, args ...string) error
	logger *logger.Logger
}

// NewSystemOpener returns an [Opener] that hands URLs to the platform
// handler: xdg-open on Linux and BSD, open on macOS, rundll32 on Windows.
func NewSystemOpener(log *logger.Logger) Opener {
	return &systemOpener{
		goos:   runtime.GOOS,
		start:  startDetached,
		logger: log.WithComponent("browser"),
	}
}

func (s *systemOpener) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q is not a web address", ErrOpenFailed, rawURL)
	}

	name, args := openCommand(s.goos, u.String())
	if err = s.start(name, args...); err != nil {
		s.logger.Err(err).Str("func", "systemOpener.Open").Str("url", rawURL).Msg("failed to launch browser")
		return fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	s.logger.Debug().Str("func", "systemOpener.Open").Str("url", rawURL).Msg("browser launched")
	return nil
}

func openCommand(goos, target string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	case "darwin":
		return "open", []string{target}
	default:
		return "xdg-open", []string{target}
	}
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

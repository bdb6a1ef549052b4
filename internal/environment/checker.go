// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package environment checks the host for the runtime the launcher core
// needs.
package environment

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/acgs-launcher/internal/logger"
	"github.com/MKhiriev/acgs-launcher/internal/process"
	"github.com/MKhiriev/acgs-launcher/models"
)

//go:generate mockgen -source=checker.go -destination=../mock/environment_mock.go -package=mock

// JavaChecker reports whether a suitable Java runtime is installed.
// Check never fails: a missing runtime is a normal result.
type JavaChecker interface {
	Check(ctx context.Context) models.JavaStatus
}

type javaChecker struct {
	invoker  process.Invoker
	binary   string
	minMajor int
	logger   *logger.Logger
}

// NewJavaChecker returns a [JavaChecker] that runs "<binary> -version" and
// accepts runtimes with a major version of at least minMajor.
func NewJavaChecker(invoker process.Invoker, binary string, minMajor int, log *logger.Logger) JavaChecker {
	return &javaChecker{
		invoker:  invoker,
		binary:   binary,
		minMajor: minMajor,
		logger:   log.WithComponent("environment"),
	}
}

func (j *javaChecker) Check(ctx context.Context) models.JavaStatus {
	result := j.invoker.RunOnce(ctx, process.QuoteArg(j.binary)+" -version")
	if !result.Success || result.Output == process.FinishedPlaceholder {
		j.logger.Info().Str("func", "javaChecker.Check").Str("error", result.Error).Msg("java runtime not found")
		return models.JavaStatus{}
	}

	status := ParseJavaVersion(result.Output, j.minMajor)
	j.logger.Info().
		Str("func", "javaChecker.Check").
		Str("version", status.Version).
		Bool("installed", status.Installed).
		Msg("java runtime checked")
	return status
}

// ParseJavaVersion interprets the banner printed by "java -version".
//
// The version is the first double quoted token, e.g. 17.0.1 in
// `openjdk version "17.0.1" 2021-10-19`. Legacy "1.x" versions report x as
// the major version. When no quoted version is found the first line is
// returned as the version and the runtime is rejected.
func ParseJavaVersion(banner string, minMajor int) models.JavaStatus {
	line := versionLine(banner)
	if line == "" {
		return models.JavaStatus{}
	}

	version, ok := quoted(line)
	if !ok {
		return models.JavaStatus{Version: line}
	}

	major, ok := majorVersion(version)
	if !ok {
		return models.JavaStatus{Version: line}
	}

	return models.JavaStatus{Installed: major >= minMajor, Version: version}
}

// versionLine prefers the line announcing the version; JVMs may print
// notices such as "Picked up JAVA_TOOL_OPTIONS" first.
func versionLine(banner string) string {
	first := ""
	for _, line := range strings.Split(banner, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if first == "" {
			first = line
		}
		if strings.Contains(line, `version "`) {
			return line
		}
	}
	return first
}

func quoted(line string) (string, bool) {
	start := strings.IndexByte(line, '"')
	if start < 0 {
		return "", false
	}
	end := strings.IndexByte(line[start+1:], '"')
	if end < 0 {
		return "", false
	}
	return line[start+1 : start+1+end], true
}

func majorVersion(version string) (int, bool) {
	parts := strings.FieldsFunc(version, func(r rune) bool { return r == '.' || r == '_' || r == '-' || r == '+' })
	if len(parts) == 0 {
		return 0, false
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	if major != 1 {
		return major, true
	}

	if len(parts) < 2 {
		return 8, true
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return 8, true
	}
	return minor, true
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/MKhiriev/acgs-launcher/models"
)

// FinishedPlaceholder is reported as the output of a shell command that
// printed nothing.
const FinishedPlaceholder = "command finished"

// waitDelay bounds how long a cancelled command may keep its output pipes
// open through orphaned children.
const waitDelay = 500 * time.Millisecond

type execRequest struct {
	name  string
	args  []string
	stdin []string
	// placeholder replaces empty combined output when set.
	placeholder string
}

// execute runs the request and folds every outcome into a CommandResult.
func execute(ctx context.Context, req execRequest) models.CommandResult {
	cmd := exec.CommandContext(ctx, req.name, req.args...)
	cmd.WaitDelay = waitDelay
	if runtime.GOOS == "windows" {
		cmd.Env = append(os.Environ(), "CHCP=65001")
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if req.stdin != nil {
		cmd.Stdin = strings.NewReader(stdinPayload(req.stdin))
	}

	runErr := cmd.Run()
	if errors.Is(runErr, exec.ErrWaitDelay) {
		// The command itself succeeded; a background child held the pipes.
		runErr = nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return models.CommandResult{
			Success: false,
			Output:  decodeOutput(stdout.Bytes()),
			Error:   fmt.Sprintf("command cancelled: %v", ctxErr),
		}
	}

	var exitErr *exec.ExitError
	if runErr != nil && !errors.As(runErr, &exitErr) {
		return models.CommandResult{
			Success: false,
			Error:   fmt.Sprintf("failed to execute command: %v", runErr),
		}
	}

	out := decodeOutput(stdout.Bytes())
	errOut := decodeOutput(stderr.Bytes())

	combined := out
	if combined == "" {
		combined = errOut
	}
	if combined == "" {
		combined = req.placeholder
	}

	result := models.CommandResult{Success: runErr == nil, Output: combined}
	if !result.Success {
		result.Error = errOut
		if result.Error == "" {
			result.Error = runErr.Error()
		}
	}

	return result
}

// stdinPayload joins the non-blank lines, each followed by a newline.
func stdinPayload(lines []string) string {
	var b strings.Builder
	for _, line := range FilterInput(lines) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// FilterInput drops empty and whitespace-only lines, keeping order.
func FilterInput(lines []string) []string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

// decodeOutput returns b as a string. Output that is not valid UTF-8 is
// decoded as GBK, which is what Chinese Windows consoles emit.
func decodeOutput(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "�")
	}
	return string(decoded)
}

func shellCommand(commandLine string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd.exe", []string{"/c", commandLine}
	}
	return "sh", []string{"-c", commandLine}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

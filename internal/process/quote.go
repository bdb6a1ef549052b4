// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package process

import (
	"runtime"
	"strings"
)

// QuoteArg quotes s for the platform shell used by [Invoker] when it holds
// characters the shell would interpret.
func QuoteArg(s string) string {
	return quoteFor(runtime.GOOS, s)
}

func quoteFor(goos, s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\"'$&|;<>()*?`\\!#~%^") {
		return s
	}
	if goos == "windows" {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import "errors"

// ErrUnsupportedFormat is returned by [ForVersion] for unknown layouts.
var ErrUnsupportedFormat = errors.New("unsupported account table format")

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package parser turns the CMCL account table into [models.Account] records.
//
// The table layout belongs to the external tool and may change between tool
// releases, so every layout is a separate [AccountTableParser] selected by
// [FormatVersion]. Callers that do not care use [Parse], which always picks
// the current layout.
package parser

import (
	"fmt"

	"github.com/MKhiriev/acgs-launcher/models"
)

// FormatVersion identifies a known layout of the account table.
type FormatVersion int

const (
	// FormatV1 is the box drawn table printed by "account --list".
	FormatV1 FormatVersion = iota + 1
)

// CurrentFormat is the layout printed by the bundled core.
const CurrentFormat = FormatV1

// AccountTableParser recovers accounts from the raw text of an account
// listing. Implementations are pure: the same input always yields the same
// output, malformed rows are skipped and no input makes them panic.
type AccountTableParser interface {
	Parse(raw string) []models.Account
}

var parsers = map[FormatVersion]AccountTableParser{
	FormatV1: tableV1{},
}

// ForVersion returns the parser registered for v.
func ForVersion(v FormatVersion) (AccountTableParser, error) {
	p, ok := parsers[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, v)
	}
	return p, nil
}

// ParseVersion parses raw with the parser registered for v.
func ParseVersion(raw string, v FormatVersion) ([]models.Account, error) {
	p, err := ForVersion(v)
	if err != nil {
		return nil, err
	}
	return p.Parse(raw), nil
}

// Parse parses raw using [CurrentFormat].
func Parse(raw string) []models.Account {
	return parsers[CurrentFormat].Parse(raw)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/acgs-launcher/models"
)

const (
	ruleToken       = "+----+----+"
	cellDelimiter   = "|"
	continuationTag = "api/yggdrasil"
	serverScheme    = "https://"

	headerNameLabel     = "名称"
	externalAccountType = "外置账号"
)

// The selection column header is narrow, so the tool wraps "选择" over two
// lines. Either half must not be read as a selection marker.
var headerMarkerWords = map[string]struct{}{
	"选": {},
	"择": {},
}

var serverPattern = regexp.MustCompile(`https://([^/]+)`)

// Column positions inside a row split on the delimiter. Index 0 is the empty
// text before the opening delimiter.
const (
	colMarker = iota + 1
	colID
	colName
	colType
	colInfo

	minCells = colInfo + 1
)

// tableV1 parses the layout:
//
//	+----+----+----+----+----+
//	| 选 | 序 |名称|类型|其他|
//	+----+----+----+----+----+
//	| ✓  | 0  |Alex|外置账号|https://host/api/yggdrasil|
//	+----+----+----+----+----+
//
// The header row anchors the columns. When it carries extra blank columns in
// front of the known ones, data rows are read with the same shift.
type tableV1 struct{}

func (tableV1) Parse(raw string) []models.Account {
	lines := nonBlankLines(raw)
	accounts := make([]models.Account, 0)

	rules := 0
	offset := 0
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if isRule(line) {
			rules++
			if rules == 3 {
				break
			}
			continue
		}

		switch {
		case rules == 1:
			if shift, ok := headerOffset(line); ok {
				offset = shift
			}
		case rules == 2 && isRow(line):
			acc, ok := parseRow(splitCells(line), offset)
			if !ok {
				continue
			}
			if i+1 < len(lines) && isContinuation(lines[i+1], offset) {
				if extra, ok := continuationInfo(lines[i+1], offset); ok {
					acc.RawInfo = acc.RawInfo + " " + extra
					acc.Server = extractServer(acc.RawInfo)
				}
				i++
			}
			accounts = append(accounts, acc)
		}
	}

	return accounts
}

func nonBlankLines(raw string) []string {
	out := make([]string, 0)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func isRule(line string) bool {
	return strings.Contains(line, ruleToken)
}

func isRow(line string) bool {
	return strings.HasPrefix(line, cellDelimiter)
}

// isContinuation reports whether line carries the wrapped tail of the
// previous record. A line that parses as a record of its own is never a
// continuation, even when its info column mentions the protocol path.
func isContinuation(line string, offset int) bool {
	if !isRow(line) || isRule(line) || !strings.Contains(line, continuationTag) {
		return false
	}
	_, record := parseRow(splitCells(line), offset)
	return !record
}

func splitCells(line string) []string {
	cells := strings.Split(line, cellDelimiter)
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// headerOffset reports how many extra leading columns the header row has.
func headerOffset(line string) (int, bool) {
	if !isRow(line) {
		return 0, false
	}
	for i, cell := range splitCells(line) {
		if cell == headerNameLabel && i >= colName {
			return i - colName, true
		}
	}
	return 0, false
}

func parseRow(cells []string, offset int) (models.Account, bool) {
	if len(cells) < minCells+offset {
		return models.Account{}, false
	}

	marker := cells[colMarker+offset]
	name := cells[colName+offset]
	if name == "" || name == headerNameLabel {
		return models.Account{}, false
	}

	id, err := strconv.Atoi(cells[colID+offset])
	if err != nil {
		id = 0
	}
	if id < 0 {
		return models.Account{}, false
	}

	info := cells[colInfo+offset]
	return models.Account{
		ID:       id,
		Name:     name,
		Type:     normalizeType(cells[colType+offset]),
		Server:   extractServer(info),
		Selected: isSelectionMarker(marker),
		RawInfo:  info,
	}, true
}

func continuationInfo(line string, offset int) (string, bool) {
	cells := splitCells(line)
	if len(cells) < minCells+offset {
		return "", false
	}
	info := cells[colInfo+offset]
	return info, info != ""
}

func isSelectionMarker(cell string) bool {
	if cell == "" {
		return false
	}
	_, header := headerMarkerWords[cell]
	return !header
}

func normalizeType(label string) string {
	if label == externalAccountType {
		return models.AccountTypeAuthlib
	}
	return label
}

func extractServer(info string) string {
	if !strings.Contains(info, serverScheme) {
		return models.UnknownServer
	}
	m := serverPattern.FindStringSubmatch(info)
	if len(m) < 2 {
		return models.UnknownServer
	}
	return m[1]
}

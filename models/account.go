// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccountTypeAuthlib is the normalized type of accounts that authenticate
// against an external (authlib-injector) Yggdrasil server.
const AccountTypeAuthlib = "authlib"

// UnknownServer is reported when no server host could be extracted from the
// trailing info column of an account row.
const UnknownServer = "unknown"

// Account is one row of the launcher's account table.
//
// IDs are the launcher's own ordinals: unique within a single listing but not
// stable across invocations of the launcher.
type Account struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Server   string `json:"server"`
	Selected bool   `json:"selected"`
	// RawInfo is the unparsed trailing column, possibly merged with a
	// continuation row.
	RawInfo string `json:"raw_info"`
}

// IsExternal reports whether the account uses an external auth server.
func (a Account) IsExternal() bool {
	return a.Type == AccountTypeAuthlib
}

// ExternalServer is an authlib-injector server the user may log in to.
// Address is the logical key; uniqueness is advisory only.
type ExternalServer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	BuiltIn bool   `json:"-"`
}

// BuiltInServers returns the servers that ship with the launcher. They can not
// be removed by the user.
func BuiltInServers() []ExternalServer {
	return []ExternalServer{
		{Name: "ACGS", Address: "id.acgstation.com", BuiltIn: true},
		{Name: "JB Wiki", Address: "id.jb.wiki", BuiltIn: true},
	}
}

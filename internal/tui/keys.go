// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	left        key.Binding
	right       key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	retry       key.Binding
	open        key.Binding
	list        key.Binding
	refresh     key.Binding
	login       key.Binding
	servers     key.Binding
	download    key.Binding
	console     key.Binding
	add         key.Binding
	delete      key.Binding
	interactive key.Binding
	clear       key.Binding
	buildInfo   key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	left:        key.NewBinding(key.WithKeys("left", "h")),
	right:       key.NewBinding(key.WithKeys("right", "l")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("q")),
	retry:       key.NewBinding(key.WithKeys("r")),
	open:        key.NewBinding(key.WithKeys("o")),
	list:        key.NewBinding(key.WithKeys("L")),
	refresh:     key.NewBinding(key.WithKeys("r")),
	login:       key.NewBinding(key.WithKeys("a")),
	servers:     key.NewBinding(key.WithKeys("s")),
	download:    key.NewBinding(key.WithKeys("g")),
	console:     key.NewBinding(key.WithKeys("c")),
	add:         key.NewBinding(key.WithKeys("a")),
	delete:      key.NewBinding(key.WithKeys("d")),
	interactive: key.NewBinding(key.WithKeys("ctrl+t")),
	clear:       key.NewBinding(key.WithKeys("ctrl+l")),
	buildInfo:   key.NewBinding(key.WithKeys("v")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n")),
}

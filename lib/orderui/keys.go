// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the order dashboard.
type KeyMap struct {
	// Row navigation within the current page.
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// Pagination.
	PagePrevious key.Binding
	PageNext     key.Binding

	// Row actions.
	ActionMenu key.Binding // Open the per-row action menu.
	Remind     key.Binding // Copy a reminder for the selected pending order.
	Complete   key.Binding // Shortcut for the completion dialog.
	ToggleRead key.Binding

	// Dashboard-level actions.
	RecordOrder  key.Binding // Open the new-order entry form.
	MarqueePause key.Binding // Pause the announcement marquee.

	// Filter.
	FilterActivate key.Binding // Enter filter mode.
	FilterClear    key.Binding // Clear filter and exit filter mode.
	StatusCycle    key.Binding // Cycle the status filter.

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	PagePrevious: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	PageNext: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	ActionMenu: key.NewBinding(
		key.WithKeys("enter", "m"),
		key.WithHelp("Enter", "actions"),
	),
	Remind: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "remind"),
	),
	Complete: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "complete"),
	),
	ToggleRead: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "toggle read"),
	),
	RecordOrder: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new order"),
	),
	MarqueePause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause marquee"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	FilterClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "clear filter"),
	),
	StatusCycle: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "status filter"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

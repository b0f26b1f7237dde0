// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/junegunn/fzf/src/util"

	"github.com/fieldops/orderdesk/lib/order"
	"github.com/fieldops/orderdesk/lib/orderindex"
	"github.com/fieldops/orderdesk/lib/tui"
)

// statusCycle is the order the status filter steps through. The empty
// code means "all statuses".
var statusCycle = []order.Code{
	"",
	order.CodePending,
	order.CodeCompleted,
	order.CodeVoid,
	order.CodeReturned,
	order.CodeError,
}

// FilterModel narrows the order list client-side: a fuzzy keyword
// matched against each order's searchable text, composed with an
// optional single-status restriction. Filtering never reorders rows;
// the attention-first sort already fixed their order.
type FilterModel struct {
	// Input is the current keyword query.
	Input string

	// Active is true while the filter input has keyboard focus (the
	// user pressed / to start typing).
	Active bool

	// Status restricts rows to one status code; empty means all.
	Status order.Code

	slab *util.Slab
}

// Matches reports whether the order passes the filter. An empty
// filter matches everything.
func (filter *FilterModel) Matches(o order.Order) bool {
	if filter.Status != "" && o.Status.Code != filter.Status {
		return false
	}
	if filter.Input == "" {
		return true
	}
	if filter.slab == nil {
		filter.slab = tui.MakeSlab()
	}
	result := tui.FuzzyMatch(orderindex.SearchText(o), []rune(filter.Input), filter.slab)
	return result.Score > 0
}

// Apply filters a slice of orders, preserving their order.
func (filter *FilterModel) Apply(orders []order.Order) []order.Order {
	if filter.Input == "" && filter.Status == "" {
		return orders
	}
	var result []order.Order
	for _, o := range orders {
		if filter.Matches(o) {
			result = append(result, o)
		}
	}
	return result
}

// CycleStatus advances the status restriction to the next code in the
// cycle, wrapping back to "all".
func (filter *FilterModel) CycleStatus() {
	for i, code := range statusCycle {
		if code == filter.Status {
			filter.Status = statusCycle[(i+1)%len(statusCycle)]
			return
		}
	}
	filter.Status = ""
}

// HandleRune appends a typed character to the keyword. Returns true
// if the input changed.
func (filter *FilterModel) HandleRune(character rune) bool {
	filter.Input += string(character)
	return true
}

// HandleBackspace removes the last character from the keyword.
// Returns true if the input changed.
func (filter *FilterModel) HandleBackspace() bool {
	if len(filter.Input) == 0 {
		return false
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the keyword and status restriction and deactivates the
// filter.
func (filter *FilterModel) Clear() {
	filter.Input = ""
	filter.Status = ""
	filter.Active = false
}

// Empty reports whether the filter restricts nothing.
func (filter *FilterModel) Empty() bool {
	return filter.Input == "" && filter.Status == "" && !filter.Active
}

// View renders the filter bar. When active, shows the input with a
// cursor. When inactive with restrictions, shows them dimmed. When
// empty, returns the empty string (hidden).
func (filter *FilterModel) View(theme tui.Theme, width int) string {
	if filter.Empty() {
		return ""
	}

	statusLabel := ""
	if filter.Status != "" {
		statusLabel = " [" + string(filter.Status) + "]"
	}

	if filter.Active {
		style := lipgloss.NewStyle().
			Foreground(theme.NormalText).
			Width(width)
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return style.Render(" / " + filter.Input + cursor + statusLabel)
	}

	dimStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width)
	return dimStyle.Render(" filter: " + filter.Input + statusLabel)
}

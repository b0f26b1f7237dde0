// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/fieldops/orderdesk/lib/order"
)

// Theme defines the color palette for the dashboard. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
//
// The fields cover both universal chrome (text, selection, borders)
// and the semantic colors the order table needs: one color per status
// variant, plus accents for workflow flags and mutation highlights.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Status colors.
	StatusPending   lipgloss.Color
	StatusCompleted lipgloss.Color
	StatusVoid      lipgloss.Color
	StatusReturned  lipgloss.Color
	StatusError     lipgloss.Color

	// Workflow flag accents.
	FlagActive   lipgloss.Color // A flag that is set (read, called, coupon).
	FlagReminded lipgloss.Color // Reminder-sent marker on pending rows.

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Animation accents: background tint for recently-mutated rows.
	// HotAccentPut is used for status and flag changes; HotAccentRemove
	// for rows that left the current filter.
	HotAccentPut    lipgloss.Color
	HotAccentRemove lipgloss.Color

	// Filter match highlighting.
	MatchHighlightBackground lipgloss.Color

	// Hover tooltips and floating menus.
	TooltipForeground lipgloss.Color
	TooltipBackground lipgloss.Color

	// Notice line (action results, clipboard confirmations).
	NoticeForeground lipgloss.Color
	ErrorForeground  lipgloss.Color
}

// StatusColor returns the color for a status code. Unknown codes
// return FaintText.
func (theme Theme) StatusColor(code order.Code) lipgloss.Color {
	switch code {
	case order.CodePending:
		return theme.StatusPending
	case order.CodeCompleted:
		return theme.StatusCompleted
	case order.CodeVoid:
		return theme.StatusVoid
	case order.CodeReturned:
		return theme.StatusReturned
	case order.CodeError:
		return theme.StatusError
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed
// for 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StatusPending:   lipgloss.Color("220"), // amber: needs attention
	StatusCompleted: lipgloss.Color("114"), // green
	StatusVoid:      lipgloss.Color("245"), // gray
	StatusReturned:  lipgloss.Color("208"), // orange
	StatusError:     lipgloss.Color("196"), // red

	FlagActive:   lipgloss.Color("75"),  // blue
	FlagReminded: lipgloss.Color("141"), // light purple

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	HotAccentPut:    lipgloss.Color("58"), // dark amber background tint
	HotAccentRemove: lipgloss.Color("52"), // dark red background tint

	MatchHighlightBackground: lipgloss.Color("58"),

	TooltipForeground: lipgloss.Color("252"),
	TooltipBackground: lipgloss.Color("237"),

	NoticeForeground: lipgloss.Color("114"),
	ErrorForeground:  lipgloss.Color("196"),
}

// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DropdownOption is a single item in a floating action menu. Disabled
// options are rendered dimmed and skipped by cursor movement.
type DropdownOption struct {
	Label    string // Display text shown in the menu.
	Value    string // Action identifier reported on selection.
	Disabled bool
}

// DropdownOverlay renders a floating menu anchored at a screen
// position. It captures all keyboard input while open (up/down to
// navigate, enter to select, escape to dismiss). The model owns the
// overlay instance and routes input to it; at most one menu is open
// at a time.
type DropdownOverlay struct {
	Options []DropdownOption
	Cursor  int
	AnchorX int // Screen X coordinate of the menu's top-left corner.
	AnchorY int // Screen Y coordinate of the menu's top-left corner.
	OrderID int // The order the menu acts on.
}

// MoveUp moves the cursor up by one, wrapping to the bottom and
// skipping disabled options.
func (dropdown *DropdownOverlay) MoveUp() {
	for range dropdown.Options {
		dropdown.Cursor--
		if dropdown.Cursor < 0 {
			dropdown.Cursor = len(dropdown.Options) - 1
		}
		if !dropdown.Options[dropdown.Cursor].Disabled {
			return
		}
	}
}

// MoveDown moves the cursor down by one, wrapping to the top and
// skipping disabled options.
func (dropdown *DropdownOverlay) MoveDown() {
	for range dropdown.Options {
		dropdown.Cursor++
		if dropdown.Cursor >= len(dropdown.Options) {
			dropdown.Cursor = 0
		}
		if !dropdown.Options[dropdown.Cursor].Disabled {
			return
		}
	}
}

// Selected returns the currently highlighted option.
func (dropdown *DropdownOverlay) Selected() DropdownOption {
	return dropdown.Options[dropdown.Cursor]
}

// Width returns the total visible width of the rendered menu in
// columns. This matches the width used by Render and is needed for
// mouse hit-testing and anchor placement.
func (dropdown *DropdownOverlay) Width() int {
	maxLabelWidth := 0
	for _, option := range dropdown.Options {
		labelWidth := ansi.StringWidth(option.Label)
		if labelWidth > maxLabelWidth {
			maxLabelWidth = labelWidth
		}
	}
	// Layout: " > LABEL  ": 3 chars prefix (space + marker + space),
	// then label, then 1 char padding on each side.
	return 3 + maxLabelWidth + 2
}

// Height returns the number of rendered menu lines.
func (dropdown *DropdownOverlay) Height() int {
	return len(dropdown.Options)
}

// Contains reports whether the screen coordinate (x, y) falls within
// the menu's bounding rectangle.
func (dropdown *DropdownOverlay) Contains(x, y int) bool {
	if y < dropdown.AnchorY || y >= dropdown.AnchorY+len(dropdown.Options) {
		return false
	}
	width := dropdown.Width()
	return x >= dropdown.AnchorX && x < dropdown.AnchorX+width
}

// OptionAtY returns the option index at the given screen Y coordinate,
// or -1 if the coordinate is outside the menu's vertical range.
func (dropdown *DropdownOverlay) OptionAtY(y int) int {
	index := y - dropdown.AnchorY
	if index < 0 || index >= len(dropdown.Options) {
		return -1
	}
	return index
}

// Render produces the menu lines for overlay splicing. Every line has
// the same visible width and a solid background for separation from
// the underlying table. The highlighted option uses a contrasting
// background; disabled options use the faint foreground.
func (dropdown *DropdownOverlay) Render(theme Theme) []string {
	totalWidth := dropdown.Width()
	innerWidth := totalWidth - 2

	backgroundStyle := lipgloss.NewStyle().
		Background(theme.TooltipBackground)
	disabledStyle := lipgloss.NewStyle().
		Background(theme.TooltipBackground).
		Foreground(theme.FaintText)
	selectedStyle := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	var lines []string
	for index, option := range dropdown.Options {
		marker := " "
		if index == dropdown.Cursor {
			marker = ">"
		}

		content := marker + " " + option.Label
		contentWidth := ansi.StringWidth(content)
		rightPad := innerWidth - contentWidth
		if rightPad < 0 {
			rightPad = 0
		}
		padded := " " + content + strings.Repeat(" ", rightPad) + " "

		style := backgroundStyle
		switch {
		case index == dropdown.Cursor:
			style = selectedStyle
		case option.Disabled:
			style = disabledStyle
		}
		styledLine := style.Render(padded)

		// Keep every line at the same visible width.
		if lineWidth := ansi.StringWidth(styledLine); lineWidth < totalWidth {
			styledLine += style.Render(strings.Repeat(" ", totalWidth-lineWidth))
		}
		lines = append(lines, styledLine)
	}

	return lines
}

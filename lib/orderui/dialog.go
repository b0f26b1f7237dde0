// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/fieldops/orderdesk/lib/tui"
)

// renderDialog draws the shared chrome for the small centered entry
// dialogs: title, body rows, an optional error line, and a key hint
// footer inside a rounded border on the tooltip background. It
// returns the overlay lines and the centered anchor position.
func renderDialog(theme tui.Theme, title string, body []string, errText, footer string, screenWidth, screenHeight int) ([]string, int, int) {
	bgStyle := lipgloss.NewStyle().
		Background(theme.TooltipBackground)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.HeaderForeground).
		Background(theme.TooltipBackground)
	footerStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Background(theme.TooltipBackground)
	errStyle := lipgloss.NewStyle().
		Foreground(theme.ErrorForeground).
		Background(theme.TooltipBackground)

	innerWidth := 40
	if w := ansi.StringWidth(title) + 2; w > innerWidth {
		innerWidth = w
	}

	rows := []string{titleStyle.Render(title), ""}
	rows = append(rows, body...)
	if errText != "" {
		rows = append(rows, errStyle.Render(errText))
	}
	rows = append(rows, "", footerStyle.Render(footer))

	for i, row := range rows {
		if pad := innerWidth - ansi.StringWidth(row); pad > 0 {
			row += bgStyle.Render(strings.Repeat(" ", pad))
		}
		rows[i] = row
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Background(theme.TooltipBackground)

	rendered := borderStyle.Render(strings.Join(rows, "\n"))
	lines := strings.Split(rendered, "\n")

	renderedWidth := 0
	if len(lines) > 0 {
		renderedWidth = ansi.StringWidth(lines[0])
	}
	anchorX := (screenWidth - renderedWidth) / 2
	anchorY := (screenHeight - len(lines)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}
	return lines, anchorX, anchorY
}

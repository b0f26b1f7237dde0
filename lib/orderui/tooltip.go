// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/fieldops/orderdesk/lib/order"
	"github.com/fieldops/orderdesk/lib/tui"
)

// tooltipMaxWidth is the maximum width of the tooltip box in visible
// characters, including 1 character of padding on each side.
const tooltipMaxWidth = 50

// tooltipState identifies the single cell a tooltip is shown for.
// At most one tooltip is visible at a time.
type tooltipState struct {
	orderID int
	column  ColumnKey

	// Screen coordinates of the tooltip's top-left corner.
	anchorX int
	anchorY int
}

// tooltipBody returns the full text a hover tooltip shows for one
// cell: the untruncated content, plus companion text where the cell
// only hints at it.
func tooltipBody(key ColumnKey, o order.Order) string {
	switch key {
	case ColumnStatus:
		switch {
		case o.Status.Reason != "":
			return o.Status.Reason
		case o.Status.Detail != "":
			return o.Status.Detail
		default:
			return o.Status.Label()
		}
	case ColumnService:
		if o.Details != "" {
			return o.ServiceItem + "\n" + o.Details
		}
		return o.ServiceItem
	case ColumnAddress:
		return o.Address
	case ColumnOrderNo:
		return o.OrderNo + " / " + o.WorkOrderNo
	default:
		return cellText(key, o)
	}
}

// renderTooltip produces a styled tooltip box for one cell. Returns a
// slice of lines of identical visible width with the theme's tooltip
// background applied; the solid background separates the box from the
// table without border characters.
//
// Layout:
//
//	STATUS  order-no
//	body line 1
//	body line 2...
func renderTooltip(o order.Order, key ColumnKey, theme tui.Theme, maxWidth int) []string {
	if maxWidth < 10 {
		maxWidth = 10
	}
	innerWidth := maxWidth - 2

	backgroundStyle := lipgloss.NewStyle().
		Background(theme.TooltipBackground)
	textStyle := lipgloss.NewStyle().
		Foreground(theme.TooltipForeground).
		Background(theme.TooltipBackground)
	statusStyle := lipgloss.NewStyle().
		Foreground(theme.StatusColor(o.Status.Code)).
		Background(theme.TooltipBackground).
		Bold(true)

	// Line 1: status + order number.
	meta := statusStyle.Render(strings.ToUpper(o.Status.Label())) +
		backgroundStyle.Render("  ") +
		textStyle.Render(o.OrderNo)
	lines := []string{tui.PadOverlayLine(meta, innerWidth, backgroundStyle)}

	// Body: the cell's full content, wrapped.
	for _, bodyLine := range tui.WrapText(tooltipBody(key, o), innerWidth) {
		if ansi.StringWidth(bodyLine) > innerWidth {
			bodyLine = ansi.Truncate(bodyLine, innerWidth-1, "…")
		}
		lines = append(lines, tui.PadOverlayLine(textStyle.Render(bodyLine), innerWidth, backgroundStyle))
	}
	return lines
}

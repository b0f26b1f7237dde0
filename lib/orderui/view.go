// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/fieldops/orderdesk/lib/order"
	"github.com/fieldops/orderdesk/lib/orderindex"
	"github.com/fieldops/orderdesk/lib/tui"
)

// View implements tea.Model. Layout, top to bottom: stats line,
// announcement marquee (replaced by the filter bar when a filter is
// set), column header, table rows with a scrollbar column, notice
// line, and a footer with the page indicator and key help. Overlays
// (menu, tooltip, dialogs) are spliced over the base view last.
func (model Model) View() string {
	if !model.ready {
		return "Loading order dashboard..."
	}

	var builder strings.Builder
	builder.WriteString(model.renderStatsLine())
	builder.WriteByte('\n')
	builder.WriteString(model.renderSecondLine())
	builder.WriteByte('\n')

	renderer := NewListRenderer(model.theme, model.listWidth())
	builder.WriteString(renderer.RenderHeader())
	builder.WriteByte('\n')

	builder.WriteString(model.renderRows(renderer))
	builder.WriteByte('\n')

	builder.WriteString(model.renderNoticeLine())
	builder.WriteByte('\n')
	builder.WriteString(model.renderFooter())

	view := builder.String()

	if model.actionMenu != nil {
		view = tui.SpliceOverlay(view, model.actionMenu.Render(model.theme),
			model.actionMenu.AnchorX, model.actionMenu.AnchorY)
	}
	if model.tooltip != nil {
		if o, ok := model.source.Get(model.tooltip.orderID); ok {
			lines := renderTooltip(o, model.tooltip.column, model.theme, model.tooltipWidth())
			view = tui.SpliceOverlay(view, lines, model.tooltip.anchorX, model.tooltip.anchorY)
		}
	}
	if model.amountModal != nil {
		lines, anchorX, anchorY := model.amountModal.Render(model.width, model.height)
		view = tui.SpliceOverlay(view, lines, anchorX, anchorY)
	}
	if model.reasonModal != nil {
		lines, anchorX, anchorY := model.reasonModal.Render(model.width, model.height)
		view = tui.SpliceOverlay(view, lines, anchorX, anchorY)
	}
	return view
}

// renderStatsLine summarizes the store: total orders, pending count
// with the unreminded breakdown, and the filtered count when a filter
// is narrowing the table.
func (model Model) renderStatsLine() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground)
	faintStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	pendingStyle := lipgloss.NewStyle().Foreground(model.theme.StatusPending)

	pending := model.stats.ByStatus[order.CodePending]
	parts := []string{
		titleStyle.Render(" Orderdesk"),
		faintStyle.Render(fmt.Sprintf("%d orders", model.stats.Total)),
		pendingStyle.Render(fmt.Sprintf("%d pending (%d unreminded)",
			pending, model.stats.PendingUnreminded)),
	}
	if !model.filter.Empty() {
		parts = append(parts, faintStyle.Render(
			fmt.Sprintf("%d matching", len(model.orders))))
	}

	line := strings.Join(parts, faintStyle.Render(" · "))
	return padLine(line, model.width)
}

// renderSecondLine shows the filter bar when a filter is set or being
// edited, otherwise the announcement marquee.
func (model Model) renderSecondLine() string {
	if !model.filter.Empty() {
		return padLine(model.filter.View(model.theme, model.width), model.width)
	}
	return padLine(model.marquee.View(model.theme, model.width), model.width)
}

// renderRows renders the visible band of the current page next to the
// scrollbar column.
func (model Model) renderRows(renderer ListRenderer) string {
	page := model.pageOrders()
	rowCount := model.visibleRows()
	now := time.Now()

	lines := make([]string, rowCount)
	for band := 0; band < rowCount; band++ {
		rowIndex := band + model.scrollOffset
		if rowIndex >= len(page) {
			lines[band] = strings.Repeat(" ", model.listWidth())
			continue
		}
		o := page[rowIndex]
		lines[band] = renderer.RenderRow(o,
			rowIndex == model.cursor,
			model.heatTracker.Heat(o.ID, now),
			model.heatTracker.Kind(o.ID))
	}

	scrollbar := strings.Split(tui.RenderScrollbar(model.theme, rowCount,
		len(page), rowCount, model.scrollOffset, model.focusRegion == FocusList), "\n")
	for band := range lines {
		if band < len(scrollbar) {
			lines[band] += scrollbar[band]
		}
	}
	return strings.Join(lines, "\n")
}

// renderNoticeLine shows the transient action result notice.
func (model Model) renderNoticeLine() string {
	if model.notice == "" {
		return strings.Repeat(" ", model.width)
	}
	color := model.theme.NoticeForeground
	if model.noticeIsError {
		color = model.theme.ErrorForeground
	}
	style := lipgloss.NewStyle().Foreground(color)
	return padLine(style.Render(" "+model.notice), model.width)
}

// renderFooter shows the page indicator and key help.
func (model Model) renderFooter() string {
	faintStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	first, last := model.pager.Bounds(len(model.orders))
	position := fmt.Sprintf(" Showing %d to %d of %d orders · page %d/%d",
		first, last, len(model.orders),
		model.pager.Page, orderindex.TotalPages(len(model.orders), model.pager.PageSize))

	help := "j/k move  h/l page  / filter  s status  enter actions  r remind  q quit "

	line := faintStyle.Render(position)
	gap := model.width - ansi.StringWidth(position) - ansi.StringWidth(help)
	if gap > 0 {
		line += strings.Repeat(" ", gap) + helpStyle.Render(help)
	}
	return padLine(line, model.width)
}

// padLine pads a styled line with spaces to the given visible width.
func padLine(line string, width int) string {
	lineWidth := ansi.StringWidth(line)
	if lineWidth >= width {
		return line
	}
	return line + strings.Repeat(" ", width-lineWidth)
}

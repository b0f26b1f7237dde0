// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/fieldops/orderdesk/lib/order"
	"github.com/fieldops/orderdesk/lib/tui"
)

// ColumnKey identifies a table column for hit-testing and tooltips.
type ColumnKey string

const (
	ColumnStatus  ColumnKey = "status"
	ColumnOrderNo ColumnKey = "order_no"
	ColumnMobile  ColumnKey = "mobile"
	ColumnService ColumnKey = "service"
	ColumnRegion  ColumnKey = "region"
	ColumnAmount  ColumnKey = "amount"
	ColumnFlags   ColumnKey = "flags"
	ColumnAddress ColumnKey = "address"
)

// column describes one table column. A zero Width means the column
// absorbs the remaining row width.
type column struct {
	key   ColumnKey
	title string
	width int
}

// columns is the fixed table layout, left to right. Address comes
// last and flexes; everything before it is sized for its widest
// regular content.
var columns = []column{
	{ColumnStatus, "Status", 17},
	{ColumnOrderNo, "Order no", 19},
	{ColumnMobile, "Mobile", 13},
	{ColumnService, "Service", 22},
	{ColumnRegion, "Region", 12},
	{ColumnAmount, "Amount", 9},
	{ColumnFlags, "Flags", 8},
	{ColumnAddress, "Address", 0},
}

// columnSpan is a column's resolved horizontal extent in screen
// columns for one render width.
type columnSpan struct {
	key    ColumnKey
	startX int // Inclusive.
	endX   int // Exclusive.
	width  int
}

// layoutColumns resolves the column spans for a row width. The
// leading space of every row is part of the first span.
func layoutColumns(width int) []columnSpan {
	fixed := 1 // Leading space.
	for _, col := range columns {
		fixed += col.width
	}
	spans := make([]columnSpan, 0, len(columns))
	x := 1
	for _, col := range columns {
		w := col.width
		if w == 0 {
			w = width - fixed
			if w < 10 {
				w = 10
			}
		}
		spans = append(spans, columnSpan{key: col.key, startX: x, endX: x + w, width: w})
		x += w
	}
	return spans
}

// ColumnAt returns the column containing screen column x, or "" when
// x is outside the table.
func ColumnAt(x, width int) ColumnKey {
	for _, span := range layoutColumns(width) {
		if x >= span.startX && x < span.endX {
			return span.key
		}
	}
	return ""
}

// ListRenderer renders order rows as fixed-width table lines.
type ListRenderer struct {
	theme tui.Theme
	width int
	spans []columnSpan
}

// NewListRenderer creates a ListRenderer for the given row width.
func NewListRenderer(theme tui.Theme, width int) ListRenderer {
	return ListRenderer{theme: theme, width: width, spans: layoutColumns(width)}
}

// RenderHeader renders the column title row.
func (renderer ListRenderer) RenderHeader() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(renderer.theme.HeaderForeground).
		Bold(true)
	var b strings.Builder
	b.WriteString(" ")
	for i, span := range renderer.spans {
		b.WriteString(headerStyle.Render(padCell(columns[i].title, span.width)))
	}
	return lipgloss.NewStyle().
		Width(renderer.width).
		MaxWidth(renderer.width).
		Render(b.String())
}

// cellText returns the plain text for one cell of an order.
func cellText(key ColumnKey, o order.Order) string {
	switch key {
	case ColumnStatus:
		return o.Status.Label()
	case ColumnOrderNo:
		return o.OrderNo
	case ColumnMobile:
		return o.Mobile
	case ColumnService:
		return o.ServiceItem
	case ColumnRegion:
		return o.Region
	case ColumnAmount:
		return fmt.Sprintf("%8.2f", o.TotalAmount)
	case ColumnFlags:
		return flagMarkers(o)
	case ColumnAddress:
		return o.Address
	default:
		return ""
	}
}

// flagMarkers renders the compact workflow flag cell: one marker per
// set flag, a dot for each unset one, in a fixed order (read, called,
// coupon, reminded).
func flagMarkers(o order.Order) string {
	markers := []struct {
		set    bool
		marker string
	}{
		{o.IsRead, "R"},
		{o.IsCalled, "C"},
		{o.HasCoupon || o.IsCouponVerified, couponMarker(o)},
		{o.IsReminded, "!"},
	}
	parts := make([]string, 0, len(markers))
	for _, m := range markers {
		if m.set {
			parts = append(parts, m.marker)
		} else {
			parts = append(parts, "·")
		}
	}
	return strings.Join(parts, " ")
}

func couponMarker(o order.Order) string {
	if o.IsCouponVerified {
		return "✓"
	}
	return "$"
}

// CellTruncated reports whether a cell's content does not fit its
// column, meaning a hover tooltip has something more to show. The
// status column also counts as truncated when it carries companion
// text, which never fits the cell.
func (renderer ListRenderer) CellTruncated(key ColumnKey, o order.Order) bool {
	if key == ColumnStatus {
		return o.Status.Reason != "" || o.Status.Detail != ""
	}
	for i, span := range renderer.spans {
		if columns[i].key != key {
			continue
		}
		// One trailing space separates adjacent cells.
		return ansi.StringWidth(cellText(key, o)) > span.width-1
	}
	return false
}

// RenderRow renders one order as a table row. Selected rows get the
// highlight background; hot rows (recently mutated) get the heat
// accent tint.
func (renderer ListRenderer) RenderRow(o order.Order, selected bool, heat float64, heatKind tui.HeatKind) string {
	base := lipgloss.NewStyle().Foreground(renderer.theme.NormalText)
	switch {
	case selected:
		base = lipgloss.NewStyle().
			Background(renderer.theme.SelectedBackground).
			Foreground(renderer.theme.SelectedForeground)
	case heat > 0:
		accent := renderer.theme.HotAccentPut
		if heatKind == tui.HeatRemove {
			accent = renderer.theme.HotAccentRemove
		}
		base = base.Background(accent)
	}

	var b strings.Builder
	b.WriteString(base.Render(" "))
	for _, span := range renderer.spans {
		text := padCell(cellText(span.key, o), span.width)
		style := base
		if !selected {
			switch span.key {
			case ColumnStatus:
				style = style.Foreground(renderer.theme.StatusColor(o.Status.Code)).
					Bold(o.Status.Code == order.CodePending)
			case ColumnFlags:
				style = style.Foreground(flagColor(renderer.theme, o))
			case ColumnMobile, ColumnRegion:
				style = style.Foreground(renderer.theme.FaintText)
			}
		}
		b.WriteString(style.Render(text))
	}

	row := b.String()
	return base.Width(renderer.width).MaxWidth(renderer.width).Render(row)
}

// flagColor picks the flags cell color: the reminded accent when a
// reminder went out, the active accent when any flag is set, faint
// otherwise.
func flagColor(theme tui.Theme, o order.Order) lipgloss.Color {
	if o.IsReminded {
		return theme.FlagReminded
	}
	if o.IsRead || o.IsCalled || o.HasCoupon || o.IsCouponVerified {
		return theme.FlagActive
	}
	return theme.FaintText
}

// padCell truncates or pads text to exactly width columns, keeping
// one trailing space as the cell separator.
func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(text) > width-1 {
		text = ansi.Truncate(text, width-2, "…")
	}
	if pad := width - ansi.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}

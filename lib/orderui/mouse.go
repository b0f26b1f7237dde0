// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/fieldops/orderdesk/lib/tui"
)

// handleMouse processes mouse events: hover tooltips over truncated
// cells, row selection and menu opening on click, and wheel
// navigation. Modal dialogs ignore the mouse entirely; they are
// keyboard-driven.
func (model *Model) handleMouse(message tea.MouseMsg) tea.Cmd {
	if model.focusRegion == FocusAmountModal || model.focusRegion == FocusReasonModal {
		return nil
	}

	if model.actionMenu != nil {
		return model.handleMenuMouse(message)
	}

	switch {
	case message.Action == tea.MouseActionMotion && message.Button == tea.MouseButtonNone:
		model.updateTooltip(message.X, message.Y)

	case message.Button == tea.MouseButtonWheelUp:
		model.tooltip = nil
		model.moveCursor(-1)

	case message.Button == tea.MouseButtonWheelDown:
		model.tooltip = nil
		model.moveCursor(1)

	case message.Action == tea.MouseActionPress && message.Button == tea.MouseButtonLeft:
		model.tooltip = nil
		model.handleRowClick(message.X, message.Y, false)

	case message.Action == tea.MouseActionPress && message.Button == tea.MouseButtonRight:
		model.tooltip = nil
		model.handleRowClick(message.X, message.Y, true)
	}
	return nil
}

// handleMenuMouse routes mouse events while an action menu is open.
// Clicking an enabled option dispatches it; clicking outside
// dismisses the menu.
func (model *Model) handleMenuMouse(message tea.MouseMsg) tea.Cmd {
	menu := model.actionMenu

	switch {
	case message.Action == tea.MouseActionMotion:
		if index := menu.OptionAtY(message.Y); index >= 0 &&
			menu.Contains(message.X, message.Y) &&
			!menu.Options[index].Disabled {
			menu.Cursor = index
		}

	case message.Button == tea.MouseButtonWheelUp:
		menu.MoveUp()

	case message.Button == tea.MouseButtonWheelDown:
		menu.MoveDown()

	case message.Action == tea.MouseActionPress && message.Button == tea.MouseButtonLeft:
		if !menu.Contains(message.X, message.Y) {
			model.dismissMenu()
			return nil
		}
		index := menu.OptionAtY(message.Y)
		if index < 0 || menu.Options[index].Disabled {
			return nil
		}
		option := menu.Options[index]
		orderID := menu.OrderID
		model.dismissMenu()
		return model.dispatchAction(Action(option.Value), orderID)

	case message.Action == tea.MouseActionPress:
		model.dismissMenu()
	}
	return nil
}

// handleRowClick selects the clicked row. A left click on the already
// selected row, or any right click on a row, opens the action menu at
// the mouse position.
func (model *Model) handleRowClick(x, y int, rightButton bool) {
	rowIndex, ok := model.rowIndexAt(y)
	if !ok {
		return
	}
	page := model.pageOrders()
	o := page[rowIndex]

	alreadySelected := rowIndex == model.cursor
	model.cursor = rowIndex
	model.rememberSelection()

	if rightButton || alreadySelected {
		model.openMenuAt(o, tui.Rect{X: x, Y: y, Width: 1, Height: 1})
	}
}

// rowIndexAt maps a screen Y coordinate to an index into the current
// page, accounting for the scroll offset.
func (model *Model) rowIndexAt(y int) (int, bool) {
	if y < model.contentStartY() {
		return 0, false
	}
	band := y - model.contentStartY()
	if band >= model.visibleRows() {
		return 0, false
	}
	rowIndex := band + model.scrollOffset
	if rowIndex >= len(model.pageOrders()) {
		return 0, false
	}
	return rowIndex, true
}

// updateTooltip shows a tooltip for the cell under the mouse when the
// cell's content is truncated or carries companion text. Moving off
// such a cell hides it.
func (model *Model) updateTooltip(x, y int) {
	rowIndex, ok := model.rowIndexAt(y)
	if !ok || x >= model.listWidth() {
		model.tooltip = nil
		return
	}
	o := model.pageOrders()[rowIndex]

	key := ColumnAt(x, model.listWidth())
	if key == "" {
		model.tooltip = nil
		return
	}

	renderer := NewListRenderer(model.theme, model.listWidth())
	if !renderer.CellTruncated(key, o) {
		model.tooltip = nil
		return
	}

	// Same cell as before: keep the existing tooltip in place.
	if model.tooltip != nil && model.tooltip.orderID == o.ID && model.tooltip.column == key {
		return
	}

	lines := renderTooltip(o, key, model.theme, model.tooltipWidth())
	lineWidth := 0
	if len(lines) > 0 {
		lineWidth = ansi.StringWidth(lines[0])
	}
	anchorX, anchorY := tui.MenuPosition(
		tui.Rect{X: x, Y: y, Width: 1, Height: 1},
		lineWidth, len(lines), model.width, model.height)
	model.tooltip = &tooltipState{
		orderID: o.ID,
		column:  key,
		anchorX: anchorX,
		anchorY: anchorY,
	}
}

// tooltipWidth caps the tooltip box at the terminal width.
func (model *Model) tooltipWidth() int {
	width := tooltipMaxWidth
	if model.width < width {
		width = model.width
	}
	return width
}

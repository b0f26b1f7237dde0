// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fieldops/orderdesk/lib/order"
	"github.com/fieldops/orderdesk/lib/orderindex"
	"github.com/fieldops/orderdesk/lib/tui"
)

// FocusRegion identifies where keyboard input is routed.
type FocusRegion int

const (
	// FocusList means navigation keys move the table cursor.
	FocusList FocusRegion = iota
	// FocusFilter means keystrokes go to the filter input.
	FocusFilter
	// FocusMenu means a row action menu is open and captures all
	// keyboard input until selection or dismissal.
	FocusMenu
	// FocusAmountModal means the completion dialog is open.
	FocusAmountModal
	// FocusReasonModal means the void/error reason editor is open.
	FocusReasonModal
)

// reasonPurpose says what the open reason modal will do on submit.
type reasonPurpose int

const (
	reasonVoid reasonPurpose = iota
	reasonError
)

// clipboardPurpose distinguishes why a clipboard write was issued, so
// the result handler knows whether a reminder commit should follow.
type clipboardPurpose int

const (
	clipboardCopyOrder clipboardPurpose = iota
	clipboardReminder
)

// sourceEventMsg wraps a Source Event for delivery through the
// bubbletea message loop.
type sourceEventMsg struct {
	event Event
}

// heatTickMsg drives the row glow decay animation. While any rows are
// hot, a new tick is scheduled after each one.
type heatTickMsg struct{}

// noticeFadeMsg clears the status bar notice after a short delay.
type noticeFadeMsg struct{}

// marqueeTickMsg advances the announcement marquee.
type marqueeTickMsg struct{}

// clipboardResultMsg reports the outcome of an asynchronous clipboard
// write. For reminder writes, the handler commits the reminded flag
// only when err is nil.
type clipboardResultMsg struct {
	orderID int
	purpose clipboardPurpose
	err     error
}

// noticeFadeDelay is how long status notices stay visible.
const noticeFadeDelay = 2 * time.Second

// Model is the top-level bubbletea model for the order dashboard.
type Model struct {
	source    Source
	mutator   Mutator // Non-nil when the source supports mutations.
	clipboard Clipboard
	theme     tui.Theme
	keys      KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// View pipeline state: orders is the sorted, filtered list the
	// pager slices pages from. stats covers the whole store.
	orders []order.Order
	stats  orderindex.Stats
	filter FilterModel
	pager  orderindex.Pager

	// Cursor within the current page, and the scroll offset applied
	// when the page has more rows than the terminal shows.
	cursor       int
	scrollOffset int
	selectedID   int // Stable focus: track selection by order ID.

	focusRegion FocusRegion

	// Overlays. At most one action menu is open at a time; opening a
	// menu for another row replaces it.
	actionMenu    *tui.DropdownOverlay
	amountModal   *amountModal
	reasonModal *reasonModal

	// Hover tooltip for the single cell under the mouse. Nil when no
	// tooltip is visible.
	tooltip *tooltipState

	// Status bar notice and announcement marquee.
	notice        string
	noticeIsError bool
	marquee       Marquee

	// Live update animation.
	heatTracker  *tui.HeatTracker
	eventChannel <-chan Event
	tickRunning  bool
}

// NewModel creates a Model over the given order source. Mutations are
// enabled when the source also implements [Mutator]. The clipboard
// defaults to OSC 52; tests swap it via [Model.SetClipboard].
func NewModel(source Source, pageSize int) Model {
	model := Model{
		source:      source,
		clipboard:   OSC52Clipboard{},
		theme:       tui.DefaultTheme,
		keys:        DefaultKeyMap,
		pager:       orderindex.NewPager(pageSize),
		heatTracker: tui.NewHeatTracker(),
	}
	if mutator, ok := source.(Mutator); ok {
		model.mutator = mutator
	}
	model.eventChannel = source.Subscribe()
	model.refreshFromSource()
	if page := model.pageOrders(); len(page) > 0 {
		model.selectedID = page[0].ID
	}
	return model
}

// SetClipboard replaces the clipboard implementation. Call before
// running the program.
func (model *Model) SetClipboard(clipboard Clipboard) {
	model.clipboard = clipboard
}

// SetAnnouncements installs the marquee messages shown above the
// table.
func (model *Model) SetAnnouncements(messages []string) {
	model.marquee = Marquee{Messages: messages}
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if model.eventChannel != nil {
		cmds = append(cmds, listenForSourceEvent(model.eventChannel))
	}
	if len(model.marquee.Messages) > 1 {
		cmds = append(cmds, marqueeTick())
	}
	return tea.Batch(cmds...)
}

// listenForSourceEvent returns a tea.Cmd that blocks until an event
// arrives on the source channel, then delivers it as a sourceEventMsg.
func listenForSourceEvent(channel <-chan Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-channel
		if !ok {
			return nil
		}
		return sourceEventMsg{event: event}
	}
}

func marqueeTick() tea.Cmd {
	return tea.Tick(marqueeRotateInterval, func(time.Time) tea.Msg {
		return marqueeTickMsg{}
	})
}

func noticeFade() tea.Cmd {
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{}
	})
}

// writeClipboard issues an asynchronous clipboard write and reports
// the outcome as a clipboardResultMsg.
func writeClipboard(clipboard Clipboard, text string, orderID int, purpose clipboardPurpose) tea.Cmd {
	return func() tea.Msg {
		return clipboardResultMsg{
			orderID: orderID,
			purpose: purpose,
			err:     clipboard.Write(text),
		}
	}
}

// Update implements tea.Model. Routes keyboard events based on the
// current focus region and handles layout and data change messages.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		// Any keyboard input dismisses the hover tooltip.
		model.tooltip = nil

		switch model.focusRegion {
		case FocusFilter:
			return model.handleFilterKeys(message)
		case FocusMenu:
			return model.handleMenuKeys(message)
		case FocusAmountModal:
			return model.handleAmountModalKeys(message)
		case FocusReasonModal:
			return model.handleReasonModalKeys(message)
		}
		return model.handleListKeys(message)

	case tea.MouseMsg:
		if cmd := model.handleMouse(message); cmd != nil {
			return model, cmd
		}

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.clampCursor()

	case sourceEventMsg:
		return model.handleSourceEvent(message)

	case heatTickMsg:
		if model.heatTracker.HasHot(time.Now()) {
			return model, tea.Tick(tui.HeatTickInterval, func(time.Time) tea.Msg {
				return heatTickMsg{}
			})
		}
		model.tickRunning = false

	case marqueeTickMsg:
		model.marquee.Advance()
		return model, marqueeTick()

	case noticeFadeMsg:
		model.notice = ""
		model.noticeIsError = false

	case clipboardResultMsg:
		return model.handleClipboardResult(message)
	}
	return model, nil
}

// handleSourceEvent ignites the heat animation for the changed row
// and rebuilds the view from the source. The subscribe stream is the
// single source of truth: mutations never patch local rows directly.
func (model Model) handleSourceEvent(message sourceEventMsg) (tea.Model, tea.Cmd) {
	kind := tui.HeatPut
	if message.event.Kind == "remove" {
		kind = tui.HeatRemove
	}
	model.heatTracker.Ignite(message.event.OrderID, kind, time.Now())
	model.refreshFromSource()

	cmds := []tea.Cmd{listenForSourceEvent(model.eventChannel)}
	if !model.tickRunning {
		model.tickRunning = true
		cmds = append(cmds, tea.Tick(tui.HeatTickInterval, func(time.Time) tea.Msg {
			return heatTickMsg{}
		}))
	}
	return model, tea.Batch(cmds...)
}

// handleClipboardResult finishes a copy or reminder flow. A reminder
// commits the reminded flag only on clipboard success; on failure the
// order is left untouched so the flow can be retried.
func (model Model) handleClipboardResult(message clipboardResultMsg) (tea.Model, tea.Cmd) {
	o, ok := model.source.Get(message.orderID)
	label := fmt.Sprintf("order %d", message.orderID)
	if ok {
		label = o.OrderNo
	}

	if message.err != nil {
		model.setNotice(fmt.Sprintf("clipboard write failed: %v", message.err), true)
		return model, noticeFade()
	}

	switch message.purpose {
	case clipboardCopyOrder:
		model.setNotice("Copied "+label, false)

	case clipboardReminder:
		if model.mutator == nil {
			model.setNotice("Reminder copied for "+label, false)
			break
		}
		already, err := model.mutator.MarkReminded(message.orderID)
		switch {
		case err != nil:
			model.setNotice(fmt.Sprintf("marking reminded: %v", err), true)
		case already:
			model.setNotice("Reminder already sent for "+label, false)
		default:
			model.setNotice("Reminder copied for "+label, false)
		}
	}
	return model, noticeFade()
}

// handleListKeys processes keys while the table has focus.
func (model Model) handleListKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Up):
		model.moveCursor(-1)

	case key.Matches(message, model.keys.Down):
		model.moveCursor(1)

	case key.Matches(message, model.keys.Home):
		model.cursor = 0
		model.scrollOffset = 0
		model.rememberSelection()

	case key.Matches(message, model.keys.End):
		model.cursor = len(model.pageOrders()) - 1
		if model.cursor < 0 {
			model.cursor = 0
		}
		model.ensureCursorVisible()
		model.rememberSelection()

	case key.Matches(message, model.keys.PagePrevious):
		if model.pager.Previous() {
			model.resetPagePosition()
		}

	case key.Matches(message, model.keys.PageNext):
		if model.pager.Next(len(model.orders)) {
			model.resetPagePosition()
		}

	case key.Matches(message, model.keys.ActionMenu):
		model.openActionMenu()

	case key.Matches(message, model.keys.Remind):
		return model, model.remindSelected()

	case key.Matches(message, model.keys.Complete):
		return model, model.openCompleteDialog()

	case key.Matches(message, model.keys.ToggleRead):
		return model, model.toggleReadSelected()

	case key.Matches(message, model.keys.RecordOrder):
		model.setNotice("Order entry form opened", false)
		return model, noticeFade()

	case key.Matches(message, model.keys.MarqueePause):
		model.marquee.Paused = !model.marquee.Paused

	case key.Matches(message, model.keys.FilterActivate):
		model.filter.Active = true
		model.focusRegion = FocusFilter
		model.pager.Page = 1
		model.resetPagePosition()

	case key.Matches(message, model.keys.StatusCycle):
		model.filter.CycleStatus()
		model.refreshFromSource()
		model.pager.Page = 1
		model.resetPagePosition()

	case key.Matches(message, model.keys.FilterClear):
		if !model.filter.Empty() {
			model.filter.Clear()
			model.refreshFromSource()
			model.resetPagePosition()
		}
	}
	return model, nil
}

// handleFilterKeys processes keys while the filter input has focus.
// Esc clears and leaves filter mode; Enter confirms and returns focus
// to the list with the filter still applied.
func (model Model) handleFilterKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEscape:
		model.filter.Clear()
		model.focusRegion = FocusList
		model.refreshFromSource()
		model.resetPagePosition()

	case tea.KeyEnter:
		model.filter.Active = false
		model.focusRegion = FocusList

	case tea.KeyBackspace:
		if model.filter.HandleBackspace() {
			model.refreshFromSource()
			model.pager.Page = 1
			model.resetPagePosition()
		}

	case tea.KeyCtrlC:
		return model, tea.Quit

	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			model.filter.HandleRune(character)
		}
		model.refreshFromSource()
		model.pager.Page = 1
		model.resetPagePosition()
	}
	return model, nil
}

// handleMenuKeys processes keys while a row action menu is open.
func (model Model) handleMenuKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEscape:
		model.dismissMenu()
		return model, nil

	case tea.KeyUp:
		model.actionMenu.MoveUp()
		return model, nil

	case tea.KeyDown:
		model.actionMenu.MoveDown()
		return model, nil

	case tea.KeyEnter:
		selected := model.actionMenu.Selected()
		orderID := model.actionMenu.OrderID
		model.dismissMenu()
		if selected.Disabled {
			return model, nil
		}
		return model, model.dispatchAction(Action(selected.Value), orderID)

	case tea.KeyCtrlC:
		return model, tea.Quit
	}

	switch message.String() {
	case "k":
		model.actionMenu.MoveUp()
	case "j":
		model.actionMenu.MoveDown()
	case "q":
		model.dismissMenu()
	}
	return model, nil
}

// handleAmountModalKeys processes keys while the completion dialog is
// open.
func (model Model) handleAmountModalKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEscape:
		model.amountModal = nil
		model.focusRegion = FocusList
		return model, nil

	case tea.KeyCtrlC:
		return model, tea.Quit

	case tea.KeyEnter:
		amount, err := model.amountModal.Amount()
		if err != nil {
			model.amountModal.errText = err.Error()
			return model, nil
		}
		orderID := model.amountModal.orderID
		orderNo := model.amountModal.orderNo
		model.amountModal = nil
		model.focusRegion = FocusList
		if err := model.mutator.Complete(orderID, amount); err != nil {
			model.setNotice(fmt.Sprintf("completing %s: %v", orderNo, err), true)
		} else {
			model.setNotice(fmt.Sprintf("Completed %s at %.2f", orderNo, amount), false)
		}
		return model, noticeFade()
	}

	return model, model.amountModal.Update(message)
}

// handleReasonModalKeys processes keys while the void/error reason
// dialog is open. Enter submits; an empty reason keeps the dialog
// open because both flows require explanatory text.
func (model Model) handleReasonModalKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEscape:
		model.reasonModal = nil
		model.focusRegion = FocusList
		return model, nil

	case tea.KeyCtrlC:
		return model, tea.Quit

	case tea.KeyEnter:
		reason, reasonErr := model.reasonModal.Reason()
		if reasonErr != nil {
			model.reasonModal.errText = reasonErr.Error()
			return model, nil
		}
		orderID := model.reasonModal.orderID
		purpose := model.reasonModal.purpose
		model.reasonModal = nil
		model.focusRegion = FocusList

		var err error
		var done string
		switch purpose {
		case reasonVoid:
			err = model.mutator.Void(orderID, reason)
			done = "Voided"
		case reasonError:
			err = model.mutator.MarkError(orderID, reason)
			done = "Marked error on"
		}
		label := model.orderLabel(orderID)
		if err != nil {
			model.setNotice(fmt.Sprintf("%s %s: %v", strings.ToLower(done), label, err), true)
		} else {
			model.setNotice(fmt.Sprintf("%s %s", done, label), false)
		}
		return model, noticeFade()
	}

	return model, model.reasonModal.Update(message)
}

// dispatchAction runs one action menu entry for an order.
func (model *Model) dispatchAction(action Action, orderID int) tea.Cmd {
	o, ok := model.source.Get(orderID)
	if !ok {
		model.setNotice(fmt.Sprintf("order %d no longer exists", orderID), true)
		return noticeFade()
	}

	switch action {
	case ActionCopyOrder:
		return writeClipboard(model.clipboard, OrderSummaryText(o), o.ID, clipboardCopyOrder)

	case ActionComplete:
		model.amountModal = newAmountModal(o, model.theme)
		model.focusRegion = FocusAmountModal
		return nil

	case ActionVoid:
		model.reasonModal = newReasonModal(o, reasonVoid, model.theme)
		model.focusRegion = FocusReasonModal
		return nil

	case ActionAddError:
		model.reasonModal = newReasonModal(o, reasonError, model.theme)
		model.focusRegion = FocusReasonModal
		return nil

	case ActionInvoice:
		model.setNotice("Invoice view opened for "+o.OrderNo, false)
	case ActionDetail:
		model.setNotice("Detail view opened for "+o.OrderNo, false)
	case ActionFindResource:
		model.setNotice("Resource search opened for "+o.OrderNo, false)
	case ActionOtherReceipt:
		model.setNotice("Receipt entry opened for "+o.OrderNo, false)
	case ActionContactDispatcher:
		model.setNotice("Dispatcher chat opened for "+o.OrderNo, false)
	case ActionContactOps:
		model.setNotice("Ops chat opened for "+o.OrderNo, false)
	case ActionContactAftersale:
		model.setNotice("Aftersale chat opened for "+o.OrderNo, false)
	case ActionGroupChat:
		model.setNotice("Group chat opened for "+o.OrderNo, false)
	}
	return noticeFade()
}

// remindSelected starts the reminder flow for the selected row: the
// reminder text goes to the clipboard, and the reminded flag commits
// only after the write succeeds. Reminding a reminded order is a
// no-op before any clipboard write happens.
func (model *Model) remindSelected() tea.Cmd {
	o, ok := model.selectedOrder()
	if !ok {
		return nil
	}
	if o.Status.Code != order.CodePending {
		model.setNotice("only pending orders can be reminded", true)
		return noticeFade()
	}
	if o.IsReminded {
		model.setNotice("Reminder already sent for "+o.OrderNo, false)
		return noticeFade()
	}
	return writeClipboard(model.clipboard, order.ReminderText(o), o.ID, clipboardReminder)
}

// openCompleteDialog opens the completion dialog for the selected row
// when its status allows completion.
func (model *Model) openCompleteDialog() tea.Cmd {
	o, ok := model.selectedOrder()
	if !ok || model.mutator == nil {
		return nil
	}
	if o.Status.Terminal() {
		model.setNotice(o.OrderNo+" is already settled", true)
		return noticeFade()
	}
	model.amountModal = newAmountModal(o, model.theme)
	model.focusRegion = FocusAmountModal
	return nil
}

func (model *Model) toggleReadSelected() tea.Cmd {
	o, ok := model.selectedOrder()
	if !ok || model.mutator == nil {
		return nil
	}
	if _, err := model.mutator.ToggleFlag(o.ID, orderindex.FlagRead); err != nil {
		model.setNotice(err.Error(), true)
		return noticeFade()
	}
	return nil
}

// openActionMenu opens the action menu for the selected row, anchored
// under the row's right edge. Opening a menu replaces any menu that
// was already open; only one menu exists at a time.
func (model *Model) openActionMenu() {
	o, ok := model.selectedOrder()
	if !ok {
		return
	}
	rowY := model.contentStartY() + (model.cursor - model.scrollOffset)
	model.openMenuAt(o, tui.Rect{X: 0, Y: rowY, Width: model.listWidth(), Height: 1})
}

// openMenuAt opens the action menu for an order, placed relative to
// the given anchor rectangle.
func (model *Model) openMenuAt(o order.Order, anchor tui.Rect) {
	menu := &tui.DropdownOverlay{
		Options: menuOptions(o, model.mutator != nil),
		OrderID: o.ID,
	}
	menu.AnchorX, menu.AnchorY = tui.MenuPosition(
		anchor, menu.Width(), menu.Height(), model.width, model.height)
	model.actionMenu = menu
	model.focusRegion = FocusMenu
}

func (model *Model) dismissMenu() {
	model.actionMenu = nil
	model.focusRegion = FocusList
}

// setNotice sets the status bar notice.
func (model *Model) setNotice(text string, isError bool) {
	model.notice = text
	model.noticeIsError = isError
}

func (model *Model) orderLabel(orderID int) string {
	if o, ok := model.source.Get(orderID); ok {
		return o.OrderNo
	}
	return fmt.Sprintf("order %d", orderID)
}

// refreshFromSource rebuilds the view pipeline: snapshot, attention
// sort, filter, and page clamp. The cursor follows the selected order
// when it is still on the current page.
func (model *Model) refreshFromSource() {
	snapshot := model.source.All()
	model.stats = snapshot.Stats
	model.orders = model.filter.Apply(orderindex.SortForDisplay(snapshot.Orders))
	model.pager.Clamp(len(model.orders))

	page := model.pageOrders()
	for index, o := range page {
		if o.ID == model.selectedID {
			model.cursor = index
			model.ensureCursorVisible()
			return
		}
	}
	model.clampCursor()
	model.rememberSelection()
}

// pageOrders returns the orders on the current page.
func (model *Model) pageOrders() []order.Order {
	return orderindex.VisiblePage(model.orders, model.pager.Page, model.pager.PageSize)
}

// selectedOrder returns the order under the cursor.
func (model *Model) selectedOrder() (order.Order, bool) {
	page := model.pageOrders()
	if model.cursor < 0 || model.cursor >= len(page) {
		return order.Order{}, false
	}
	return page[model.cursor], true
}

func (model *Model) moveCursor(delta int) {
	page := model.pageOrders()
	if len(page) == 0 {
		return
	}
	model.cursor += delta
	if model.cursor < 0 {
		model.cursor = 0
	}
	if model.cursor >= len(page) {
		model.cursor = len(page) - 1
	}
	model.ensureCursorVisible()
	model.rememberSelection()
}

func (model *Model) resetPagePosition() {
	model.cursor = 0
	model.scrollOffset = 0
	model.rememberSelection()
}

func (model *Model) clampCursor() {
	page := model.pageOrders()
	if model.cursor >= len(page) {
		model.cursor = len(page) - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
	model.ensureCursorVisible()
}

func (model *Model) rememberSelection() {
	if o, ok := model.selectedOrder(); ok {
		model.selectedID = o.ID
	}
}

// ensureCursorVisible adjusts the scroll offset so the cursor row is
// inside the visible band of the current page.
func (model *Model) ensureCursorVisible() {
	rows := model.visibleRows()
	if rows <= 0 {
		return
	}
	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+rows {
		model.scrollOffset = model.cursor - rows + 1
	}
	if model.scrollOffset < 0 {
		model.scrollOffset = 0
	}
}

// Layout: stats line, marquee-or-filter line, column header, rows,
// then a notice line and a footer line at the bottom.
const (
	topChromeRows    = 3
	bottomChromeRows = 2
)

func (model *Model) contentStartY() int { return topChromeRows }

// visibleRows is how many table rows fit on screen.
func (model *Model) visibleRows() int {
	rows := model.height - topChromeRows - bottomChromeRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// listWidth is the table width; the rightmost column holds the
// scrollbar.
func (model *Model) listWidth() int {
	if model.width <= 1 {
		return 1
	}
	return model.width - 1
}

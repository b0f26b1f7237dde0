// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fieldops/orderdesk/lib/order"
	"github.com/fieldops/orderdesk/lib/tui"
)

// amountModal is the completion confirmation dialog: a single amount
// field prefilled with the order's quoted total. Enter confirms;
// escape cancels without mutating anything.
type amountModal struct {
	orderID int
	orderNo string
	input   textinput.Model
	errText string
	theme   tui.Theme
}

func newAmountModal(o order.Order, theme tui.Theme) *amountModal {
	input := textinput.New()
	input.Prompt = "Confirmed amount: "
	input.CharLimit = 12
	input.Width = 14
	input.SetValue(strconv.FormatFloat(o.TotalAmount, 'f', 2, 64))
	input.CursorEnd()
	input.Focus()
	return &amountModal{
		orderID: o.ID,
		orderNo: o.OrderNo,
		input:   input,
		theme:   theme,
	}
}

// Update feeds a key message to the amount field.
func (modal *amountModal) Update(message tea.KeyMsg) tea.Cmd {
	modal.errText = ""
	var cmd tea.Cmd
	modal.input, cmd = modal.input.Update(message)
	return cmd
}

// Amount parses the entered amount. A non-numeric or negative value
// is an error; the modal stays open and shows it.
func (modal *amountModal) Amount() (float64, error) {
	raw := strings.TrimSpace(modal.input.Value())
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q is not a number", raw)
	}
	if amount < 0 {
		return 0, fmt.Errorf("amount must not be negative")
	}
	return amount, nil
}

// Render produces the dialog lines and the centered anchor position.
func (modal *amountModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	return renderDialog(modal.theme, "Complete order "+modal.orderNo,
		[]string{modal.input.View()}, modal.errText,
		"Enter confirm  Esc cancel", screenWidth, screenHeight)
}

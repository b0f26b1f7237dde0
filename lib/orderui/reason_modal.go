// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fieldops/orderdesk/lib/order"
	"github.com/fieldops/orderdesk/lib/tui"
)

// reasonModal collects the explanation the void and error flows
// require: one line of text. Enter submits; escape cancels without
// mutating anything.
type reasonModal struct {
	orderID int
	purpose reasonPurpose
	title   string
	input   textinput.Model
	errText string
	theme   tui.Theme
}

func newReasonModal(o order.Order, purpose reasonPurpose, theme tui.Theme) *reasonModal {
	input := textinput.New()
	input.Prompt = "Reason: "
	input.CharLimit = 200
	input.Width = 42
	input.Focus()
	title := "Void order " + o.OrderNo
	if purpose == reasonError {
		title = "Add error to " + o.OrderNo
	}
	return &reasonModal{
		orderID: o.ID,
		purpose: purpose,
		title:   title,
		input:   input,
		theme:   theme,
	}
}

// Update feeds a key message to the reason field.
func (modal *reasonModal) Update(message tea.KeyMsg) tea.Cmd {
	modal.errText = ""
	var cmd tea.Cmd
	modal.input, cmd = modal.input.Update(message)
	return cmd
}

// Reason returns the trimmed reason text. An empty reason is an
// error; the modal stays open and shows it.
func (modal *reasonModal) Reason() (string, error) {
	reason := strings.TrimSpace(modal.input.Value())
	if reason == "" {
		return "", fmt.Errorf("a reason is required")
	}
	return reason, nil
}

// Render produces the dialog lines and the centered anchor position.
func (modal *reasonModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	return renderDialog(modal.theme, modal.title,
		[]string{modal.input.View()}, modal.errText,
		"Enter confirm  Esc cancel", screenWidth, screenHeight)
}

// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderui

import (
	"fmt"
	"strings"

	"github.com/fieldops/orderdesk/lib/order"
	"github.com/fieldops/orderdesk/lib/tui"
)

// Action identifies one entry in the per-row action menu.
type Action string

const (
	ActionCopyOrder    Action = "copy_order"
	ActionInvoice      Action = "invoice"
	ActionComplete     Action = "complete"
	ActionDetail       Action = "detail"
	ActionFindResource Action = "find_resource"
	ActionAddError     Action = "add_error"
	ActionVoid         Action = "void"
	ActionOtherReceipt Action = "other_receipt"

	// Contact actions hand off to an external chat surface; the TUI
	// surfaces them as notifications.
	ActionContactDispatcher Action = "contact_dispatcher"
	ActionContactOps        Action = "contact_ops"
	ActionContactAftersale  Action = "contact_aftersale"
	ActionGroupChat         Action = "group_chat"
)

// actionLabels maps actions to menu labels, in display order.
var actionOrder = []Action{
	ActionCopyOrder,
	ActionInvoice,
	ActionComplete,
	ActionDetail,
	ActionFindResource,
	ActionAddError,
	ActionVoid,
	ActionOtherReceipt,
	ActionContactDispatcher,
	ActionContactOps,
	ActionContactAftersale,
	ActionGroupChat,
}

var actionLabels = map[Action]string{
	ActionCopyOrder:    "Copy order",
	ActionInvoice:      "Invoice",
	ActionComplete:     "Complete",
	ActionDetail:       "Detail",
	ActionFindResource: "Find resource",
	ActionAddError:     "Add error",
	ActionVoid:         "Void",
	ActionOtherReceipt: "Other receipt",

	ActionContactDispatcher: "Contact dispatcher",
	ActionContactOps:        "Contact ops",
	ActionContactAftersale:  "Contact aftersale",
	ActionGroupChat:         "Group chat",
}

// actionEnabled reports whether an action is available for an order
// in its current status. Completing and voiding need a non-terminal
// order; AddError is a pending-only dispatcher step. Read-only
// actions are always available.
func actionEnabled(action Action, o order.Order) bool {
	switch action {
	case ActionComplete, ActionVoid:
		return !o.Status.Terminal()
	case ActionAddError:
		return o.Status.Code == order.CodePending
	default:
		return true
	}
}

// menuOptions builds the dropdown options for an order's action menu.
// When the source cannot mutate, mutating entries are disabled too.
func menuOptions(o order.Order, canMutate bool) []tui.DropdownOption {
	options := make([]tui.DropdownOption, 0, len(actionOrder))
	for _, action := range actionOrder {
		enabled := actionEnabled(action, o)
		if !canMutate {
			switch action {
			case ActionComplete, ActionVoid, ActionAddError:
				enabled = false
			}
		}
		options = append(options, tui.DropdownOption{
			Label:    actionLabels[action],
			Value:    string(action),
			Disabled: !enabled,
		})
	}
	return options
}

// OrderSummaryText renders the copy-order clipboard payload: the
// header identifiers plus the service and money lines.
func OrderSummaryText(o order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order %s (%s)\n", o.OrderNo, o.WorkOrderNo)
	fmt.Fprintf(&b, "Status: %s", o.Status.Label())
	if o.Status.Reason != "" {
		fmt.Fprintf(&b, " (%s)", o.Status.Reason)
	}
	if o.Status.Detail != "" {
		fmt.Fprintf(&b, " (%s)", o.Status.Detail)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Customer: %s  %s\n", o.CustomerName, o.Mobile)
	fmt.Fprintf(&b, "Service: %s\n", o.ServiceItem)
	fmt.Fprintf(&b, "Address: %s, %s\n", o.Address, o.Region)
	fmt.Fprintf(&b, "Amount: %.2f (cost %.2f, revenue %.2f)", o.TotalAmount, o.Cost, o.Revenue)
	return b.String()
}

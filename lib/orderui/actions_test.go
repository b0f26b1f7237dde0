// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderui

import (
	"strings"
	"testing"

	"github.com/fieldops/orderdesk/lib/order"
)

func TestActionEnabledByStatus(t *testing.T) {
	returned, err := order.Returned("wrong part")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		status  order.Status
		action  Action
		enabled bool
	}{
		{"complete pending", order.Pending(), ActionComplete, true},
		{"complete returned", returned, ActionComplete, true},
		{"complete completed", order.Completed(), ActionComplete, false},
		{"void pending", order.Pending(), ActionVoid, true},
		{"void voided", order.Voided(), ActionVoid, false},
		{"add error pending", order.Pending(), ActionAddError, true},
		{"add error returned", returned, ActionAddError, false},
		{"copy completed", order.Completed(), ActionCopyOrder, true},
		{"detail voided", order.Voided(), ActionDetail, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			o := order.Order{ID: 1, Status: test.status}
			if got := actionEnabled(test.action, o); got != test.enabled {
				t.Errorf("actionEnabled(%s, %s) = %v, want %v",
					test.action, test.status.Code, got, test.enabled)
			}
		})
	}
}

func TestMenuOptionsReadOnlySource(t *testing.T) {
	o := order.Order{ID: 1, Status: order.Pending()}
	options := menuOptions(o, false)

	disabled := map[string]bool{}
	for _, option := range options {
		disabled[option.Value] = option.Disabled
	}
	for _, action := range []Action{ActionComplete, ActionVoid, ActionAddError} {
		if !disabled[string(action)] {
			t.Errorf("%s enabled on a read-only source", action)
		}
	}
	if disabled[string(ActionCopyOrder)] {
		t.Error("copy order disabled on a read-only source")
	}
}

func TestMenuOptionsCoverEveryAction(t *testing.T) {
	options := menuOptions(order.Order{Status: order.Pending()}, true)
	if len(options) != len(actionOrder) {
		t.Fatalf("menu has %d options, want %d", len(options), len(actionOrder))
	}
	for index, option := range options {
		if option.Value != string(actionOrder[index]) {
			t.Errorf("option %d = %q, want %q", index, option.Value, actionOrder[index])
		}
		if option.Label == "" {
			t.Errorf("option %q has no label", option.Value)
		}
	}
}

func TestOrderSummaryText(t *testing.T) {
	returned, err := order.Returned("wrong part delivered")
	if err != nil {
		t.Fatal(err)
	}
	o := order.Order{
		ID:           5,
		OrderNo:      "ORD-20231027-0005",
		WorkOrderNo:  "WO-9985",
		Status:       returned,
		CustomerName: "Mr. Zhang",
		Mobile:       "13800001234",
		ServiceItem:  "AC Deep Clean",
		Region:       "North District",
		Address:      "5 Elm Street",
		TotalAmount:  250,
		Cost:         150,
		Revenue:      100,
	}

	text := OrderSummaryText(o)
	for _, fragment := range []string{
		"ORD-20231027-0005",
		"WO-9985",
		"wrong part delivered",
		"Mr. Zhang",
		"13800001234",
		"AC Deep Clean",
		"5 Elm Street, North District",
		"250.00",
	} {
		if !strings.Contains(text, fragment) {
			t.Errorf("summary missing %q:\n%s", fragment, text)
		}
	}
}

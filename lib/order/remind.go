// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package order

import (
	"fmt"
	"strings"
)

// ReminderText renders the reminder block a dispatcher pastes into the
// field chat to chase a pending order. The layout is fixed so the
// receiving side can skim it.
func ReminderText(o Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[REMINDER] Order %s\n", o.OrderNo)
	fmt.Fprintf(&b, "Mobile: %s\n", o.Mobile)
	fmt.Fprintf(&b, "Service: %s\n", o.ServiceItem)
	fmt.Fprintf(&b, "Region: %s\n", o.Region)
	fmt.Fprintf(&b, "Address: %s\n", o.Address)
	fmt.Fprintf(&b, "Details: %s", o.Details)
	return b.String()
}

// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderindex

import (
	"slices"

	"github.com/fieldops/orderdesk/lib/order"
)

// displayRank orders status/reminder classes for the dashboard:
// pending before everything else, and within equal pending-ness
// unreminded rows before reminded ones. An order reminded while
// pending keeps sinking after it settles.
func displayRank(o order.Order) int {
	rank := 0
	if o.Status.Code != order.CodePending {
		rank += 2
	}
	if o.IsReminded {
		rank++
	}
	return rank
}

// SortForDisplay returns a copy of the orders sorted for the table:
// pending before settled, unreminded before reminded within each
// side, original order preserved within each class.
func SortForDisplay(orders []order.Order) []order.Order {
	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b order.Order) int {
		return displayRank(a) - displayRank(b)
	})
	return sorted
}

// TotalPages returns the number of pages needed to show n items.
// An empty list still has one (empty) page.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (n + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// VisiblePage slices one 1-based page out of the list. A page beyond
// the end returns an empty slice. Concatenating pages 1..TotalPages
// reproduces the input exactly.
func VisiblePage(orders []order.Order, page, pageSize int) []order.Order {
	if pageSize <= 0 || page < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(orders) {
		return nil
	}
	end := min(start+pageSize, len(orders))
	return orders[start:end]
}

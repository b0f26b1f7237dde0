// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderindex

import (
	"testing"

	"github.com/fieldops/orderdesk/lib/order"
)

func TestSortForDisplayClasses(t *testing.T) {
	reminded := pendingOrder(1)
	reminded.IsReminded = true
	// Reminded while pending, then completed. The reminder tie-break
	// still applies among settled rows.
	settledReminded := pendingOrder(2)
	settledReminded.Status = order.Completed()
	settledReminded.IsReminded = true
	completed := pendingOrder(3)
	completed.Status = order.Completed()
	fresh := pendingOrder(4)

	sorted := SortForDisplay([]order.Order{
		settledReminded, reminded, completed, fresh,
	})
	wantIDs := []int{4, 1, 3, 2}
	var gotIDs []int
	for _, o := range sorted {
		gotIDs = append(gotIDs, o.ID)
	}
	for i, want := range wantIDs {
		if gotIDs[i] != want {
			t.Fatalf("sorted IDs = %v, want %v", gotIDs, wantIDs)
		}
	}
}

func TestSortForDisplayIsStable(t *testing.T) {
	// Orders within the same class keep their relative order.
	var input []order.Order
	for id := 1; id <= 6; id++ {
		o := pendingOrder(id)
		if id%2 == 0 {
			o.Status = order.Completed()
		}
		input = append(input, o)
	}
	sorted := SortForDisplay(input)
	wantIDs := []int{1, 3, 5, 2, 4, 6}
	for i, want := range wantIDs {
		if sorted[i].ID != want {
			t.Errorf("position %d: ID = %d, want %d", i, sorted[i].ID, want)
		}
	}
}

func TestSortForDisplayDoesNotMutateInput(t *testing.T) {
	completed := pendingOrder(1)
	completed.Status = order.Completed()
	input := []order.Order{completed, pendingOrder(2)}
	SortForDisplay(input)
	if input[0].ID != 1 {
		t.Error("input slice was reordered")
	}
}

func TestVisiblePagesConcatenateToWholeList(t *testing.T) {
	var orders []order.Order
	for id := 1; id <= 25; id++ {
		orders = append(orders, pendingOrder(id))
	}
	const pageSize = 20

	if total := TotalPages(len(orders), pageSize); total != 2 {
		t.Fatalf("TotalPages(25, 20) = %d, want 2", total)
	}
	var seen []int
	for page := 1; page <= 2; page++ {
		for _, o := range VisiblePage(orders, page, pageSize) {
			seen = append(seen, o.ID)
		}
	}
	if len(seen) != 25 {
		t.Fatalf("pages concatenate to %d items, want 25", len(seen))
	}
	for i, id := range seen {
		if id != i+1 {
			t.Fatalf("position %d holds ID %d, want %d", i, id, i+1)
		}
	}
	if n := len(VisiblePage(orders, 2, pageSize)); n != 5 {
		t.Errorf("page 2 has %d items, want 5", n)
	}
}

func TestVisiblePageOutOfRange(t *testing.T) {
	orders := []order.Order{pendingOrder(1)}
	if got := VisiblePage(orders, 2, 20); len(got) != 0 {
		t.Errorf("page past end returned %d items", len(got))
	}
	if got := VisiblePage(orders, 0, 20); len(got) != 0 {
		t.Errorf("page 0 returned %d items", len(got))
	}
	if got := VisiblePage(nil, 1, 20); len(got) != 0 {
		t.Errorf("empty list returned %d items", len(got))
	}
}

func TestTotalPagesEmptyList(t *testing.T) {
	if got := TotalPages(0, 20); got != 1 {
		t.Errorf("TotalPages(0, 20) = %d, want 1", got)
	}
}

func TestPagerBoundaries(t *testing.T) {
	pager := NewPager(20)
	if pager.Previous() {
		t.Error("Previous on page 1 should be a no-op")
	}
	if pager.Page != 1 {
		t.Errorf("page = %d after clamped Previous", pager.Page)
	}
	if !pager.Next(25) {
		t.Error("Next with a second page available should advance")
	}
	if pager.Next(25) {
		t.Error("Next on the last page should be a no-op")
	}
	if pager.Page != 2 {
		t.Errorf("page = %d, want 2", pager.Page)
	}
	if !pager.Previous() {
		t.Error("Previous from page 2 should move back")
	}
}

func TestPagerClampAfterShrink(t *testing.T) {
	pager := NewPager(20)
	pager.Next(45)
	pager.Next(45)
	if pager.Page != 3 {
		t.Fatalf("page = %d, want 3", pager.Page)
	}
	// The filtered list shrank to a single page.
	pager.Clamp(10)
	if pager.Page != 1 {
		t.Errorf("page after clamp = %d, want 1", pager.Page)
	}
}

func TestPagerBounds(t *testing.T) {
	pager := NewPager(20)
	first, last := pager.Bounds(25)
	if first != 1 || last != 20 {
		t.Errorf("page 1 bounds = (%d, %d), want (1, 20)", first, last)
	}
	pager.Next(25)
	first, last = pager.Bounds(25)
	if first != 21 || last != 25 {
		t.Errorf("page 2 bounds = (%d, %d), want (21, 25)", first, last)
	}
	first, last = pager.Bounds(0)
	if first != 0 || last != 0 {
		t.Errorf("empty bounds = (%d, %d), want (0, 0)", first, last)
	}
}

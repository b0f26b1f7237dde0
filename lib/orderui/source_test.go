// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderui

import (
	"testing"
	"time"

	"github.com/fieldops/orderdesk/lib/clock"
	"github.com/fieldops/orderdesk/lib/order"
	"github.com/fieldops/orderdesk/lib/orderindex"
	"github.com/fieldops/orderdesk/lib/testutil"
)

func testOrder(id int, status order.Status) order.Order {
	return order.Order{
		ID:          id,
		OrderNo:     "ORD-20231027-0001",
		WorkOrderNo: "WO-9981",
		Status:      status,
		TotalAmount: 250,
	}
}

func newTestSource(t *testing.T, orders ...order.Order) *StoreSource {
	t.Helper()
	index := orderindex.NewIndex()
	for _, o := range orders {
		if err := index.Put(o); err != nil {
			t.Fatalf("seeding order %d: %v", o.ID, err)
		}
	}
	return NewStoreSource(index, clock.NewFake(time.Date(2023, 10, 27, 12, 0, 0, 0, time.UTC)))
}

func TestStoreSourceDispatchesMutationEvents(t *testing.T) {
	source := newTestSource(t, testOrder(1, order.Pending()))
	events := source.Subscribe()

	if err := source.Complete(1, 300); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	event := testutil.RequireReceive(t, events, time.Second, "completion event")
	if event.OrderID != 1 {
		t.Errorf("event order ID = %d, want 1", event.OrderID)
	}
	if event.Order.Status.Code != order.CodeCompleted {
		t.Errorf("event status = %q, want completed", event.Order.Status.Code)
	}
	if event.Order.ActualPaid != 300 {
		t.Errorf("event actual paid = %v, want 300", event.Order.ActualPaid)
	}
}

func TestStoreSourceCompleteStampsClockTime(t *testing.T) {
	source := newTestSource(t, testOrder(1, order.Pending()))
	if err := source.Complete(1, 250); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	o, ok := source.Get(1)
	if !ok {
		t.Fatal("order disappeared after completion")
	}
	if o.CompletionTime != "2023-10-27 12:00" {
		t.Errorf("completion time = %q, want fake clock time", o.CompletionTime)
	}
}

func TestStoreSourceRejectedMutationDispatchesNothing(t *testing.T) {
	source := newTestSource(t, testOrder(1, order.Completed()))
	events := source.Subscribe()

	if err := source.Void(1, "customer cancelled"); err == nil {
		t.Fatal("expected void of a completed order to fail")
	}
	testutil.RequireNoReceive(t, events, 50*time.Millisecond, "event for rejected mutation")
}

func TestStoreSourceMarkRemindedSecondCallSilent(t *testing.T) {
	source := newTestSource(t, testOrder(1, order.Pending()))
	events := source.Subscribe()

	already, err := source.MarkReminded(1)
	if err != nil || already {
		t.Fatalf("first MarkReminded = (%v, %v), want (false, nil)", already, err)
	}
	testutil.RequireReceive(t, events, time.Second, "first reminder event")

	already, err = source.MarkReminded(1)
	if err != nil || !already {
		t.Fatalf("second MarkReminded = (%v, %v), want (true, nil)", already, err)
	}
	testutil.RequireNoReceive(t, events, 50*time.Millisecond, "event for repeated reminder")
}

func TestStoreSourceAllIncludesStats(t *testing.T) {
	source := newTestSource(t,
		testOrder(1, order.Pending()),
		testOrder(2, order.Completed()),
	)
	snapshot := source.All()
	if len(snapshot.Orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(snapshot.Orders))
	}
	if snapshot.Stats.Total != 2 {
		t.Errorf("stats total = %d, want 2", snapshot.Stats.Total)
	}
	if snapshot.Stats.PendingUnreminded != 1 {
		t.Errorf("pending unreminded = %d, want 1", snapshot.Stats.PendingUnreminded)
	}
}

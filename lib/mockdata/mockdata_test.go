// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package mockdata

import (
	"testing"
	"time"

	"github.com/fieldops/orderdesk/lib/clock"
	"github.com/fieldops/orderdesk/lib/order"
)

func fixedClock() clock.Clock {
	return clock.NewFake(time.Date(2023, 10, 27, 18, 0, 0, 0, time.UTC))
}

func TestGenerateIsDeterministic(t *testing.T) {
	first := Generate(fixedClock(), 42, DefaultCount)
	second := Generate(fixedClock(), 42, DefaultCount)
	if len(first) != DefaultCount || len(second) != DefaultCount {
		t.Fatalf("lengths = %d, %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("order %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGenerateStatusMix(t *testing.T) {
	orders := Generate(fixedClock(), 42, DefaultCount)
	counts := make(map[order.Code]int)
	for _, o := range orders {
		counts[o.Status.Code]++
		if err := o.Status.Validate(); err != nil {
			t.Errorf("order %d has invalid status: %v", o.ID, err)
		}
	}
	if counts[order.CodePending] != maxPending {
		t.Errorf("pending count = %d, want %d", counts[order.CodePending], maxPending)
	}
	for _, code := range []order.Code{order.CodeVoid, order.CodeReturned, order.CodeError} {
		if counts[code] == 0 {
			t.Errorf("no %s orders generated", code)
		}
	}
	if counts[order.CodeCompleted] == 0 {
		t.Error("no completed orders generated")
	}
}

func TestGenerateNumbering(t *testing.T) {
	orders := Generate(fixedClock(), 1, 3)
	if orders[0].OrderNo != "ORD-20231027-0001" {
		t.Errorf("OrderNo = %q", orders[0].OrderNo)
	}
	if orders[2].WorkOrderNo != "WO-9983" {
		t.Errorf("WorkOrderNo = %q", orders[2].WorkOrderNo)
	}
}

func TestGenerateMoneyInvariants(t *testing.T) {
	for _, o := range Generate(fixedClock(), 7, DefaultCount) {
		if o.Revenue != o.TotalAmount-o.Cost {
			t.Errorf("order %d: revenue %v != amount %v - cost %v",
				o.ID, o.Revenue, o.TotalAmount, o.Cost)
		}
		if o.Status.Code == order.CodeCompleted && o.ActualPaid != o.TotalAmount {
			t.Errorf("order %d: completed with ActualPaid %v != %v",
				o.ID, o.ActualPaid, o.TotalAmount)
		}
	}
}

func TestFillLoadsAllOrders(t *testing.T) {
	index, err := Fill(fixedClock(), 42, 30)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if index.Len() != 30 {
		t.Errorf("index holds %d orders, want 30", index.Len())
	}
}

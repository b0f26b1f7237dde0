// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderindex

import (
	"fmt"
	"strings"

	"github.com/fieldops/orderdesk/lib/order"
)

// Flag names a toggleable dispatcher flag on an order.
type Flag string

const (
	FlagRead           Flag = "read"
	FlagCalled         Flag = "called"
	FlagCoupon         Flag = "coupon"
	FlagCouponVerified Flag = "coupon_verified"
)

// Stats summarizes the store for the dashboard header.
type Stats struct {
	Total             int
	ByStatus          map[order.Code]int
	PendingUnreminded int
}

// Filter selects a subset of orders. Zero values match everything.
type Filter struct {
	// Status restricts to a single status code when non-empty.
	Status order.Code
	// Source restricts to a single order source when non-empty.
	Source string
	// Keyword is matched case-insensitively against the order's
	// searchable text (order numbers, mobile, service item, region,
	// address, customer and master names).
	Keyword string
}

// Matches reports whether the order passes the filter.
func (filter Filter) Matches(o order.Order) bool {
	if filter.Status != "" && o.Status.Code != filter.Status {
		return false
	}
	if filter.Source != "" && o.Source != filter.Source {
		return false
	}
	if filter.Keyword != "" {
		needle := strings.ToLower(filter.Keyword)
		if !strings.Contains(strings.ToLower(SearchText(o)), needle) {
			return false
		}
	}
	return true
}

// SearchText joins the fields keyword filtering runs over.
func SearchText(o order.Order) string {
	return strings.Join([]string{
		o.OrderNo, o.WorkOrderNo, o.Mobile, o.ServiceItem,
		o.Region, o.Address, o.CustomerName, o.MasterName,
		o.Source, o.Status.Label(),
	}, " ")
}

// Index is the in-memory order store. Orders are held by value keyed
// on ID, with a separate slice preserving insertion order so that
// listing is stable across mutations.
type Index struct {
	byID map[int]order.Order
	ids  []int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{byID: make(map[int]order.Order)}
}

// Put inserts or replaces an order. The order's status must validate.
func (index *Index) Put(o order.Order) error {
	if err := o.Status.Validate(); err != nil {
		return fmt.Errorf("order %d: %w", o.ID, err)
	}
	if _, exists := index.byID[o.ID]; !exists {
		index.ids = append(index.ids, o.ID)
	}
	index.byID[o.ID] = o
	return nil
}

// Get returns the order with the given ID.
func (index *Index) Get(id int) (order.Order, error) {
	o, ok := index.byID[id]
	if !ok {
		return order.Order{}, fmt.Errorf("order %d: %w", id, order.ErrNotFound)
	}
	return o, nil
}

// Len returns the number of stored orders.
func (index *Index) Len() int { return len(index.ids) }

// List returns the orders passing the filter, in insertion order.
func (index *Index) List(filter Filter) []order.Order {
	result := make([]order.Order, 0, len(index.ids))
	for _, id := range index.ids {
		o := index.byID[id]
		if filter.Matches(o) {
			result = append(result, o)
		}
	}
	return result
}

// Stats computes store-wide counts.
func (index *Index) Stats() Stats {
	stats := Stats{
		Total:    len(index.ids),
		ByStatus: make(map[order.Code]int),
	}
	for _, id := range index.ids {
		o := index.byID[id]
		stats.ByStatus[o.Status.Code]++
		if o.Status.Code == order.CodePending && !o.IsReminded {
			stats.PendingUnreminded++
		}
	}
	return stats
}

// SetStatus moves an order to the given status, enforcing the
// transition matrix. On a forbidden move the stored order is left
// untouched.
func (index *Index) SetStatus(id int, next order.Status) error {
	o, err := index.Get(id)
	if err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return fmt.Errorf("order %d: %w", id, err)
	}
	if !order.CanTransition(o.Status.Code, next.Code) {
		return fmt.Errorf("order %d: %s to %s: %w",
			id, o.Status.Code, next.Code, order.ErrInvalidTransition)
	}
	o.Status = next
	index.byID[id] = o
	return nil
}

// Complete confirms the order's work as done. The confirmed amount is
// recorded as what was actually paid, and the completion timestamp is
// stored for display.
func (index *Index) Complete(id int, confirmedAmount float64, completedAt string) error {
	if confirmedAmount < 0 {
		return fmt.Errorf("order %d: confirmed amount must not be negative", id)
	}
	if err := index.SetStatus(id, order.Completed()); err != nil {
		return err
	}
	o := index.byID[id]
	o.ActualPaid = confirmedAmount
	o.CompletionIncome = confirmedAmount
	o.CompletionTime = completedAt
	index.byID[id] = o
	return nil
}

// Void cancels the order, recording who or why in the void details.
// The reason must be non-empty.
func (index *Index) Void(id int, reason string) error {
	if reason == "" {
		return fmt.Errorf("order %d: void requires a reason", id)
	}
	if err := index.SetStatus(id, order.Voided()); err != nil {
		return err
	}
	o := index.byID[id]
	o.VoidDetails = reason
	index.byID[id] = o
	return nil
}

// MarkError flags the order with a dispatch or service problem.
func (index *Index) MarkError(id int, detail string) error {
	status, err := order.Errored(detail)
	if err != nil {
		return fmt.Errorf("order %d: %w", id, err)
	}
	return index.SetStatus(id, status)
}

// MarkReturned records that the assigned master handed the order back.
func (index *Index) MarkReturned(id int, reason string) error {
	status, err := order.Returned(reason)
	if err != nil {
		return fmt.Errorf("order %d: %w", id, err)
	}
	return index.SetStatus(id, status)
}

// Redispatch moves a returned or errored order back to pending.
func (index *Index) Redispatch(id int) error {
	return index.SetStatus(id, order.Pending())
}

// MarkReminded records that a reminder for the order has been sent.
// It reports whether the order was already reminded; marking twice is
// a no-op, not an error.
func (index *Index) MarkReminded(id int) (already bool, err error) {
	o, err := index.Get(id)
	if err != nil {
		return false, err
	}
	if o.IsReminded {
		return true, nil
	}
	o.IsReminded = true
	index.byID[id] = o
	return false, nil
}

// ToggleFlag flips one of the dispatcher flags and returns the new
// value.
func (index *Index) ToggleFlag(id int, flag Flag) (bool, error) {
	o, err := index.Get(id)
	if err != nil {
		return false, err
	}
	var value bool
	switch flag {
	case FlagRead:
		o.IsRead = !o.IsRead
		value = o.IsRead
	case FlagCalled:
		o.IsCalled = !o.IsCalled
		value = o.IsCalled
	case FlagCoupon:
		o.HasCoupon = !o.HasCoupon
		value = o.HasCoupon
	case FlagCouponVerified:
		o.IsCouponVerified = !o.IsCouponVerified
		value = o.IsCouponVerified
	default:
		return false, fmt.Errorf("order %d: unknown flag %q", id, flag)
	}
	index.byID[id] = o
	return value, nil
}

// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderui

import (
	"sync"

	"github.com/fieldops/orderdesk/lib/clock"
	"github.com/fieldops/orderdesk/lib/order"
	"github.com/fieldops/orderdesk/lib/orderindex"
)

// Snapshot is a point-in-time view of the store with aggregate
// statistics for the dashboard header.
type Snapshot struct {
	Orders []order.Order
	Stats  orderindex.Stats
}

// Event describes a single change to the order store, delivered via
// the [Source.Subscribe] channel for live-updating UIs.
type Event struct {
	OrderID int
	Kind    string // "put" or "remove"
	Order   order.Order
}

// Source abstracts order data access for the TUI. The dashboard code
// is identical regardless of backend; [StoreSource] is the in-memory
// implementation.
type Source interface {
	// All returns every order in insertion order, with statistics.
	All() Snapshot

	// Get returns a single order by ID.
	Get(orderID int) (order.Order, bool)

	// Subscribe returns a channel that receives Events when the
	// underlying data changes. Returns nil if live updates are not
	// supported.
	Subscribe() <-chan Event
}

// Mutator is an optional interface a Source can provide to support
// order mutations. The TUI checks for it via type assertion; when
// absent, mutating menu entries are disabled.
//
// All mutations are synchronous against the local store. Results are
// also dispatched on the subscribe stream, which is what refreshes
// the table: callers never patch their own copies of rows.
type Mutator interface {
	// Complete confirms the order's work as done with the amount the
	// operator confirmed in the completion dialog.
	Complete(orderID int, confirmedAmount float64) error

	// Void cancels the order with a non-empty reason.
	Void(orderID int, reason string) error

	// MarkError flags the order with a dispatch or service problem.
	MarkError(orderID int, detail string) error

	// Redispatch moves a returned or errored order back to pending.
	Redispatch(orderID int) error

	// MarkReminded records that a reminder was copied out for the
	// order. It reports whether the order was already reminded.
	MarkReminded(orderID int) (already bool, err error)

	// ToggleFlag flips a dispatcher flag and returns the new value.
	ToggleFlag(orderID int, flag orderindex.Flag) (bool, error)
}

// StoreSource wraps an [orderindex.Index] with a mutex for concurrent
// access and event dispatch. The clock stamps completion times.
type StoreSource struct {
	mutex       sync.RWMutex
	index       *orderindex.Index
	clk         clock.Clock
	subscribers []chan Event
}

// NewStoreSource creates a StoreSource over the given index.
func NewStoreSource(index *orderindex.Index, clk clock.Clock) *StoreSource {
	return &StoreSource{index: index, clk: clk}
}

// All returns every order with store statistics.
func (source *StoreSource) All() Snapshot {
	source.mutex.RLock()
	defer source.mutex.RUnlock()
	return Snapshot{
		Orders: source.index.List(orderindex.Filter{}),
		Stats:  source.index.Stats(),
	}
}

// Get returns a single order by ID.
func (source *StoreSource) Get(orderID int) (order.Order, bool) {
	source.mutex.RLock()
	defer source.mutex.RUnlock()
	o, err := source.index.Get(orderID)
	return o, err == nil
}

// Subscribe returns a channel that receives an Event for every
// successful mutation.
func (source *StoreSource) Subscribe() <-chan Event {
	source.mutex.Lock()
	defer source.mutex.Unlock()
	channel := make(chan Event, 64)
	source.subscribers = append(source.subscribers, channel)
	return channel
}

// Put adds or replaces an order and dispatches an event. Safe for
// concurrent use.
func (source *StoreSource) Put(o order.Order) error {
	source.mutex.Lock()
	if err := source.index.Put(o); err != nil {
		source.mutex.Unlock()
		return err
	}
	source.dispatchLocked(o.ID)
	return nil
}

// Complete implements [Mutator], stamping the completion time from
// the source's clock.
func (source *StoreSource) Complete(orderID int, confirmedAmount float64) error {
	source.mutex.Lock()
	completedAt := source.clk.Now().Format("2006-01-02 15:04")
	if err := source.index.Complete(orderID, confirmedAmount, completedAt); err != nil {
		source.mutex.Unlock()
		return err
	}
	source.dispatchLocked(orderID)
	return nil
}

// Void implements [Mutator].
func (source *StoreSource) Void(orderID int, reason string) error {
	source.mutex.Lock()
	if err := source.index.Void(orderID, reason); err != nil {
		source.mutex.Unlock()
		return err
	}
	source.dispatchLocked(orderID)
	return nil
}

// MarkError implements [Mutator].
func (source *StoreSource) MarkError(orderID int, detail string) error {
	source.mutex.Lock()
	if err := source.index.MarkError(orderID, detail); err != nil {
		source.mutex.Unlock()
		return err
	}
	source.dispatchLocked(orderID)
	return nil
}

// Redispatch implements [Mutator].
func (source *StoreSource) Redispatch(orderID int) error {
	source.mutex.Lock()
	if err := source.index.Redispatch(orderID); err != nil {
		source.mutex.Unlock()
		return err
	}
	source.dispatchLocked(orderID)
	return nil
}

// MarkReminded implements [Mutator]. Marking an already-reminded
// order is a no-op and dispatches no event.
func (source *StoreSource) MarkReminded(orderID int) (bool, error) {
	source.mutex.Lock()
	already, err := source.index.MarkReminded(orderID)
	if err != nil || already {
		source.mutex.Unlock()
		return already, err
	}
	source.dispatchLocked(orderID)
	return false, nil
}

// ToggleFlag implements [Mutator].
func (source *StoreSource) ToggleFlag(orderID int, flag orderindex.Flag) (bool, error) {
	source.mutex.Lock()
	value, err := source.index.ToggleFlag(orderID, flag)
	if err != nil {
		source.mutex.Unlock()
		return false, err
	}
	source.dispatchLocked(orderID)
	return value, nil
}

// dispatchLocked snapshots the mutated order and the subscriber list
// under the held lock, releases it, then delivers the event. The
// subscriber list is append-only, so dispatching after release is
// safe. Callers must hold source.mutex; it is unlocked on return.
func (source *StoreSource) dispatchLocked(orderID int) {
	o, err := source.index.Get(orderID)
	subscribers := source.subscribers
	source.mutex.Unlock()
	if err != nil {
		return
	}

	event := Event{OrderID: orderID, Kind: "put", Order: o}
	for _, subscriber := range subscribers {
		select {
		case subscriber <- event:
		default:
			// Subscriber buffer full: drop the event. The TUI picks
			// up current state on its next snapshot refresh.
		}
	}
}

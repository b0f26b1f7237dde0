// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"
)

// HeatDecayDuration is how long a row glows after a mutation. Heat
// starts at 1.0 and decays linearly to 0.0 over this duration.
const HeatDecayDuration = 5 * time.Second

// HeatTickInterval is the re-render interval while any rows are hot.
const HeatTickInterval = 100 * time.Millisecond

// HeatKind distinguishes change types for color selection.
type HeatKind int

const (
	// HeatPut indicates a row was created or mutated (amber glow).
	HeatPut HeatKind = iota
	// HeatRemove indicates a row left the current view (red glow).
	HeatRemove
)

type heatEntry struct {
	ignition time.Time
	kind     HeatKind
}

// HeatTracker maps order IDs to ignition timestamps for animated
// change highlighting. Each mutation "ignites" a row, which then
// decays from full intensity to zero over [HeatDecayDuration].
type HeatTracker struct {
	entries map[int]heatEntry
}

// NewHeatTracker creates an empty heat tracker.
func NewHeatTracker() *HeatTracker {
	return &HeatTracker{entries: make(map[int]heatEntry)}
}

// Ignite records a change event for an order. Resets the decay timer
// if the row was already hot.
func (tracker *HeatTracker) Ignite(orderID int, kind HeatKind, now time.Time) {
	tracker.entries[orderID] = heatEntry{ignition: now, kind: kind}
}

// Heat returns the current intensity for an order: 1.0 at ignition,
// linearly decaying to 0.0 over [HeatDecayDuration]. Returns 0.0 for
// orders never ignited or fully decayed.
func (tracker *HeatTracker) Heat(orderID int, now time.Time) float64 {
	entry, exists := tracker.entries[orderID]
	if !exists {
		return 0.0
	}
	elapsed := now.Sub(entry.ignition)
	if elapsed >= HeatDecayDuration {
		return 0.0
	}
	return 1.0 - float64(elapsed)/float64(HeatDecayDuration)
}

// Kind returns the heat kind for an order. Only meaningful while
// Heat() is above zero.
func (tracker *HeatTracker) Kind(orderID int) HeatKind {
	entry, exists := tracker.entries[orderID]
	if !exists {
		return HeatPut
	}
	return entry.kind
}

// HasHot reports whether any tracked row still has heat, meaning the
// tick timer should keep running. Fully decayed entries are collected
// as a side effect.
func (tracker *HeatTracker) HasHot(now time.Time) bool {
	hot := false
	for orderID, entry := range tracker.entries {
		if now.Sub(entry.ignition) < HeatDecayDuration {
			hot = true
			continue
		}
		delete(tracker.entries, orderID)
	}
	return hot
}

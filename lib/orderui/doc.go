// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package orderui implements the interactive order dashboard: a
// bubbletea model rendering a paginated table of service orders with
// attention-first sorting, fuzzy filtering, per-row action menus,
// hover tooltips for truncated cells, and modal flows for completing
// and voiding orders.
//
// Data access goes through [Source]; mutations through [Mutator].
// [StoreSource] implements both over an in-memory index and feeds
// live change events back into the UI via [Source.Subscribe], which
// drives the row glow animation and keeps every view derived from the
// store rather than from local copies.
//
// The reminder flow is the one place the UI talks to the outside
// world: reminder text is written to the system clipboard through
// [Clipboard] (OSC 52 in production), and the order is marked
// reminded only after the write succeeds.
package orderui

// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package orderindex holds the in-memory order store and the pure view
// pipeline that turns it into what the dashboard shows.
//
// [Index] owns the orders. Every accessor returns copies, and every
// mutation goes through a named operation (Complete, Void, MarkError,
// Redispatch, MarkReminded, ToggleFlag) that enforces the transition
// matrix from lib/order before writing. The index itself is not
// synchronized; lib/orderui wraps it in a locked source.
//
// The view pipeline is stateless: [SortForDisplay] orders pending and
// unreminded rows first, and [VisiblePage] slices one page out of the
// sorted list. [Pager] tracks the current page and clamps it whenever
// the underlying list shrinks.
package orderindex

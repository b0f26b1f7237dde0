// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package order defines the service order entity, its status variants,
// and the rules governing status transitions.
//
// A service order moves through a small lifecycle: it starts pending
// dispatch, and ends either completed or void. Returned and error
// statuses are recoverable detours that carry explanatory text. The
// transition matrix lives in [CanTransition]; callers that mutate
// stored orders go through lib/orderindex, which enforces it.
//
// # Status representation
//
// Status is a tagged value: the Code selects the variant, and exactly
// one of Reason or Detail is populated for the returned and error
// variants. Constructors ([Returned], [Errored]) reject empty
// explanatory text so an order can never land in one of those statuses
// without a reason a dispatcher can read.
package order

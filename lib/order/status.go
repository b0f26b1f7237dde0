// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package order

import (
	"errors"
	"fmt"
)

// Code identifies a status variant.
type Code string

const (
	// CodePending is the initial status: recorded but not yet
	// dispatched to a service master.
	CodePending Code = "pending_dispatch"

	// CodeCompleted is a terminal status: the work is done and the
	// final amount confirmed.
	CodeCompleted Code = "completed"

	// CodeVoid is a terminal status: the order was cancelled.
	CodeVoid Code = "void"

	// CodeReturned means the assigned master handed the order back.
	// The status carries the return reason.
	CodeReturned Code = "returned"

	// CodeError means the order hit a dispatch or service problem.
	// The status carries the problem detail.
	CodeError Code = "error"
)

var (
	// ErrNotFound reports a lookup for an order ID the store does
	// not hold.
	ErrNotFound = errors.New("order not found")

	// ErrInvalidTransition reports a status change the transition
	// matrix forbids.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrMissingReason reports an attempt to construct a returned
	// status without a reason.
	ErrMissingReason = errors.New("returned status requires a reason")

	// ErrMissingDetail reports an attempt to construct an error
	// status without detail text.
	ErrMissingDetail = errors.New("error status requires detail text")
)

// Status is the tagged lifecycle state of an order. Reason is set only
// when Code is CodeReturned; Detail only when Code is CodeError. All
// other variants carry no companion text.
type Status struct {
	Code   Code
	Reason string
	Detail string
}

// Pending returns the pending-dispatch status.
func Pending() Status { return Status{Code: CodePending} }

// Completed returns the completed status.
func Completed() Status { return Status{Code: CodeCompleted} }

// Voided returns the void status.
func Voided() Status { return Status{Code: CodeVoid} }

// Returned constructs a returned status. The reason must be non-empty.
func Returned(reason string) (Status, error) {
	if reason == "" {
		return Status{}, ErrMissingReason
	}
	return Status{Code: CodeReturned, Reason: reason}, nil
}

// Errored constructs an error status. The detail must be non-empty.
func Errored(detail string) (Status, error) {
	if detail == "" {
		return Status{}, ErrMissingDetail
	}
	return Status{Code: CodeError, Detail: detail}, nil
}

// Terminal reports whether the status admits no further transitions.
func (status Status) Terminal() bool {
	return status.Code == CodeCompleted || status.Code == CodeVoid
}

// Validate checks the variant/companion pairing: returned requires a
// reason, error requires detail, and no other variant may carry either.
func (status Status) Validate() error {
	switch status.Code {
	case CodePending, CodeCompleted, CodeVoid:
		if status.Reason != "" || status.Detail != "" {
			return fmt.Errorf("status %q must not carry companion text", status.Code)
		}
		return nil
	case CodeReturned:
		if status.Reason == "" {
			return ErrMissingReason
		}
		if status.Detail != "" {
			return fmt.Errorf("returned status must not carry error detail")
		}
		return nil
	case CodeError:
		if status.Detail == "" {
			return ErrMissingDetail
		}
		if status.Reason != "" {
			return fmt.Errorf("error status must not carry a return reason")
		}
		return nil
	default:
		return fmt.Errorf("unknown status code %q", status.Code)
	}
}

// Label returns the short human-readable form shown in the status
// column.
func (status Status) Label() string {
	switch status.Code {
	case CodePending:
		return "Pending dispatch"
	case CodeCompleted:
		return "Completed"
	case CodeVoid:
		return "Void"
	case CodeReturned:
		return "Returned"
	case CodeError:
		return "Error"
	default:
		return string(status.Code)
	}
}

// transitions maps each status code to the codes reachable from it.
// Terminal codes map to nil.
var transitions = map[Code][]Code{
	CodePending:   {CodeCompleted, CodeVoid, CodeReturned, CodeError},
	CodeReturned:  {CodePending, CodeCompleted, CodeVoid},
	CodeError:     {CodePending, CodeCompleted, CodeVoid},
	CodeCompleted: nil,
	CodeVoid:      nil,
}

// CanTransition reports whether an order may move from one status code
// to another. A same-code transition is always permitted so callers can
// refresh companion text without special-casing.
func CanTransition(from, to Code) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

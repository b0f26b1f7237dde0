// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil holds small helpers shared across test packages.
package testutil

import (
	"testing"
	"time"
)

// RequireReceive receives a value from the channel or fails the test
// after the timeout. The description names what was expected, for the
// failure message.
func RequireReceive[T any](t *testing.T, ch <-chan T, timeout time.Duration, description string) T {
	t.Helper()
	select {
	case value := <-ch:
		return value
	case <-time.After(timeout):
		t.Fatalf("timed out after %v waiting for %s", timeout, description)
		panic("unreachable")
	}
}

// RequireNoReceive fails the test if the channel yields a value within
// the window. Used to assert that an event was deliberately not
// published.
func RequireNoReceive[T any](t *testing.T, ch <-chan T, window time.Duration, description string) {
	t.Helper()
	select {
	case value := <-ch:
		t.Fatalf("unexpected %s: received %v", description, value)
	case <-time.After(window):
	}
}

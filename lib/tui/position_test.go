// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "testing"

func TestMenuPositionBelowRightAligned(t *testing.T) {
	// Anchor cell at (40, 10), 12 wide, 1 tall; 20x8 menu on a
	// 120x40 screen. The menu opens below the anchor with its right
	// edge flush with the anchor's right edge.
	anchor := Rect{X: 40, Y: 10, Width: 12, Height: 1}
	x, y := MenuPosition(anchor, 20, 8, 120, 40)
	if x != 32 {
		t.Errorf("x = %d, want 32", x)
	}
	if y != 11 {
		t.Errorf("y = %d, want 11", y)
	}
}

func TestMenuPositionFlipsAboveWhenNoRoomBelow(t *testing.T) {
	anchor := Rect{X: 40, Y: 38, Width: 12, Height: 1}
	_, y := MenuPosition(anchor, 20, 8, 120, 40)
	if y != 30 {
		t.Errorf("y = %d, want 30 (above the anchor)", y)
	}
}

func TestMenuPositionClampsToScreenEdges(t *testing.T) {
	// Anchor near the left edge: right-alignment would push x
	// negative.
	anchor := Rect{X: 2, Y: 5, Width: 4, Height: 1}
	x, y := MenuPosition(anchor, 20, 8, 120, 40)
	if x != 0 {
		t.Errorf("x = %d, want 0", x)
	}
	if y != 6 {
		t.Errorf("y = %d, want 6", y)
	}

	// Menu taller than the screen: clamps to the top.
	x, y = MenuPosition(anchor, 20, 60, 120, 40)
	if y != 0 {
		t.Errorf("oversized menu y = %d, want 0", y)
	}
	if x != 0 {
		t.Errorf("oversized menu x = %d, want 0", x)
	}
}

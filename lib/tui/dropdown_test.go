// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "testing"

func testMenu() DropdownOverlay {
	return DropdownOverlay{
		Options: []DropdownOption{
			{Label: "Copy order", Value: "copy"},
			{Label: "Complete", Value: "complete", Disabled: true},
			{Label: "Void", Value: "void"},
		},
		AnchorX: 10,
		AnchorY: 5,
		OrderID: 7,
	}
}

func TestDropdownNavigationSkipsDisabled(t *testing.T) {
	menu := testMenu()
	menu.MoveDown()
	if menu.Selected().Value != "void" {
		t.Errorf("MoveDown landed on %q, want void", menu.Selected().Value)
	}
	menu.MoveDown()
	if menu.Selected().Value != "copy" {
		t.Errorf("wrap-around landed on %q, want copy", menu.Selected().Value)
	}
	menu.MoveUp()
	if menu.Selected().Value != "void" {
		t.Errorf("MoveUp landed on %q, want void", menu.Selected().Value)
	}
}

func TestDropdownHitTesting(t *testing.T) {
	menu := testMenu()
	width := menu.Width()

	if !menu.Contains(10, 5) {
		t.Error("top-left corner should be inside")
	}
	if !menu.Contains(10+width-1, 7) {
		t.Error("bottom-right corner should be inside")
	}
	if menu.Contains(10+width, 5) {
		t.Error("one column past the right edge should be outside")
	}
	if menu.Contains(10, 8) {
		t.Error("one row below should be outside")
	}

	if got := menu.OptionAtY(6); got != 1 {
		t.Errorf("OptionAtY(6) = %d, want 1", got)
	}
	if got := menu.OptionAtY(9); got != -1 {
		t.Errorf("OptionAtY(9) = %d, want -1", got)
	}
}

func TestDropdownRenderUniformWidth(t *testing.T) {
	menu := testMenu()
	lines := menu.Render(DefaultTheme)
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, want 3", len(lines))
	}
}

// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "testing"

func TestFuzzyMatchSubstring(t *testing.T) {
	result := FuzzyMatch("Water heater install", []rune("heater"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for substring match")
	}
	if len(result.Positions) == 0 {
		t.Fatal("expected non-empty match positions")
	}
}

func TestFuzzyMatchNonContiguous(t *testing.T) {
	// "whi" should match scattered characters of the text.
	result := FuzzyMatch("water heater install", []rune("whi"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for non-contiguous match")
	}
}

func TestFuzzyMatchCaseInsensitive(t *testing.T) {
	result := FuzzyMatch("CHAOYANG DISTRICT", []rune("chaoyang"), nil)
	if result.Score <= 0 {
		t.Fatalf("expected case-insensitive match, got score=%d", result.Score)
	}
}

func TestFuzzyMatchNoMatch(t *testing.T) {
	result := FuzzyMatch("Water heater install", []rune("xyzq"), nil)
	if result.Score != 0 {
		t.Errorf("expected zero score, got %d", result.Score)
	}
	if len(result.Positions) != 0 {
		t.Errorf("expected empty positions, got %v", result.Positions)
	}
}

func TestFuzzyMatchEmptyPattern(t *testing.T) {
	result := FuzzyMatch("anything", nil, nil)
	if result.Score != 0 {
		t.Errorf("expected zero score for empty pattern, got %d", result.Score)
	}
}

func TestFuzzyMatchWithSlab(t *testing.T) {
	slab := MakeSlab()
	for range 3 {
		result := FuzzyMatch("Drain cleaning", []rune("drain"), slab)
		if result.Score <= 0 {
			t.Fatal("slab reuse broke matching")
		}
	}
}

// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestSpliceOverlayReplacesRegion(t *testing.T) {
	view := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
	}, "\n")
	spliced := SpliceOverlay(view, []string{"XXX"}, 3, 1)
	lines := strings.Split(spliced, "\n")
	if lines[0] != "aaaaaaaaaa" || lines[2] != "cccccccccc" {
		t.Error("lines outside the overlay region changed")
	}
	middle := ansi.Strip(lines[1])
	if middle != "bbbXXXbbbb" {
		t.Errorf("overlay line = %q, want bbbXXXbbbb", middle)
	}
}

func TestSpliceOverlayOutOfRangeLines(t *testing.T) {
	view := "only line"
	spliced := SpliceOverlay(view, []string{"a", "b", "c"}, 0, -1)
	lines := strings.Split(spliced, "\n")
	if len(lines) != 1 {
		t.Fatalf("splice changed line count to %d", len(lines))
	}
	if ansi.Strip(lines[0]) != "b"+"only line"[1:] {
		t.Errorf("line 0 = %q", ansi.Strip(lines[0]))
	}
}

func TestWrapText(t *testing.T) {
	lines := WrapText("customer prefers an early morning visit", 12)
	for _, line := range lines {
		if ansi.StringWidth(line) > 12 {
			t.Errorf("line %q exceeds width 12", line)
		}
	}
	joined := strings.Join(lines, " ")
	if joined != "customer prefers an early morning visit" {
		t.Errorf("wrap lost content: %q", joined)
	}
}

func TestWrapTextHardSplitsLongWords(t *testing.T) {
	lines := WrapText("abcdefghijklmnop", 5)
	if len(lines) < 3 {
		t.Fatalf("expected hard split into >= 3 lines, got %v", lines)
	}
	if strings.Join(lines, "") != "abcdefghijklmnop" {
		t.Errorf("hard split lost characters: %v", lines)
	}
}

func TestWrapTextPreservesParagraphBreaks(t *testing.T) {
	lines := WrapText("first\n\nsecond", 20)
	want := []string{"first", "", "second"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// FuzzyResult is the outcome of matching a pattern against one text.
// Score is 0 when the pattern does not match; Positions holds the
// rune indices of matched characters for highlighting.
type FuzzyResult struct {
	Score     int
	Positions []int
}

// FuzzyMatch runs fzf's V2 fuzzy algorithm against the text,
// case-insensitively. Callers doing many matches in a loop should
// allocate one slab with [MakeSlab] and reuse it; a nil slab is
// accepted for one-off matches.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{}
	}

	// fzf expects a lowercase pattern when matching case-insensitively.
	lowered := []rune(strings.ToLower(string(pattern)))
	chars := util.ToChars([]byte(text))

	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, lowered, true, slab)
	if result.Score <= 0 {
		return FuzzyResult{}
	}
	matched := FuzzyResult{Score: result.Score}
	if positions != nil {
		matched.Positions = *positions
	}
	return matched
}

// Slab sizes copied from fzf's defaults.
const (
	slabSize16 = 100 * 1024
	slabSize32 = 2048
)

// MakeSlab allocates a reusable scratch slab for [FuzzyMatch].
func MakeSlab() *util.Slab {
	return util.MakeSlab(slabSize16, slabSize32)
}

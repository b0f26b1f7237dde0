// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

// Rect is a screen-coordinate rectangle. X and Y name the top-left
// corner.
type Rect struct {
	X, Y, Width, Height int
}

// Bottom returns the first row below the rectangle.
func (rect Rect) Bottom() int { return rect.Y + rect.Height }

// Right returns the first column past the rectangle.
func (rect Rect) Right() int { return rect.X + rect.Width }

// MenuPosition computes where a floating menu opens relative to its
// anchor: directly below the anchor's bottom edge, right-aligned with
// the anchor's right edge. The result is clamped so the whole menu
// stays on screen; when there is no room below, the menu flips above
// the anchor.
func MenuPosition(anchor Rect, menuWidth, menuHeight, screenWidth, screenHeight int) (x, y int) {
	x = anchor.Right() - menuWidth
	y = anchor.Bottom()

	if y+menuHeight > screenHeight {
		flipped := anchor.Y - menuHeight
		if flipped >= 0 {
			y = flipped
		} else {
			y = screenHeight - menuHeight
		}
	}
	if x+menuWidth > screenWidth {
		x = screenWidth - menuWidth
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

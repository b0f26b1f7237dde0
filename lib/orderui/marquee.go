// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fieldops/orderdesk/lib/tui"
)

// marqueeRotateInterval is how long each announcement stays on screen
// before the marquee advances to the next one.
const marqueeRotateInterval = 6 * time.Second

// Marquee rotates through dispatcher announcements on a single line
// above the table. An empty message list renders nothing and stops
// the rotation timer.
type Marquee struct {
	Messages []string

	// Paused freezes the rotation on the current announcement. The
	// timer keeps ticking so unpausing needs no restart.
	Paused bool

	index int
}

// Current returns the announcement currently shown, or "" when there
// are none.
func (marquee *Marquee) Current() string {
	if len(marquee.Messages) == 0 {
		return ""
	}
	return marquee.Messages[marquee.index%len(marquee.Messages)]
}

// Advance steps to the next announcement. A paused marquee stays
// where it is.
func (marquee *Marquee) Advance() {
	if marquee.Paused || len(marquee.Messages) == 0 {
		return
	}
	marquee.index = (marquee.index + 1) % len(marquee.Messages)
}

// View renders the marquee line.
func (marquee *Marquee) View(theme tui.Theme, width int) string {
	message := marquee.Current()
	if message == "" {
		return lipgloss.NewStyle().Width(width).Render("")
	}
	color := theme.StatusPending
	if marquee.Paused {
		color = theme.FaintText
	}
	style := lipgloss.NewStyle().
		Foreground(color).
		Width(width).
		MaxWidth(width)
	return style.Render(" ◆ " + message)
}

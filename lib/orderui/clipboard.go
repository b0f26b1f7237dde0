// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderui

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

// Clipboard is the boundary for copying text out of the dashboard.
// The reminder flow depends on its error return: an order is marked
// reminded only after Write reports success.
type Clipboard interface {
	Write(text string) error
}

// OSC52Clipboard writes to the system clipboard via the OSC 52
// terminal escape sequence. It writes directly to /dev/tty to bypass
// bubbletea's managed output; OSC 52 has no screen effect, so it is
// safe to emit alongside the TUI renderer.
//
// Uses BEL (\x07) as the OSC terminator rather than ST (\x1b\\)
// because BEL is a single byte that survives intact through layered
// terminal environments (SSH, tmux, screen).
//
// When tmux is detected (via $TMUX or $TERM prefix), the sequence is
// sent both via tmux DCS passthrough (for allow-passthrough
// configurations) and directly (for set-clipboard configurations).
// Duplicate clipboard sets are harmless.
type OSC52Clipboard struct{}

// Write implements [Clipboard].
func (OSC52Clipboard) Write(text string) error {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("opening terminal for clipboard write: %w", err)
	}
	defer tty.Close()

	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	osc52 := fmt.Sprintf("\x1b]52;c;%s\x07", encoded)

	inTmux := os.Getenv("TMUX") != "" ||
		strings.HasPrefix(os.Getenv("TERM"), "tmux") ||
		strings.HasPrefix(os.Getenv("TERM"), "screen")

	if inTmux {
		// tmux DCS passthrough. Requires tmux allow-passthrough on.
		if _, err := fmt.Fprintf(tty, "\x1bPtmux;\x1b%s\x1b\\", osc52); err != nil {
			return fmt.Errorf("writing clipboard sequence: %w", err)
		}
	}

	if _, err := tty.WriteString(osc52); err != nil {
		return fmt.Errorf("writing clipboard sequence: %w", err)
	}
	return nil
}

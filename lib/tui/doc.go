// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui holds the terminal UI building blocks the dashboard is
// assembled from: the color theme, floating dropdown menus and their
// placement math, ANSI-aware overlay splicing, a scrollbar, fuzzy
// matching, and the heat tracker that makes recently mutated rows
// glow.
//
// Everything here is domain-light: the only coupling to the order
// model is the per-status color mapping in [Theme]. The bubbletea
// model in lib/orderui composes these pieces.
package tui

// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

// orderdesk is an interactive terminal dashboard for dispatching
// home-service orders. It shows the order book as a paged table with
// pending orders surfaced first, and supports the dispatcher workflow
// directly from the keyboard: completing, voiding, flagging errors,
// and copying customer reminders to the clipboard.
//
// The dashboard opens on a deterministic generated data set, so the
// same seed always produces the same order book. Configuration comes
// from a YAML file (--config or ORDERDESK_CONFIG); flags override
// individual values.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/fieldops/orderdesk/lib/clock"
	"github.com/fieldops/orderdesk/lib/config"
	"github.com/fieldops/orderdesk/lib/mockdata"
	"github.com/fieldops/orderdesk/lib/orderui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var seed int64
	var count int
	var pageSize int
	var logOutput string
	var noMouse bool

	flagSet := pflag.NewFlagSet("orderdesk", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to orderdesk.yaml (overrides ORDERDESK_CONFIG)")
	flagSet.Int64Var(&seed, "seed", 0, "demo data seed (overrides config)")
	flagSet.IntVar(&count, "count", 0, "number of demo orders to generate (overrides config)")
	flagSet.IntVar(&pageSize, "page-size", 0, "orders per page (overrides config)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolVar(&noMouse, "no-mouse", false, "disable mouse tracking")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if flagSet.Changed("seed") {
		cfg.Data.Seed = seed
	}
	if flagSet.Changed("count") {
		cfg.Data.Count = count
	}
	if flagSet.Changed("page-size") {
		cfg.UI.PageSize = pageSize
	}
	if flagSet.Changed("log-output") {
		cfg.Log.Output = logOutput
	}
	if noMouse {
		cfg.UI.MouseEnabled = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLogger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLogger()

	clk := clock.Real()
	index, err := mockdata.Fill(clk, cfg.Data.Seed, cfg.Data.Count)
	if err != nil {
		return fmt.Errorf("generating demo orders: %w", err)
	}
	logger.Info("order book generated",
		"seed", cfg.Data.Seed, "count", cfg.Data.Count)

	source := orderui.NewStoreSource(index, clk)
	model := orderui.NewModel(source, cfg.UI.PageSize)
	model.SetAnnouncements([]string{
		"Confirm the completion amount with the customer before settling",
		"Remind pending orders older than a day",
		"Void orders need a written reason for the weekly review",
	})

	options := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.MouseEnabled {
		options = append(options, tea.WithMouseAllMotion())
	}
	program := tea.NewProgram(model, options...)
	if _, err := program.Run(); err != nil {
		logger.Error("dashboard exited", "error", err)
		return err
	}
	return nil
}

// loadConfig resolves the configuration: the --config flag wins, then
// ORDERDESK_CONFIG, then built-in defaults.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	if os.Getenv(config.EnvVar) != "" {
		return config.Load()
	}
	return config.Default(), nil
}

// newLogger builds the JSON file logger. The terminal belongs to the
// UI, so without a log file everything is discarded.
func newLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	if cfg.Output == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", cfg.Output, err)
	}
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return slog.New(handler), func() { file.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `orderdesk — interactive terminal dashboard for service orders.

Opens a paged order table with pending orders first. Navigate with
j/k and h/l, filter with /, and open the per-row action menu with
enter. The r key copies a customer reminder for the selected pending
order to the clipboard and marks it reminded.

Usage:
  orderdesk [flags]

Flags:
%s`, flagSet.FlagUsages())
}

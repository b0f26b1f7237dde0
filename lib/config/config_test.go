// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orderdesk.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, "ui:\n  page_size: 50\ndata:\n  seed: 99\n")
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.UI.PageSize != 50 {
		t.Errorf("PageSize = %d, want 50", cfg.UI.PageSize)
	}
	if cfg.Data.Seed != 99 {
		t.Errorf("Seed = %d, want 99", cfg.Data.Seed)
	}
	// Untouched fields keep their defaults.
	if cfg.Data.Count != 128 {
		t.Errorf("Count = %d, want default 128", cfg.Data.Count)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Level = %q, want default info", cfg.Log.Level)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("loading a missing file should fail")
	}
}

func TestLoadFileRejectsInvalidValues(t *testing.T) {
	for _, content := range []string{
		"ui:\n  page_size: 0\n",
		"log:\n  level: loud\n",
		"data:\n  count: -1\n",
	} {
		path := writeConfig(t, content)
		if _, err := LoadFile(path); err == nil {
			t.Errorf("config %q should fail validation", content)
		}
	}
}

func TestLoadRequiresEnvVar(t *testing.T) {
	t.Setenv(EnvVar, "")
	if _, err := Load(); err == nil {
		t.Error("Load without ORDERDESK_CONFIG should fail")
	}

	path := writeConfig(t, "ui:\n  page_size: 10\n")
	t.Setenv(EnvVar, path)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.PageSize != 10 {
		t.Errorf("PageSize = %d, want 10", cfg.UI.PageSize)
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

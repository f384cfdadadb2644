// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package buildenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// clearEnv unsets every variable the package reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvOutDir, EnvConfig,
		"EXPANDER_OUT_DIR", "EXPANDER_DRY", "EXPANDER_FORMAT",
		"EXPANDER_EDITION", "EXPANDER_VERBOSE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	want := Settings{Format: "none"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	if dir, err := OutDir(); err != nil || dir != "" {
		t.Errorf("OutDir() = %q, %v; want empty with no environment", dir, err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("OUT_DIR", "/tmp/build/out")
	t.Setenv("EXPANDER_DRY", "true")
	t.Setenv("EXPANDER_FORMAT", "pretty")
	t.Setenv("EXPANDER_EDITION", "1.22")
	t.Setenv("EXPANDER_VERBOSE", "1")

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	want := Settings{
		OutDir:  "/tmp/build/out",
		Dry:     true,
		Format:  "pretty",
		Edition: "1.22",
		Verbose: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	dir, err := OutDir()
	if err != nil || dir != "/tmp/build/out" {
		t.Errorf("OutDir() = %q, %v; want /tmp/build/out", dir, err)
	}

	f, ed, err := got.Formatter()
	if err != nil {
		t.Fatalf("Formatter() unexpected error: %v", err)
	}
	if f.Name() != "pretty" || ed != "go1.22" {
		t.Errorf("Formatter() = %s, %s; want pretty, go1.22", f.Name(), ed)
	}
}

func TestPrefixedOutDir(t *testing.T) {
	clearEnv(t)
	t.Setenv("EXPANDER_OUT_DIR", "/tmp/prefixed")

	dir, err := OutDir()
	if err != nil || dir != "/tmp/prefixed" {
		t.Errorf("OutDir() = %q, %v; want /tmp/prefixed", dir, err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "expander.toml")
	content := `out_dir = "/tmp/from-file"
format = "pretty"
edition = "go1.21"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvConfig, path)
	t.Setenv("EXPANDER_DRY", "true")

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	want := Settings{
		OutDir:  "/tmp/from-file",
		Dry:     true,
		Format:  "pretty",
		Edition: "go1.21",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "missing.toml"))

	if _, err := Load(); err == nil {
		t.Error("Load() expected error for missing config file, got nil")
	}
	if _, err := OutDir(); err == nil {
		t.Error("OutDir() expected error for missing config file, got nil")
	}
}

func TestOutDirFromConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "expander.toml")
	if err := os.WriteFile(path, []byte(`out_dir = "/tmp/gen"`+"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvConfig, path)

	dir, err := OutDir()
	if err != nil {
		t.Fatalf("OutDir() unexpected error: %v", err)
	}
	if dir != "/tmp/gen" {
		t.Errorf("OutDir() = %q, want /tmp/gen", dir)
	}

	t.Setenv(EnvOutDir, "/tmp/from-env")
	if dir, _ := OutDir(); dir != "/tmp/from-env" {
		t.Errorf("OutDir() = %q, want the environment to win over the file", dir)
	}
}

func TestSettingsFormatterErrors(t *testing.T) {
	if _, _, err := (Settings{Format: "rustfmt"}).Formatter(); err == nil {
		t.Error("Formatter() expected error for unknown formatter, got nil")
	}
	if _, _, err := (Settings{Format: "pretty", Edition: "2021"}).Formatter(); err == nil {
		t.Error("Formatter() expected error for invalid edition, got nil")
	}
}

// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package formatter

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// upperFormatter is a test implementation of Formatter.
type upperFormatter struct {
	name string
}

func (u upperFormatter) Name() string { return u.name }

func (u upperFormatter) Format(src []byte, _ Edition) ([]byte, error) {
	return bytes.ToUpper(src), nil
}

func TestRegistry(t *testing.T) {
	// Reset registry before and after test
	Reset()
	defer Reset()

	t.Run("Builtins", func(t *testing.T) {
		if diff := cmp.Diff([]string{"none", "pretty"}, List()); diff != "" {
			t.Errorf("List() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Register and Get", func(t *testing.T) {
		Register(upperFormatter{name: "upper"})

		got, ok := Get("upper")
		if !ok {
			t.Fatal("expected to find registered formatter")
		}
		out, _ := got.Format([]byte("abc"), EditionUnspecified)
		if string(out) != "ABC" {
			t.Errorf("got %q, want %q", out, "ABC")
		}
	})

	t.Run("Get nonexistent", func(t *testing.T) {
		_, ok := Get("nonexistent")
		if ok {
			t.Error("expected not to find nonexistent formatter")
		}
	})

	t.Run("Lookup", func(t *testing.T) {
		f, err := Lookup("")
		if err != nil {
			t.Fatalf("Lookup(\"\") unexpected error: %v", err)
		}
		if f.Name() != "none" {
			t.Errorf("Lookup(\"\") = %q, want none", f.Name())
		}

		if _, err := Lookup("rustfmt"); err == nil {
			t.Error("Lookup(\"rustfmt\") expected error, got nil")
		}
	})

	t.Run("Reset keeps builtins", func(t *testing.T) {
		Reset()
		if _, ok := Get("upper"); ok {
			t.Error("Reset() kept a registered formatter")
		}
		if _, ok := Get("pretty"); !ok {
			t.Error("Reset() dropped the pretty formatter")
		}
	})

	t.Run("Duplicate panics", func(t *testing.T) {
		Reset()

		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic on duplicate registration")
			}
		}()
		Register(upperFormatter{name: "none"})
	})
}

// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package formatter

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

var (
	mu       sync.RWMutex
	registry = builtins()
)

func builtins() map[string]Formatter {
	return map[string]Formatter{
		Identity{}.Name(): Identity{},
		Pretty{}.Name():   Pretty{},
	}
}

// Register adds a formatter to the registry.
func Register(f Formatter) {
	mu.Lock()
	defer mu.Unlock()
	name := f.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("formatter %q already registered", name))
	}
	registry[name] = f
}

// Get returns a formatter by name.
func Get(name string) (Formatter, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// Lookup is like [Get] but returns an error naming the known formatters.
// An empty name selects [Identity].
func Lookup(name string) (Formatter, error) {
	if name == "" {
		return Identity{}, nil
	}
	if f, ok := Get(name); ok {
		return f, nil
	}
	return nil, errors.WithHintf(
		errors.Newf("unknown formatter %q", name),
		"known formatters: %s", strings.Join(List(), ", "))
}

// List returns all registered formatter names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Reset restores the registry to the built-in formatters (for testing).
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = builtins()
}

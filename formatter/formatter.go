// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package formatter defines the pluggable source formatting step applied to
// generated code before it is written.
//
// Two formatters are built in and registered by name: [Identity] ("none"),
// which keeps the text as produced, and [Pretty] ("pretty"), which parses and
// reprints Go source. A formatter that cannot parse its input returns a
// [*ParseError]; callers decide whether that is fatal.
package formatter

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Formatter transforms generated source text.
type Formatter interface {
	// Name is the registry key (e.g., "none", "pretty").
	Name() string

	// Format returns the formatted form of src for the given edition.
	// Implementations must not modify src.
	Format(src []byte, ed Edition) ([]byte, error)
}

// ErrParse matches every [*ParseError].
var ErrParse = errors.New("formatter: parse failed")

// ParseError reports that a formatter could not parse its input.
// Original holds the unformatted text so a caller can fall back to it.
type ParseError struct {
	Formatter string
	Edition   Edition
	Original  []byte
	Err       error
}

func (e *ParseError) Error() string {
	if e.Edition != EditionUnspecified {
		return fmt.Sprintf("%s formatter: parse for %s: %v", e.Formatter, e.Edition, e.Err)
	}
	return fmt.Sprintf("%s formatter: parse: %v", e.Formatter, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrParse) hold for any ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

func newParseError(name string, ed Edition, src []byte, err error) *ParseError {
	return &ParseError{
		Formatter: name,
		Edition:   ed,
		Original:  append([]byte(nil), src...),
		Err:       err,
	}
}

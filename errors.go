// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package expander

import (
	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/expander/formatter"
)

var (
	// ErrMissingFileName is returned when no file name was configured.
	ErrMissingFileName = errors.New("expander: missing file name")

	// ErrInvalidFileName is returned when the file name is absolute or
	// contains a ".." segment.
	ErrInvalidFileName = errors.New("expander: invalid file name")

	// ErrNoOutDir is returned by WriteToOutDir when neither an override nor
	// the build environment provides an output directory.
	ErrNoOutDir = errors.New("expander: no output directory")

	// ErrIO marks failures to create directories or write the file.
	// The underlying cause stays visible to errors.Is (e.g. fs.ErrPermission).
	ErrIO = errors.New("expander: i/o failure")

	// ErrDigestMismatch is returned by Verify when a file's body no longer
	// matches its embedded digest.
	ErrDigestMismatch = errors.New("expander: digest mismatch")

	// ErrNoDigest is returned by Verify for files without a digest comment.
	ErrNoDigest = errors.New("expander: no digest comment")
)

// ErrParse matches any formatting parse failure.
var ErrParse = formatter.ErrParse

// ParseError is returned when the configured formatter cannot parse the
// generated content. Original holds the unformatted content.
type ParseError = formatter.ParseError

// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package digest hashes expansion bodies and renders the comment header
// that precedes them in the written file.
//
// An artifact has the layout:
//
//	// <comment line>          (zero or more)
//	// expander-digest: blake3:<hex>
//	<body>
//
// The digest covers the body only, so it can be recomputed from the bytes
// that follow the digest line.
package digest

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/cockroachdb/errors"
	"lukechampine.com/blake3"
)

const (
	// CommentMarker starts every header line.
	CommentMarker = "//"

	// Algorithm names the hash in the digest comment.
	Algorithm = "blake3"

	// Tag identifies the digest comment line.
	Tag = "expander-digest:"
)

var (
	// ErrNoDigest is returned when an artifact carries no digest line.
	ErrNoDigest = errors.New("no digest comment")

	// ErrMismatch is returned when the embedded digest does not match the body.
	ErrMismatch = errors.New("digest mismatch")
)

// Sum is a BLAKE3-256 digest.
type Sum [32]byte

// Of hashes b.
func Of(b []byte) Sum {
	return Sum(blake3.Sum256(b))
}

// String returns the digest as "blake3:<hex>".
func (s Sum) String() string {
	return Algorithm + ":" + hex.EncodeToString(s[:])
}

// IsZero reports whether s is the zero digest.
func (s Sum) IsZero() bool {
	return s == Sum{}
}

// ParseSum parses the form produced by [Sum.String].
func ParseSum(text string) (Sum, error) {
	var s Sum
	hexPart, ok := strings.CutPrefix(text, Algorithm+":")
	if !ok {
		return s, errors.Newf("unsupported digest %q", text)
	}
	raw, err := hex.DecodeString(hexPart)
	if err != nil {
		return s, errors.Wrapf(err, "decode digest %q", text)
	}
	if len(raw) != len(s) {
		return s, errors.Newf("digest %q has %d bytes, want %d", text, len(raw), len(s))
	}
	copy(s[:], raw)
	return s, nil
}

// Line returns the digest comment line for s, including the newline.
func Line(s Sum) string {
	return CommentMarker + " " + Tag + " " + s.String() + "\n"
}

// Header renders comment as a block of line comments.
// Empty comment lines become a bare marker; "\r\n" endings are normalized.
// A line that would read as a digest line is prefixed with a backslash so
// that [Split] only finds the line written by [Compose].
func Header(comment string) string {
	if comment == "" {
		return ""
	}
	comment = strings.ReplaceAll(comment, "\r\n", "\n")
	comment = strings.TrimSuffix(comment, "\n")

	var buf strings.Builder
	for line := range strings.SplitSeq(comment, "\n") {
		buf.WriteString(CommentMarker)
		if line != "" {
			buf.WriteByte(' ')
			if strings.HasPrefix(strings.TrimSpace(line), Tag) {
				buf.WriteByte('\\')
			}
			buf.WriteString(line)
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}

// Compose builds the artifact bytes and returns them with the body digest.
func Compose(comment string, withDigest bool, body []byte) ([]byte, Sum) {
	sum := Of(body)

	var buf bytes.Buffer
	buf.WriteString(Header(comment))
	if withDigest {
		buf.WriteString(Line(sum))
	}
	buf.Write(body)
	return buf.Bytes(), sum
}

// Split locates the first digest line in artifact and returns the embedded
// digest together with the bytes after it.
func Split(artifact []byte) (Sum, []byte, error) {
	rest := artifact
	for len(rest) > 0 {
		line, tail, found := bytes.Cut(rest, []byte("\n"))
		text := strings.TrimSpace(string(line))
		if !strings.HasPrefix(text, CommentMarker) {
			break
		}
		if value, ok := strings.CutPrefix(strings.TrimSpace(strings.TrimPrefix(text, CommentMarker)), Tag); ok {
			sum, err := ParseSum(strings.TrimSpace(value))
			if err != nil {
				return Sum{}, nil, err
			}
			if !found {
				return sum, nil, nil
			}
			return sum, tail, nil
		}
		if !found {
			break
		}
		rest = tail
	}
	return Sum{}, nil, ErrNoDigest
}

// Verify checks that the digest embedded in artifact matches its body.
func Verify(artifact []byte) error {
	want, body, err := Split(artifact)
	if err != nil {
		return err
	}
	if got := Of(body); got != want {
		return errors.Wrapf(ErrMismatch, "embedded %s, computed %s", want, got)
	}
	return nil
}

// Equal reports whether existing and artifact hash to the same digest.
func Equal(existing, artifact []byte) bool {
	return Of(existing) == Of(artifact)
}

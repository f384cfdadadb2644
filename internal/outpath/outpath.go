// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package outpath resolves expansion file names against an output directory.
package outpath

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrEmpty is returned for an empty file name.
	ErrEmpty = errors.New("file name is empty")

	// ErrAbsolute is returned when the file name is an absolute path.
	ErrAbsolute = errors.New("file name is absolute")

	// ErrTraversal is returned when the file name contains a ".." segment.
	ErrTraversal = errors.New("file name escapes the output directory")
)

// ValidateName checks that name is a relative path that stays inside
// whatever directory it is later joined with. Both '/' and '\' count as
// separators so a name is judged the same way on every platform.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmpty
	}
	if isAbs(name) {
		return errors.Wrapf(ErrAbsolute, "%q", name)
	}
	for _, seg := range strings.FieldsFunc(name, isSeparator) {
		if seg == ".." {
			return errors.Wrapf(ErrTraversal, "%q", name)
		}
	}
	return nil
}

// Resolve returns the absolute path of name inside dir.
// It performs no filesystem access beyond what filepath.Abs needs to
// read the working directory.
func Resolve(dir, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	base, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "resolve output directory %q", dir)
	}

	path := filepath.Join(base, filepath.FromSlash(name))

	// Join cleans the result; make sure cleaning did not climb out of base.
	rel, err := filepath.Rel(base, path)
	if err == nil && rel == "." {
		return "", errors.Wrapf(ErrEmpty, "%q names no file", name)
	}
	if err != nil || !filepath.IsLocal(rel) {
		return "", errors.Wrapf(ErrTraversal, "%q", name)
	}
	return path, nil
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

func isAbs(name string) bool {
	if filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return true
	}
	return isSeparator(rune(name[0]))
}

// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package writer persists expansion artifacts.
package writer

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Write creates the parent directories of path and replaces the file's
// contents with data. The file is synced and closed on every return path;
// a failed close is reported even when the write itself succeeded.
func Write(path string, data []byte) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return errors.Wrapf(err, "create output directory for %s", path)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.CombineErrors(err, errors.Wrapf(cerr, "close %s", path))
		}
	}()

	if _, err := f.Write(data); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	if err := f.Sync(); err != nil {
		return errors.Wrapf(err, "sync %s", path)
	}
	return nil
}

// ReadExisting returns the current contents of path. The boolean is false
// when the file is missing or cannot be read; callers treat that as "no
// match" and go on to write.
func ReadExisting(path string) ([]byte, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return data, true
}

// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package expander

import (
	"os"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/expander/internal/digest"
)

// Verify checks that the file at path still matches its embedded digest,
// i.e. that it was not edited by hand since it was written.
func Verify(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "read %s", path), ErrIO)
	}

	err = digest.Verify(data)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, digest.ErrNoDigest):
		return errors.Wrapf(ErrNoDigest, "%s", path)
	case errors.Is(err, digest.ErrMismatch):
		return errors.Mark(errors.Wrapf(err, "%s", path), ErrDigestMismatch)
	default:
		return errors.Wrapf(err, "%s", path)
	}
}

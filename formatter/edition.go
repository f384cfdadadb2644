// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package formatter

import (
	"go/version"
	"strings"

	"github.com/cockroachdb/errors"
)

// Edition is the Go language version generated code is formatted and
// checked against, in "go1.N" form.
type Edition string

// EditionUnspecified leaves the language version unchecked.
const EditionUnspecified Edition = ""

// ParseEdition accepts "go1.21", "1.21" or "" and returns the canonical
// edition. Only Go 1 language versions are accepted.
func ParseEdition(s string) (Edition, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return EditionUnspecified, nil
	}
	if !strings.HasPrefix(s, "go") {
		s = "go" + s
	}
	if !version.IsValid(s) || version.Compare(s, "go2") >= 0 {
		return EditionUnspecified, errors.WithHint(
			errors.Newf("invalid edition %q", s),
			"use a Go language version such as go1.22")
	}
	return Edition(version.Lang(s)), nil
}

// String returns the edition, or "unspecified".
func (e Edition) String() string {
	if e == EditionUnspecified {
		return "unspecified"
	}
	return string(e)
}

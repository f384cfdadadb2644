// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package formatter

// Identity returns its input unchanged.
type Identity struct{}

// Name implements [Formatter].
func (Identity) Name() string { return "none" }

// Format implements [Formatter].
func (Identity) Format(src []byte, _ Edition) ([]byte, error) {
	return append([]byte(nil), src...), nil
}

// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package directive renders the textual inclusion that replaces generated
// code at the call site.
package directive

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Style selects the shape of the inclusion directive.
type Style int

const (
	// Macro renders include!("<path>");
	Macro Style = iota

	// Preprocessor renders #include "<path>"
	Preprocessor
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case Macro:
		return "macro"
	case Preprocessor:
		return "preprocessor"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Render returns the directive that includes path.
func Render(style Style, path string) []byte {
	switch style {
	case Preprocessor:
		return []byte("#include " + Quote(style, path) + "\n")
	default:
		return []byte("include!(" + Quote(style, path) + ");")
	}
}

// Quote returns path as a double-quoted string literal for style.
// Backslashes (Windows separators included) and quotes are escaped, control
// and other non-graphic characters use the style's escape syntax, and
// graphic non-ASCII runes are kept as they are. Invalid UTF-8 bytes are
// replaced with U+FFFD.
func Quote(style Style, path string) string {
	var b strings.Builder
	b.Grow(len(path) + 2)
	b.WriteByte('"')
	for i := 0; i < len(path); {
		r, size := utf8.DecodeRuneInString(path[i:])
		i += size
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			if style == Preprocessor {
				b.WriteString(`\000`)
			} else {
				b.WriteString(`\0`)
			}
		default:
			if unicode.IsGraphic(r) {
				b.WriteRune(r)
				continue
			}
			writeEscape(&b, style, r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// writeEscape writes r in the style's escape syntax. Preprocessor escapes
// are the UTF-8 bytes of r as three-digit octal, since a hex escape would
// absorb following hex digits of the path.
func writeEscape(b *strings.Builder, style Style, r rune) {
	if style == Preprocessor {
		var buf [utf8.UTFMax]byte
		for _, c := range buf[:utf8.EncodeRune(buf[:], r)] {
			fmt.Fprintf(b, `\%03o`, c)
		}
		return
	}
	fmt.Fprintf(b, `\u{%x}`, r)
}

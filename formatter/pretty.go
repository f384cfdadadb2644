// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package formatter

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/imports"
)

// Pretty parses Go source and prints it in canonical gofmt style.
//
// The input may be a complete file, a list of declarations, or a list of
// statements. Comments, doc comments and directives are carried through
// verbatim; import blocks are sorted but never added or removed.
//
// With an edition set, the printed source is also type-checked at that
// language version and any construct newer than the edition is reported
// as a parse failure.
type Pretty struct{}

// Name implements [Formatter].
func (Pretty) Name() string { return "pretty" }

// Format implements [Formatter].
func (p Pretty) Format(src []byte, ed Edition) ([]byte, error) {
	out, err := imports.Process("", src, &imports.Options{
		Fragment:   true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, newParseError(p.Name(), ed, src, err)
	}

	if ed != EditionUnspecified {
		if err := checkEdition(out, ed); err != nil {
			return nil, newParseError(p.Name(), ed, src, err)
		}
	}
	return out, nil
}

// checkEdition reports language features in src that need a newer Go
// version than ed. Other type errors (unresolved imports, undeclared
// names in fragments) are expected and ignored.
func checkEdition(src []byte, ed Edition) error {
	ed, err := ParseEdition(string(ed))
	if err != nil {
		return err
	}

	fset := token.NewFileSet()
	file, err := parseUnit(fset, src)
	if err != nil {
		return err
	}

	var (
		violations []string
		reported   bool
	)
	conf := types.Config{
		GoVersion: string(ed),
		Error: func(err error) {
			reported = true
			terr, ok := err.(types.Error)
			if ok && strings.Contains(terr.Msg, "requires go1") {
				violations = append(violations, fset.Position(terr.Pos).String()+": "+terr.Msg)
			}
		},
	}
	// Type errors go through conf.Error. An error that did not is a
	// configuration failure and the check never ran.
	if _, err := conf.Check("expansion", fset, []*ast.File{file}, nil); err != nil && !reported {
		return errors.Wrapf(err, "check edition %s", ed)
	}

	if len(violations) > 0 {
		return errors.Newf("%s", strings.Join(violations, "; "))
	}
	return nil
}

// parseUnit parses src as a file, a declaration list, or a statement list,
// mirroring what gofmt accepts.
func parseUnit(fset *token.FileSet, src []byte) (*ast.File, error) {
	file, err := parser.ParseFile(fset, "", src, parser.SkipObjectResolution)
	if err == nil {
		return file, nil
	}
	if !strings.Contains(err.Error(), "expected 'package'") {
		return nil, err
	}

	declSrc := "package p;" + string(src)
	if file, err := parser.ParseFile(fset, "", declSrc, parser.SkipObjectResolution); err == nil {
		return file, nil
	}

	stmtSrc := "package p; func _() {" + string(src) + "\n}"
	return parser.ParseFile(fset, "", stmtSrc, parser.SkipObjectResolution)
}

// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package expander writes generated source to a file in the build-output
// directory and returns an inclusion directive to splice in its place.
//
// A generator that would otherwise emit its code inline hands the code to
// an [Expander] instead:
//
//	res, err := expander.New("baz.go").
//		WithComment("This is generated code!").
//		Fmt("go1.22").
//		WriteToOutDir(generated)
//	if err != nil {
//		return err
//	}
//	emit(res.Tokens) // include!("/abs/out/baz.go");
//
// The written file starts with the comment, then a digest comment that
// lets tools detect hand edits, then the (optionally formatted) code. A
// file whose bytes would not change is left untouched.
//
// In dry mode nothing is written and Tokens is the original content.
package expander

import (
	"go.uber.org/zap"

	"github.com/albertocavalcante/expander/buildenv"
	"github.com/albertocavalcante/expander/formatter"
	"github.com/albertocavalcante/expander/internal/directive"
)

// DirectiveStyle selects the shape of the inclusion returned in place of
// the generated code.
type DirectiveStyle = directive.Style

// Directive styles for [Expander.WithDirective].
const (
	// MacroInclude renders include!("<path>");
	MacroInclude = directive.Macro

	// PreprocessorInclude renders #include "<path>"
	PreprocessorInclude = directive.Preprocessor
)

// Expander is the configuration of one expansion.
//
// It is a value type: every builder method returns a modified copy and
// leaves the receiver untouched.
type Expander struct {
	fileName   string
	comment    string
	formatter  formatter.Formatter
	edition    formatter.Edition
	tolerate   bool
	dry        bool
	outDir     string
	noDigest   bool
	alwaysSave bool
	style      directive.Style
	logger     *zap.Logger
	verbose    bool
}

// New returns an Expander that writes to fileName, a path relative to the
// output directory. Formatting is off and dry mode is disabled.
func New(fileName string) Expander {
	return Expander{
		fileName:  fileName,
		formatter: formatter.Identity{},
		style:     directive.Macro,
	}
}

// NewFromEnv returns an Expander configured from the build environment
// (see package buildenv): output directory, dry flag, formatter, edition
// and verbosity.
func NewFromEnv(fileName string) (Expander, error) {
	s, err := buildenv.Load()
	if err != nil {
		return Expander{}, err
	}
	f, ed, err := s.Formatter()
	if err != nil {
		return Expander{}, err
	}
	return New(fileName).
		WithOutDir(s.OutDir).
		WithFormatter(f, ed).
		Dry(s.Dry).
		Verbose(s.Verbose), nil
}

// WithComment sets the comment written at the top of the file.
// Each line becomes a line comment; an empty string removes the header.
func (e Expander) WithComment(comment string) Expander {
	e.comment = comment
	return e
}

// WithFormatter selects the formatter and the edition passed to it.
// A nil formatter selects [formatter.Identity]. The edition may omit the
// "go" prefix; it is normalized when the expansion runs.
func (e Expander) WithFormatter(f formatter.Formatter, ed formatter.Edition) Expander {
	if f == nil {
		f = formatter.Identity{}
	}
	e.formatter = f
	e.edition = ed
	return e
}

// Fmt enables pretty-printing for the given edition.
func (e Expander) Fmt(ed formatter.Edition) Expander {
	return e.WithFormatter(formatter.Pretty{}, ed)
}

// TolerateFormatErrors opts into writing the unformatted content when the
// formatter cannot parse it. The parse error is logged and reported in
// [Result.Degraded] instead of being returned.
func (e Expander) TolerateFormatErrors(tolerate bool) Expander {
	e.tolerate = tolerate
	return e
}

// Dry disables all filesystem access. Formatting and hashing still run;
// the returned tokens are the original content.
func (e Expander) Dry(dry bool) Expander {
	e.dry = dry
	return e
}

// WithOutDir overrides the build-output directory used by WriteToOutDir.
func (e Expander) WithOutDir(dir string) Expander {
	e.outDir = dir
	return e
}

// WithDigestComment controls whether the digest comment is embedded.
// It is on by default.
func (e Expander) WithDigestComment(on bool) Expander {
	e.noDigest = !on
	return e
}

// SkipUnchanged controls whether a file whose bytes would not change is
// left alone. It is on by default.
func (e Expander) SkipUnchanged(skip bool) Expander {
	e.alwaysSave = !skip
	return e
}

// WithDirective selects the shape of the returned inclusion.
func (e Expander) WithDirective(style DirectiveStyle) Expander {
	e.style = style
	return e
}

// WithLogger sets the logger. The default discards everything.
func (e Expander) WithLogger(logger *zap.Logger) Expander {
	e.logger = logger
	return e
}

// Verbose logs every written or skipped file at info level.
func (e Expander) Verbose(verbose bool) Expander {
	e.verbose = verbose
	return e
}

// FileName returns the configured file name.
func (e Expander) FileName() string { return e.fileName }

func (e Expander) log() *zap.Logger {
	if e.logger == nil {
		return zap.NewNop()
	}
	return e.logger
}

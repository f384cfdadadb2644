// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package expander

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/albertocavalcante/expander/buildenv"
	"github.com/albertocavalcante/expander/formatter"
	"github.com/albertocavalcante/expander/internal/digest"
	"github.com/albertocavalcante/expander/internal/directive"
	"github.com/albertocavalcante/expander/internal/outpath"
	"github.com/albertocavalcante/expander/internal/writer"
)

// Digest is the BLAKE3-256 hash embedded in written files.
type Digest = digest.Sum

// Result is the outcome of one expansion.
type Result struct {
	// Tokens replaces the generated code at the call site: the inclusion
	// directive, or the original content in dry mode.
	Tokens []byte

	// Path is the absolute output path. Empty in dry mode when no output
	// directory is known.
	Path string

	// Artifact is the exact content computed for the file.
	Artifact []byte

	// Digest is the hash of the file body (the content after the header).
	Digest Digest

	// Written reports whether the file was (re)written. It is false in dry
	// mode and when the existing file already held Artifact.
	Written bool

	// Degraded is the tolerated formatting error, if the unformatted
	// content was used in its place.
	Degraded error
}

// Validate checks the configuration. The write methods call it first.
func (e Expander) Validate() error {
	_, err := e.validated()
	return err
}

// validated checks the configuration and returns a copy whose edition is
// in canonical "go1.N" form.
func (e Expander) validated() (Expander, error) {
	if err := outpath.ValidateName(e.fileName); err != nil {
		if errors.Is(err, outpath.ErrEmpty) {
			return e, ErrMissingFileName
		}
		return e, errors.Mark(errors.Wrap(err, "expander: invalid file name"), ErrInvalidFileName)
	}
	ed, err := formatter.ParseEdition(string(e.edition))
	if err != nil {
		return e, err
	}
	e.edition = ed
	return e, nil
}

// WriteToOutDir expands content into the configured output directory:
// the WithOutDir override if set, otherwise the build environment's
// output directory.
func (e Expander) WriteToOutDir(content []byte) (Result, error) {
	dir := e.outDir
	if dir == "" {
		var err error
		if dir, err = buildenv.OutDir(); err != nil {
			return Result{}, err
		}
	}
	return e.WriteTo(content, dir)
}

// MaybeWriteToOutDir is WriteToOutDir for generators that may have failed.
// A non-nil genErr is returned unchanged and nothing is formatted or
// written, so a failed generation never leaves a file behind.
func (e Expander) MaybeWriteToOutDir(content []byte, genErr error) (Result, error) {
	if genErr != nil {
		return Result{}, genErr
	}
	return e.WriteToOutDir(content)
}

// WriteTo expands content into a file under dir.
func (e Expander) WriteTo(content []byte, dir string) (Result, error) {
	e, err := e.validated()
	if err != nil {
		return Result{}, err
	}

	var path string
	switch {
	case dir != "":
		p, err := outpath.Resolve(dir, e.fileName)
		if err != nil {
			if errors.Is(err, outpath.ErrEmpty) {
				return Result{}, errors.Mark(err, ErrMissingFileName)
			}
			return Result{}, errors.Mark(errors.Wrap(err, "expander: invalid file name"), ErrInvalidFileName)
		}
		path = p
	case !e.dry:
		return Result{}, errors.WithHintf(ErrNoOutDir,
			"set %s or call WithOutDir", buildenv.EnvOutDir)
	}

	return e.expand(content, path)
}

// expand runs the pipeline once path is known (or dry mode made it optional).
func (e Expander) expand(content []byte, path string) (Result, error) {
	log := e.log().With(zap.String("file", e.fileName))

	body, degraded, err := e.format(content, log)
	if err != nil {
		return Result{}, err
	}

	artifact, sum := digest.Compose(e.comment, !e.noDigest, body)
	res := Result{
		Path:     path,
		Artifact: artifact,
		Digest:   sum,
		Degraded: degraded,
	}

	if e.dry {
		log.Debug("dry run, keeping content inline", zap.Stringer("digest", sum))
		res.Tokens = append([]byte(nil), content...)
		return res, nil
	}

	if e.unchanged(path, artifact, log) {
		e.report(log, "expansion unchanged, skipped write", path, sum)
	} else {
		if err := writer.Write(path, artifact); err != nil {
			return Result{}, errors.Mark(err, ErrIO)
		}
		res.Written = true
		e.report(log, "wrote expansion", path, sum)
	}

	res.Tokens = directive.Render(e.style, path)
	return res, nil
}

// format applies the formatter. A parse failure is returned unless the
// caller opted into tolerating it, in which case the raw content is used
// and the failure comes back as degraded.
func (e Expander) format(content []byte, log *zap.Logger) (body []byte, degraded error, err error) {
	out, err := e.formatter.Format(content, e.edition)
	if err == nil {
		return out, nil, nil
	}
	if e.tolerate && errors.Is(err, formatter.ErrParse) {
		log.Warn("formatting failed, writing unformatted content",
			zap.String("formatter", e.formatter.Name()),
			zap.Stringer("edition", e.edition),
			zap.Error(err))
		return append([]byte(nil), content...), err, nil
	}
	return nil, nil, err
}

// unchanged reports whether the file at path already holds artifact.
// Any read failure means "not known to be unchanged".
func (e Expander) unchanged(path string, artifact []byte, log *zap.Logger) bool {
	if e.alwaysSave {
		return false
	}
	existing, ok := writer.ReadExisting(path)
	if !ok {
		log.Debug("no readable file to compare, writing", zap.String("path", path))
		return false
	}
	return digest.Equal(existing, artifact)
}

func (e Expander) report(log *zap.Logger, msg, path string, sum digest.Sum) {
	fields := []zap.Field{zap.String("path", path), zap.Stringer("digest", sum)}
	if e.verbose {
		log.Info(msg, fields...)
		return
	}
	log.Debug(msg, fields...)
}

// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package buildenv reads the process-wide build settings that expansions
// share: the build-output directory and the feature flags that switch
// expansion behaviour for a whole build.
//
// Settings come from the environment and, when EXPANDER_CONFIG names a
// TOML file, from that file. Environment variables take precedence.
//
//	OUT_DIR            build-output directory (also EXPANDER_OUT_DIR)
//	EXPANDER_DRY       keep generated code inline, write nothing
//	EXPANDER_FORMAT    formatter name: "none" or "pretty"
//	EXPANDER_EDITION   Go language version for the formatter, e.g. go1.22
//	EXPANDER_VERBOSE   log every written or skipped file
package buildenv

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/albertocavalcante/expander/formatter"
)

const (
	// EnvOutDir is the conventional build-output directory variable.
	EnvOutDir = "OUT_DIR"

	// EnvPrefix prefixes every other variable.
	EnvPrefix = "EXPANDER"

	// EnvConfig names an optional TOML settings file.
	EnvConfig = "EXPANDER_CONFIG"
)

// Settings holds the build-wide expansion settings.
type Settings struct {
	// OutDir is the build-output directory. Empty when unset.
	OutDir string `mapstructure:"out_dir"`

	// Dry disables writing expansion files.
	Dry bool `mapstructure:"dry"`

	// Format is a formatter registry name.
	Format string `mapstructure:"format"`

	// Edition is the language version handed to the formatter.
	Edition string `mapstructure:"edition"`

	// Verbose enables info-level logging of each expansion.
	Verbose bool `mapstructure:"verbose"`
}

// Formatter resolves the configured formatter and edition.
func (s Settings) Formatter() (formatter.Formatter, formatter.Edition, error) {
	f, err := formatter.Lookup(s.Format)
	if err != nil {
		return nil, formatter.EditionUnspecified, errors.Wrapf(err, "%s_FORMAT", EnvPrefix)
	}
	ed, err := formatter.ParseEdition(s.Edition)
	if err != nil {
		return nil, formatter.EditionUnspecified, errors.Wrapf(err, "%s_EDITION", EnvPrefix)
	}
	return f, ed, nil
}

// SetDefaults registers every settings key so that environment variables
// are picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("out_dir", "")
	v.SetDefault("dry", false)
	v.SetDefault("format", "none")
	v.SetDefault("edition", "")
	v.SetDefault("verbose", false)
}

// New returns a Viper instance bound to the expansion environment.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// OUT_DIR carries no prefix; the prefixed form is accepted as well.
	_ = v.BindEnv("out_dir", EnvOutDir, EnvPrefix+"_OUT_DIR")
	SetDefaults(v)
	return v
}

// Load reads settings from the environment and the optional config file.
func Load() (Settings, error) {
	v := New()
	if path := os.Getenv(EnvConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, errors.Wrapf(err, "read config file %s", path)
		}
	}
	return LoadWithViper(v)
}

// LoadWithViper loads settings using a provided Viper instance.
func LoadWithViper(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, errors.Wrap(err, "unmarshal build settings")
	}
	return s, nil
}

// OutDir returns the build-output directory from the environment or the
// config file. It is empty when neither sets one.
func OutDir() (string, error) {
	s, err := Load()
	if err != nil {
		return "", err
	}
	return s.OutDir, nil
}

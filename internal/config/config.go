// SPDX-License-Identifier: MIT

// Package config holds the settings of the matrices command.
//
// Sources are layered, later ones winning:
//
//	Default() -> YAML file (LoadFile) -> MATRICES_* environment (ApplyEnv) -> flags
//
// Flags are applied by the command itself; this package only validates the
// merged result.
//
// Example YAML:
//
//	workers: 4
//	parallel: true
//	pivoting: partial
//	delimiter: ";"
//	result_file: out.csv
//	log_level: debug
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matrices/matrix"
)

// Environment variable names.
const (
	EnvWorkers    = "MATRICES_WORKERS"
	EnvParallel   = "MATRICES_PARALLEL"
	EnvPivoting   = "MATRICES_PIVOTING"
	EnvDelimiter  = "MATRICES_DELIMITER"
	EnvResultFile = "MATRICES_RESULT_FILE"
	EnvLogLevel   = "MATRICES_LOG_LEVEL"
)

// Defaults.
const (
	DefaultResultFile = "result.csv"
	DefaultDelimiter  = ","
	DefaultLogLevel   = "info"
)

// ErrInvalid is wrapped by every Validate and ApplyEnv failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the merged configuration of one command invocation.
type Config struct {
	// Workers bounds the multiply pool; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// Parallel routes matrix-by-matrix multiplication through the pool.
	Parallel bool `yaml:"parallel"`

	// Pivoting is "naive" or "partial" (see matrix.ParsePivoting).
	Pivoting string `yaml:"pivoting"`

	// Delimiter is the single-rune cell separator of input and result files.
	Delimiter string `yaml:"delimiter"`

	// ResultFile is the default output path.
	ResultFile string `yaml:"result_file"`

	// LogLevel is a zap level name.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Pivoting:   matrix.DefaultPivoting.String(),
		Delimiter:  DefaultDelimiter,
		ResultFile: DefaultResultFile,
		LogLevel:   DefaultLogLevel,
	}
}

// LoadFile overlays the YAML document at path onto c. Keys absent from the
// file keep their current values.
//
// Errors: a read failure (including a missing file) or a YAML syntax error.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %q: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %q: %w", path, err)
	}

	return nil
}

// ApplyEnv overlays the MATRICES_* variables that are set and non-empty.
// lookup is normally os.LookupEnv.
//
// Errors: ErrInvalid for unparsable numbers or booleans.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvWorkers, v)
		}
		c.Workers = n
	}
	if v, ok := get(EnvParallel); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvParallel, v)
		}
		c.Parallel = b
	}
	if v, ok := get(EnvPivoting); ok {
		c.Pivoting = v
	}
	if v, ok := lookup(EnvDelimiter); ok && v != "" {
		// Not trimmed: a tab or space is a legitimate delimiter.
		c.Delimiter = v
	}
	if v, ok := get(EnvResultFile); ok {
		c.ResultFile = v
	}
	if v, ok := get(EnvLogLevel); ok {
		c.LogLevel = v
	}

	return nil
}

// Validate checks the merged configuration.
//
// Errors: ErrInvalid for a negative worker count, a delimiter that is not
// exactly one rune (or is a line break), an unknown pivoting policy or log
// level.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d < 0", ErrInvalid, c.Workers)
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 || strings.ContainsAny(c.Delimiter, "\r\n") {
		return fmt.Errorf("%w: delimiter %q must be one rune", ErrInvalid, c.Delimiter)
	}
	if _, err := matrix.ParsePivoting(c.Pivoting); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}

	return nil
}

// DelimiterRune returns the first rune of Delimiter. Call after Validate.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// PivotPolicy returns the parsed Pivoting, falling back to the default.
func (c *Config) PivotPolicy() matrix.Pivoting {
	p, _ := matrix.ParsePivoting(c.Pivoting)
	return p
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}

	return lvl
}

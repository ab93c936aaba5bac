// Package config provides reading and writing of workdur configuration.
// Supports both global (~/.workdur/config.yaml) and local (.workdur/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
//
// WORKDUR_PATTERN and WORKDUR_DAY_LENGTH override the file values when set,
// and command-line values applied with Override win over both. They are read
// by the accessors, so Save never persists them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jpl-au/workdur/internal/duration"
	"github.com/jpl-au/workdur/internal/numeric"
	"github.com/jpl-au/workdur/internal/vocab"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Environment overrides.
const (
	EnvPattern   = "WORKDUR_PATTERN"
	EnvDayLength = "WORKDUR_DAY_LENGTH"
)

// Defaults applied when not configured.
const (
	DefaultPattern   = "day"
	DefaultDayLength = "8h"
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.workdur/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .workdur/config.yaml
	ScopeLocal
)

// Config contains configuration for workdur.
type Config struct {
	// Vocabulary overrides the English unit words field by field.
	Vocabulary vocab.Words `yaml:"vocabulary,omitempty"`
	// DayLength is duration text read with the hour pattern, e.g. "7h 30m".
	DayLength string `yaml:"day_length,omitempty"`
	// Pattern is the default pattern, "day" or "hour".
	Pattern string `yaml:"pattern,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope

	// set by Override
	flagPattern   string
	flagDayLength string
}

// Override applies command-line values for the pattern and day length.
// Empty values leave the environment and file values in effect.
func (c *Config) Override(pattern, dayLength string) {
	c.flagPattern = pattern
	c.flagDayLength = dayLength
}

// Validate checks that all configured values are usable.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if _, err := c.Vocab(); err != nil {
		return err
	}
	if _, err := c.PatternValue(); err != nil {
		return err
	}
	if _, err := c.DayLengthValue(); err != nil {
		return err
	}
	return nil
}

// Words returns the English vocabulary with every configured field applied.
func (c *Config) Words() vocab.Words {
	w := vocab.English
	v := c.Vocabulary
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&w.Day, v.Day}, {&w.Days, v.Days},
		{&w.Hour, v.Hour}, {&w.Hours, v.Hours},
		{&w.Minute, v.Minute}, {&w.Minutes, v.Minutes},
		{&w.DayLetter, v.DayLetter}, {&w.HourLetter, v.HourLetter}, {&w.MinuteLetter, v.MinuteLetter},
		{&w.Language, v.Language},
	} {
		if f.src != "" {
			*f.dst = f.src
		}
	}
	return w
}

// Vocab returns the processed vocabulary.
func (c *Config) Vocab() (*vocab.Vocabulary, error) {
	v, err := vocab.New(c.Words())
	if err != nil {
		return nil, fmt.Errorf("%w: vocabulary: %w", ErrInvalidValue, err)
	}
	return v, nil
}

// PatternName returns the effective pattern text (defaults to "day").
func (c *Config) PatternName() string {
	if c.flagPattern != "" {
		return c.flagPattern
	}
	if v := os.Getenv(EnvPattern); v != "" {
		return v
	}
	if c.Pattern == "" {
		return DefaultPattern
	}
	return c.Pattern
}

// PatternValue returns the effective default pattern.
func (c *Config) PatternValue() (numeric.Pattern, error) {
	p, err := numeric.ParsePattern(c.PatternName())
	if err != nil {
		return 0, fmt.Errorf("%w: pattern: %w", ErrInvalidValue, err)
	}
	return p, nil
}

// DayLengthText returns the effective day length text (defaults to "8h").
func (c *Config) DayLengthText() string {
	if c.flagDayLength != "" {
		return c.flagDayLength
	}
	if v := os.Getenv(EnvDayLength); v != "" {
		return v
	}
	if c.DayLength == "" {
		return DefaultDayLength
	}
	return c.DayLength
}

// DayLengthValue parses the effective day length with the hour pattern and
// the configured vocabulary, so "7ч 30м" works for a Russian vocabulary.
func (c *Config) DayLengthValue() (duration.Duration, error) {
	v, err := c.Vocab()
	if err != nil {
		return duration.Zero, err
	}
	return ParseDayLength(c.DayLengthText(), v)
}

// ParseDayLength reads day length text under the hour pattern. The result
// must be at least one minute.
func ParseDayLength(text string, v *vocab.Vocabulary) (duration.Duration, error) {
	p, err := numeric.NewParser(numeric.Options{Vocabulary: v})
	if err != nil {
		return duration.Zero, err
	}
	d, err := p.Parse(text, numeric.Hour)
	if err != nil {
		return duration.Zero, fmt.Errorf("%w: day_length %q: %w", ErrInvalidValue, text, err)
	}
	if d.InMinutes() < 1 {
		return duration.Zero, fmt.Errorf("%w: day_length %q must be at least one minute", ErrInvalidValue, text)
	}
	return d, nil
}

// Options returns parser options for the effective configuration.
func (c *Config) Options() (numeric.Options, error) {
	v, err := c.Vocab()
	if err != nil {
		return numeric.Options{}, err
	}
	d, err := ParseDayLength(c.DayLengthText(), v)
	if err != nil {
		return numeric.Options{}, err
	}
	return numeric.Options{Vocabulary: v, DayLength: d}, nil
}

// LocalPath returns the path to the local (directory) config file.
func LocalPath() string {
	return filepath.Join(".workdur", "config.yaml")
}

// globalPathFunc is overridden in tests.
var globalPathFunc = defaultGlobalPath

// GlobalPath returns the path to the global (user) config file: ~/.workdur/config.yaml
func GlobalPath() string {
	return globalPathFunc()
}

func defaultGlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".workdur", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}

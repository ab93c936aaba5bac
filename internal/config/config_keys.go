// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. config.go owns the YAML structure and loading; this file
// serves the CLI and MCP surfaces where config is addressed by string keys
// (e.g., "vocabulary.hours").
//
// Get and All report effective values: defaults and environment overrides
// included. IsSet reports only what the file holds.

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jpl-au/workdur/internal/vocab"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"vocabulary.day", "vocabulary.days",
		"vocabulary.hour", "vocabulary.hours",
		"vocabulary.minute", "vocabulary.minutes",
		"vocabulary.day_letter", "vocabulary.hour_letter", "vocabulary.minute_letter",
		"vocabulary.language",
		"day_length",
		"pattern",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// field returns the raw and effective vocabulary string for key.
func (c *Config) field(key string) (raw *string, effective string, ok bool) {
	w := c.Words()
	switch key {
	case "vocabulary.day":
		return &c.Vocabulary.Day, w.Day, true
	case "vocabulary.days":
		return &c.Vocabulary.Days, w.Days, true
	case "vocabulary.hour":
		return &c.Vocabulary.Hour, w.Hour, true
	case "vocabulary.hours":
		return &c.Vocabulary.Hours, w.Hours, true
	case "vocabulary.minute":
		return &c.Vocabulary.Minute, w.Minute, true
	case "vocabulary.minutes":
		return &c.Vocabulary.Minutes, w.Minutes, true
	case "vocabulary.day_letter":
		return &c.Vocabulary.DayLetter, c.letter(vocab.Day, w.DayLetter), true
	case "vocabulary.hour_letter":
		return &c.Vocabulary.HourLetter, c.letter(vocab.Hour, w.HourLetter), true
	case "vocabulary.minute_letter":
		return &c.Vocabulary.MinuteLetter, c.letter(vocab.Minute, w.MinuteLetter), true
	case "vocabulary.language":
		return &c.Vocabulary.Language, w.Language, true
	case "day_length":
		return &c.DayLength, c.DayLengthText(), true
	case "pattern":
		return &c.Pattern, c.PatternName(), true
	default:
		return nil, "", false
	}
}

// letter returns the derived shortcut when no override is set.
func (c *Config) letter(u vocab.Unit, override string) string {
	if override != "" {
		return override
	}
	v, err := c.Vocab()
	if err != nil {
		return ""
	}
	return v.Letter(u)
}

// Get returns the effective value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	_, v, ok := c.field(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return v, nil
}

// Set sets the value of a configuration key. An empty value clears it back to
// the default. The change is rejected if it leaves the config invalid.
func (c *Config) Set(key, value string) error {
	raw, _, ok := c.field(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	value = strings.TrimSpace(value)
	if key == "pattern" {
		value = strings.ToLower(value)
	}

	prev := *raw
	*raw = value
	if err := c.Validate(); err != nil {
		*raw = prev
		return err
	}
	return nil
}

// All returns all effective configuration values as a map.
func (c *Config) All() map[string]string {
	out := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		_, v, _ := c.field(k)
		out[k] = v
	}
	return out
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	raw, _, ok := c.field(key)
	return ok && *raw != ""
}

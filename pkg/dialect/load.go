package dialect

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a dialect definition is malformed.
var ErrInvalidConfig = errors.New("invalid dialect config")

// Parse decodes a YAML dialect definition and builds it.
// When the definition names a base dialect in `extends`, the base must
// already be registered; the definition is layered on top of it.
func Parse(data []byte) (*Dialect, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidConfig)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if cfg.Extends != "" {
		base, err := Lookup(cfg.Extends)
		if err != nil {
			return nil, fmt.Errorf("%w: extends: %w", ErrInvalidConfig, err)
		}
		merged := base.Config().Merge(&cfg)
		cfg = *merged
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New(&cfg).Build(), nil
}

// LoadFile reads and parses a YAML dialect definition from disk.
func LoadFile(path string) (*Dialect, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from CLI flags or config
	if err != nil {
		return nil, fmt.Errorf("failed to read dialect file %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("dialect file %s: %w", path, err)
	}
	return d, nil
}

// Validate checks the structural rules the lexer relies on.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}
	for _, q := range c.Quotes {
		if q.Open == "" || q.Close == "" {
			return fmt.Errorf("%w: quote style needs open and close delimiters", ErrInvalidConfig)
		}
	}
	for _, p := range c.Parens {
		if len([]rune(p.Open)) != 1 || len([]rune(p.Close)) != 1 {
			return fmt.Errorf("%w: paren %q/%q must be single characters", ErrInvalidConfig, p.Open, p.Close)
		}
	}
	if !c.BlockComment.IsZero() && (c.BlockComment.Open == "" || c.BlockComment.Close == "") {
		return fmt.Errorf("%w: block comment needs open and close delimiters", ErrInvalidConfig)
	}
	for _, ph := range c.Placeholders {
		if len([]rune(ph.Sentinel)) != 1 {
			return fmt.Errorf("%w: placeholder sentinel %q must be a single character", ErrInvalidConfig, ph.Sentinel)
		}
		if !ph.Numbered && !ph.Named && !ph.Bare {
			return fmt.Errorf("%w: placeholder %q accepts no form", ErrInvalidConfig, ph.Sentinel)
		}
	}
	for _, o := range c.Overrides {
		if _, ok := categoryByName[o.As]; !ok {
			return fmt.Errorf("%w: override of %q: unknown category %q", ErrInvalidConfig, o.Keyword, o.As)
		}
	}
	if c.Case.Open != "" && c.Case.Close == "" {
		return fmt.Errorf("%w: case.close is required with case.open", ErrInvalidConfig)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// OutputModes lists the accepted values of the output setting.
var OutputModes = []string{"auto", "text", "markdown", "json"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := dialect.Lookup(c.Language); err != nil {
		return fmt.Errorf("%w: language: %w", ErrInvalidConfig, err)
	}

	for _, check := range []struct {
		key   string
		value int
	}{
		{"indent", c.Indent},
		{"lines_between_queries", c.LinesBetweenQueries},
		{"inline_width", c.InlineWidth},
		{"jobs", c.Jobs},
	} {
		if check.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidConfig, check.key, check.value)
		}
	}

	if c.Watch.Debounce < 0 {
		return fmt.Errorf("%w: watch.debounce must not be negative, got %s", ErrInvalidConfig, c.Watch.Debounce)
	}

	if !slices.Contains(OutputModes, strings.ToLower(c.OutputFormat)) {
		return fmt.Errorf("%w: output must be one of %s, got %q",
			ErrInvalidConfig, strings.Join(OutputModes, ", "), c.OutputFormat)
	}

	return nil
}

// Package config provides configuration management for the sqlfmt CLI.
//
// This package extends the shared formatting settings from internal/config
// with CLI-specific fields: output mode, concurrency, the HTTP server and
// the file watcher.
package config

import (
	"time"

	sharedcfg "github.com/leapstack-labs/sqlfmt/internal/config"
)

// Formatting is an alias for the shared formatting settings.
type Formatting = sharedcfg.Formatting

// Config holds all CLI configuration options.
type Config struct {
	Formatting `koanf:",squash"`

	DialectFiles []string    `koanf:"dialect_files"`
	Verbose      bool        `koanf:"verbose"`
	NoColor      bool        `koanf:"no_color"`
	OutputFormat string      `koanf:"output"`
	Jobs         int         `koanf:"jobs"`
	Serve        ServeConfig `koanf:"serve"`
	Watch        WatchConfig `koanf:"watch"`

	// ConfigFile is the config file that was loaded, if any.
	ConfigFile string `koanf:"-"`
}

// ServeConfig holds configuration for the HTTP server.
type ServeConfig struct {
	Addr string `koanf:"addr"`
}

// WatchConfig holds configuration for watch mode.
type WatchConfig struct {
	Debounce time.Duration `koanf:"debounce"`
}

// Default configuration values - formatting defaults come from internal/config.
const (
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultServeAddr = sharedcfg.DefaultServeAddr
	DefaultDebounce  = sharedcfg.DefaultDebounce
)

// Default returns the configuration used when no file, env var or flag is set.
func Default() *Config {
	return &Config{
		Formatting:   sharedcfg.DefaultFormatting(),
		OutputFormat: DefaultOutput,
		Serve:        ServeConfig{Addr: DefaultServeAddr},
		Watch:        WatchConfig{Debounce: DefaultDebounce},
	}
}

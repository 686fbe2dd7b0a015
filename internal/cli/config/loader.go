package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	intconfig "github.com/leapstack-labs/sqlfmt/internal/config"
	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
	"github.com/spf13/pflag"
)

// loggerKey is used to store logger in context.
type loggerKey struct{}

// EnvPrefix is the prefix of environment variables read by the loader.
const EnvPrefix = "SQLFMT_"

// sections are config keys that hold nested settings. Environment
// variables address them as SQLFMT_<SECTION>_<KEY>.
var sections = []string{"serve", "watch"}

// Package-level state for access by commands
var (
	configFileUsed string
	currentConfig  *Config
)

// ResetConfig clears the loaded configuration. Used for testing.
func ResetConfig() {
	configFileUsed = ""
	currentConfig = nil
}

// LoadConfig loads configuration from defaults, a config file, environment
// variables and flags. Precedence (highest to lowest): flags > env vars >
// config file > defaults.
//
// When cfgFile is empty the config file is searched for upward from the
// working directory. Dialect files named in the configuration are
// registered before LoadConfig returns.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(defaultValues(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	if cfgFile == "" {
		if cwd, err := os.Getwd(); err == nil {
			cfgFile = intconfig.FindConfigFileUpward(cwd)
		}
	}
	configFileUsed = cfgFile
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. Load environment variables (SQLFMT_ prefix)
	// Transform: SQLFMT_INLINE_WIDTH -> inline_width, SQLFMT_SERVE_ADDR -> serve.addr
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			// Only load config flags that were explicitly set
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			switch key {
			case "params":
				values, _ := flags.GetStringArray(f.Name)
				return key, ParseParams(values)
			case "dialect_files":
				values, _ := flags.GetStringArray(f.Name)
				return key, values
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.ConfigFile = configFileUsed

	// 6. Resolve dialect files relative to the config file and register them
	baseDir := "."
	if cfgFile != "" {
		baseDir = filepath.Dir(cfgFile)
	}
	for i, path := range cfg.DialectFiles {
		cfg.DialectFiles[i] = intconfig.ResolvePath(path, baseDir)
	}
	if err := RegisterDialectFiles(cfg.DialectFiles); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Store config for access by commands
	currentConfig = &cfg

	return &cfg, nil
}

// defaultValues is the defaults layer, keyed by config path.
func defaultValues() map[string]any {
	def := Default()
	return map[string]any{
		"language":              def.Language,
		"indent":                def.Indent,
		"lines_between_queries": def.LinesBetweenQueries,
		"inline_width":          def.InlineWidth,
		"output":                def.OutputFormat,
		"serve.addr":            def.Serve.Addr,
		"watch.debounce":        def.Watch.Debounce.String(),
	}
}

// envKey maps an environment variable name to a config key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range sections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + rest
		}
	}
	return key
}

// flagKeys maps the flags that carry configuration to their config keys.
// Other flags (--write, --check, --watch...) are command switches.
var flagKeys = map[string]string{
	"language":              "language",
	"indent":                "indent",
	"tab":                   "tab",
	"uppercase":             "uppercase",
	"lines-between-queries": "lines_between_queries",
	"inline-width":          "inline_width",
	"break-between-and":     "break_between_and",
	"param":                 "params",
	"dialect-file":          "dialect_files",
	"verbose":               "verbose",
	"no-color":              "no_color",
	"output":                "output",
	"jobs":                  "jobs",
	"addr":                  "serve.addr",
	"debounce":              "watch.debounce",
}

// Key describes one configuration key and the ways to set it.
type Key struct {
	Name    string // config path, e.g. serve.addr
	Env     string // environment variable
	Flag    string // flag name without dashes, empty when no flag sets the key
	Default any    // nil when the key defaults to its zero value
}

// Keys lists every configuration key that has a default or a flag, sorted
// by name.
func Keys() []Key {
	defaults := defaultValues()
	flagsByKey := make(map[string]string, len(flagKeys))
	for flag, key := range flagKeys {
		flagsByKey[key] = flag
	}

	names := slices.Collect(maps.Keys(flagsByKey))
	for name := range defaults {
		if _, ok := flagsByKey[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	keys := make([]Key, 0, len(names))
	for _, name := range names {
		keys = append(keys, Key{
			Name:    name,
			Env:     EnvVar(name),
			Flag:    flagsByKey[name],
			Default: defaults[name],
		})
	}
	return keys
}

// EnvVar returns the environment variable that sets a config key.
func EnvVar(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// FlagKey returns the config key a flag sets, if it sets one.
func FlagKey(flag string) (string, bool) {
	key, ok := flagKeys[flag]
	return key, ok
}

// ParseParams turns repeated key=value flag values into a named params map.
// Entries without '=' map the whole entry to an empty value.
func ParseParams(values []string) map[string]any {
	out := make(map[string]any, len(values))
	for _, v := range values {
		key, value, _ := strings.Cut(v, "=")
		out[strings.TrimSpace(key)] = value
	}
	return out
}

// RegisterDialectFiles loads YAML dialect definitions and registers them.
func RegisterDialectFiles(paths []string) error {
	for _, path := range paths {
		d, err := dialect.LoadFile(path)
		if err != nil {
			return err
		}
		dialect.Register(d)
	}
	return nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the currently loaded configuration, or the
// defaults when LoadConfig has not run.
func GetCurrentConfig() *Config {
	if currentConfig == nil {
		return Default()
	}
	return currentConfig
}

// NewLogger builds the CLI logger: text to w, debug level when verbose.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/leapstack-labs/sqlfmt/internal/testutil"
	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFlags mirrors the config-carrying flags registered by the CLI, plus a
// command switch that must never reach the config.
func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("language", "", "")
	fs.Int("indent", 0, "")
	fs.Bool("tab", false, "")
	fs.Bool("uppercase", false, "")
	fs.Int("lines-between-queries", 0, "")
	fs.Int("inline-width", 0, "")
	fs.Bool("break-between-and", false, "")
	fs.StringArray("param", nil, "")
	fs.StringArray("dialect-file", nil, "")
	fs.String("output", "", "")
	fs.Int("jobs", 0, "")
	fs.String("addr", "", "")
	fs.Duration("debounce", 0, "")
	fs.Bool("watch", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

// inTempDir runs the test from a fresh directory and resets loader state.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(ResetConfig)
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "sql", cfg.Language)
	assert.Equal(t, 2, cfg.Indent)
	assert.Equal(t, 1, cfg.LinesBetweenQueries)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultServeAddr, cfg.Serve.Addr)
	assert.Equal(t, DefaultDebounce, cfg.Watch.Debounce)
	assert.Empty(t, cfg.ConfigFile)
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_FileFoundUpward(t *testing.T) {
	dir := inTempDir(t)
	testutil.WriteFiles(t, dir, map[string]string{
		".sqlfmt.yaml": `
language: postgres
indent: 4
uppercase: true
params:
  id: 7
serve:
  addr: ":9000"
watch:
  debounce: 250ms
`,
		"nested/deeper/.keep": "",
	})
	t.Chdir(filepath.Join(dir, "nested", "deeper"))

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Language)
	assert.Equal(t, 4, cfg.Indent)
	assert.True(t, cfg.Uppercase)
	assert.Equal(t, ":9000", cfg.Serve.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce)
	assert.Equal(t, map[string]any{"id": 7}, cfg.Params)
	assert.Equal(t, ".sqlfmt.yaml", filepath.Base(cfg.ConfigFile))
	assert.Equal(t, cfg.ConfigFile, GetConfigFileUsed())
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := inTempDir(t)
	cfgFile := filepath.Join(dir, "custom.yaml")
	testutil.WriteFiles(t, dir, map[string]string{
		"custom.yaml": "indent: 4\ninline_width: 30\njobs: 2\nserve:\n  addr: \":9000\"\n",
	})

	t.Setenv("SQLFMT_INLINE_WIDTH", "40")
	t.Setenv("SQLFMT_JOBS", "3")
	t.Setenv("SQLFMT_SERVE_ADDR", ":9100")

	cfg, err := LoadConfig(cfgFile, newFlags(t, "--jobs=5", "--watch"))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Indent, "file beats defaults")
	assert.Equal(t, 40, cfg.InlineWidth, "env beats file")
	assert.Equal(t, ":9100", cfg.Serve.Addr, "env addresses sections")
	assert.Equal(t, 5, cfg.Jobs, "flags beat env")
	assert.Equal(t, DefaultDebounce, cfg.Watch.Debounce, "--watch is a switch, not config")
	assert.Equal(t, cfgFile, cfg.ConfigFile)
}

func TestLoadConfig_UnchangedFlagsKeepLowerLayers(t *testing.T) {
	dir := inTempDir(t)
	testutil.WriteFiles(t, dir, map[string]string{".sqlfmt.yml": "indent: 3\n"})

	cfg, err := LoadConfig("", newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Indent)
	assert.Equal(t, "sql", cfg.Language)
}

func TestLoadConfig_Flags(t *testing.T) {
	inTempDir(t)

	cfg, err := LoadConfig("", newFlags(t,
		"--language", "pl/sql",
		"--tab",
		"--lines-between-queries", "2",
		"--break-between-and",
		"--param", "a=1",
		"--param", "b=x=y",
		"--addr", ":7000",
		"--debounce", "1s",
		"--output", "json",
	))
	require.NoError(t, err)

	assert.Equal(t, "pl/sql", cfg.Language)
	assert.True(t, cfg.Tab)
	assert.Equal(t, 2, cfg.LinesBetweenQueries)
	assert.True(t, cfg.BreakBetweenAnd)
	assert.Equal(t, map[string]any{"a": "1", "b": "x=y"}, cfg.Params)
	assert.Equal(t, ":7000", cfg.Serve.Addr)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestLoadConfig_DialectFiles(t *testing.T) {
	dir := inTempDir(t)
	testutil.WriteFiles(t, dir, map[string]string{
		"dialects/acme.yaml": "name: cfgtest-acme\nextends: sql\naliases: [cfgtest-a]\ntop_level: [RETURNING]\n",
		".sqlfmt.yaml":       "language: cfgtest-a\ndialect_files:\n  - dialects/acme.yaml\n",
	})

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	baseDir := filepath.Dir(cfg.ConfigFile)
	assert.Equal(t, []string{filepath.Join(baseDir, "dialects", "acme.yaml")}, cfg.DialectFiles)

	d, ok := dialect.Get("cfgtest-a")
	require.True(t, ok)
	assert.Equal(t, "cfgtest-acme", d.Name)

	fm, err := cfg.Formatter(nil)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM\n  t\nRETURNING\n  id\n", fm.Format("DELETE FROM t RETURNING id"))
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		errText string
	}{
		{"malformed yaml", map[string]string{".sqlfmt.yaml": "indent: [1\n"}, "error reading config file"},
		{"unknown language", map[string]string{".sqlfmt.yaml": "language: klingon\n"}, "unknown dialect"},
		{"negative indent", map[string]string{".sqlfmt.yaml": "indent: -1\n"}, "indent must not be negative"},
		{"missing dialect file", map[string]string{".sqlfmt.yaml": "dialect_files: [nope.yaml]\n"}, "failed to read dialect file"},
		{"bad dialect file", map[string]string{
			".sqlfmt.yaml": "dialect_files: [bad.yaml]\n",
			"bad.yaml":     "name: cfgtest-bad\nbogus: true\n",
		}, "bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := inTempDir(t)
			testutil.WriteFiles(t, dir, tt.files)

			_, err := LoadConfig("", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		errText string
	}{
		{"defaults", func(*Config) {}, ""},
		{"alias language", func(c *Config) { c.Language = "Spark" }, ""},
		{"output case-insensitive", func(c *Config) { c.OutputFormat = "Markdown" }, ""},
		{"unknown language", func(c *Config) { c.Language = "cobol" }, "language"},
		{"negative lines", func(c *Config) { c.LinesBetweenQueries = -2 }, "lines_between_queries"},
		{"negative inline width", func(c *Config) { c.InlineWidth = -1 }, "inline_width"},
		{"negative jobs", func(c *Config) { c.Jobs = -1 }, "jobs"},
		{"negative debounce", func(c *Config) { c.Watch.Debounce = -time.Second }, "watch.debounce"},
		{"unknown output", func(c *Config) { c.OutputFormat = "xml" }, "output must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errText == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"SQLFMT_LANGUAGE", "language"},
		{"SQLFMT_LINES_BETWEEN_QUERIES", "lines_between_queries"},
		{"SQLFMT_SERVE_ADDR", "serve.addr"},
		{"SQLFMT_WATCH_DEBOUNCE", "watch.debounce"},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.env))
		})
	}
}

func TestParseParams(t *testing.T) {
	got := ParseParams([]string{"a=1", "b", " c =x y"})
	assert.Equal(t, map[string]any{"a": "1", "b": "", "c": "x y"}, got)
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(t.Context()))

	logger := testutil.NewTestLogger(t)
	ctx := WithLogger(t.Context(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}

func TestKeys(t *testing.T) {
	keys := Keys()
	require.NotEmpty(t, keys)

	byName := make(map[string]Key, len(keys))
	for i, k := range keys {
		if i > 0 {
			assert.Less(t, keys[i-1].Name, k.Name, "keys are sorted")
		}
		assert.Equal(t, k.Name, envKey(k.Env), "env var round-trips to %s", k.Name)
		if k.Flag != "" {
			key, ok := FlagKey(k.Flag)
			require.True(t, ok)
			assert.Equal(t, k.Name, key)
		}
		byName[k.Name] = k
	}

	assert.Equal(t, Key{Name: "serve.addr", Env: "SQLFMT_SERVE_ADDR", Flag: "addr", Default: DefaultServeAddr}, byName["serve.addr"])
	assert.Equal(t, Key{Name: "params", Env: "SQLFMT_PARAMS", Flag: "param"}, byName["params"])
	assert.Equal(t, 2, byName["indent"].Default)
	assert.Equal(t, DefaultDebounce.String(), byName["watch.debounce"].Default)

	_, ok := FlagKey("write")
	assert.False(t, ok, "command switches carry no config")
}

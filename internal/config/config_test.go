package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/sqlfmt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConfigFileUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	assert.Empty(t, FindConfigFileUpward(nested))

	cfgPath := filepath.Join(root, "a", ".sqlfmt.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("language: postgres\n"), 0o600))
	assert.Equal(t, cfgPath, FindConfigFileUpward(nested))

	// .sqlfmt.yaml wins over .sqlfmt.yml in the same directory.
	preferred := filepath.Join(root, "a", ".sqlfmt.yaml")
	require.NoError(t, os.WriteFile(preferred, []byte("language: sql\n"), 0o600))
	assert.Equal(t, preferred, FindConfigFileUpward(nested))

	// A closer file wins.
	closer := filepath.Join(nested, "sqlfmt.yaml")
	require.NoError(t, os.WriteFile(closer, []byte("{}\n"), 0o600))
	assert.Equal(t, closer, FindConfigFileUpward(nested))
}

func TestFindConfigFile_IgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".sqlfmt.yaml"), 0o750))
	assert.Empty(t, FindConfigFile(dir))
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "", ResolvePath("", "/base"))
	assert.Equal(t, "/abs/x.yaml", ResolvePath("/abs/x.yaml", "/base"))
	assert.Equal(t, filepath.Join("/base", "rel", "x.yaml"), ResolvePath("rel/x.yaml", "/base"))
}

func TestFormatting_IndentString(t *testing.T) {
	tests := []struct {
		name string
		f    Formatting
		want string
	}{
		{"default", Formatting{}, "  "},
		{"four spaces", Formatting{Indent: 4}, "    "},
		{"tab wins", Formatting{Indent: 4, Tab: true}, "\t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.IndentString())
		})
	}
}

func TestFormatting_Formatter(t *testing.T) {
	f := DefaultFormatting()
	f.Uppercase = true
	f.Params = map[string]any{"id": 7}

	fm, err := f.Formatter(testutil.NewTestLogger(t))
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n  *\nFROM\n  t\nWHERE\n  id = 7\n", fm.Format("select * from t where id = @id"))

	f.Language = "nope"
	_, err = f.Formatter(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid formatting options")
}

func TestApplyDefaults(t *testing.T) {
	f := &Formatting{Uppercase: true}
	ApplyDefaults(f)

	want := DefaultFormatting()
	want.Uppercase = true
	assert.Equal(t, want, *f)

	ApplyDefaults(nil)
}

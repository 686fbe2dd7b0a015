package sqlfmt_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/sqlfmt/pkg/sqlfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

// TestGoldenFiles formats testdata/<language>/*.in.sql and compares the
// result with the matching <name>.sql. Run with -update to regenerate.
func TestGoldenFiles(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("testdata", "*", "*.in.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "no *.in.sql files found in testdata")

	for _, inputFile := range matches {
		language := filepath.Base(filepath.Dir(inputFile))
		outputName := filepath.Join(language, strings.TrimSuffix(filepath.Base(inputFile), ".in.sql")+".sql")

		t.Run(outputName, func(t *testing.T) {
			input, err := os.ReadFile(inputFile)
			require.NoError(t, err)

			result, err := sqlfmt.Format(string(input), sqlfmt.Options{Language: language})
			require.NoError(t, err)
			golden.Assert(t, result, outputName)

			again, err := sqlfmt.Format(result, sqlfmt.Options{Language: language})
			require.NoError(t, err)
			assert.Equal(t, result, again, "formatting is not idempotent")
		})
	}
}

package plsql

import (
	"testing"

	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
	"github.com/leapstack-labs/sqlfmt/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectRegistration(t *testing.T) {
	for _, name := range []string{"pl/sql", "plsql", "Oracle"} {
		d, ok := dialect.Get(name)
		require.True(t, ok, name)
		assert.Same(t, PLSQL, d)
	}
}

func TestSetAfterBy(t *testing.T) {
	cat, ok := PLSQL.LookupKeyword("SET")
	require.True(t, ok)
	assert.Equal(t, token.TopLevelKeyword, cat)

	cat, ok = PLSQL.Override("SET", "BY")
	require.True(t, ok)
	assert.Equal(t, token.PlainKeyword, cat)
}

func TestIdentChars(t *testing.T) {
	for _, r := range "_$#.@" {
		assert.True(t, PLSQL.IsIdentRune(r), "%q", r)
	}
	assert.Equal(t, []string{"--"}, PLSQL.LineComments(), "# starts identifiers, not comments")
}

package snowflake

import (
	"testing"

	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
	"github.com/leapstack-labs/sqlfmt/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	d := Snowflake

	require.NotNil(t, d)
	assert.Equal(t, "snowflake", d.Name)

	// Verify features via Config flags
	assert.True(t, Config.SupportsQualify)
	assert.True(t, Config.SupportsCastOperator)
	assert.True(t, Config.SupportsDollarQuotes)
	assert.False(t, Config.SupportsNestedComments)
	assert.True(t, d.DollarQuotes())
}

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("SNOWFLAKE")
	require.True(t, ok, "snowflake dialect should be registered")
	assert.Same(t, Snowflake, d)
}

func TestKeywords(t *testing.T) {
	d := Snowflake

	tests := []struct {
		phrase string
		want   token.Category
	}{
		{"qualify", token.TopLevelKeyword},
		{"merge into", token.TopLevelKeyword},
		{"minus", token.TopLevelKeywordNoIndent},
		{"lateral flatten", token.NewlineKeyword},
		{"rlike", token.PlainKeyword},
	}
	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got, ok := d.LookupKeyword(tt.phrase)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOperatorSpacing(t *testing.T) {
	d := Snowflake

	assert.Contains(t, d.Operators(), "::")
	assert.Equal(t, dialect.SpaceNone, d.OperatorSpacing("::"))
	assert.Equal(t, dialect.SpaceNone, d.OperatorSpacing(":"))
	assert.Equal(t, dialect.SpaceAround, d.OperatorSpacing("||"))
	assert.Equal(t, []string{"--", "//"}, d.LineComments())
}

package snowflake

import "github.com/leapstack-labs/sqlfmt/pkg/dialect"

func init() {
	dialect.Register(Snowflake)
}

// Snowflake is the Snowflake SQL dialect.
// Builder reads Config flags and auto-wires:
// - QUALIFY clause (SupportsQualify)
// - :: cast operator (SupportsCastOperator)
var Snowflake = dialect.New(Config).Build()

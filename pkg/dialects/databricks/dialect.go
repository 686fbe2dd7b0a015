package databricks

import "github.com/leapstack-labs/sqlfmt/pkg/dialect"

func init() {
	dialect.Register(Databricks)
}

// Databricks is the Databricks SQL dialect.
// Builder reads Config flags and auto-wires:
// - QUALIFY clause (SupportsQualify)
// - :: cast operator (SupportsCastOperator)
var Databricks = dialect.New(Config).Build()

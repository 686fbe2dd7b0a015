package postgres

import "github.com/leapstack-labs/sqlfmt/pkg/dialect"

func init() {
	dialect.Register(Postgres)
}

// Postgres is the PostgreSQL dialect.
// Builder reads Config flags and auto-wires:
// - :: cast operator (SupportsCastOperator)
var Postgres = dialect.New(Config).Build()

package duckdb

import "github.com/leapstack-labs/sqlfmt/pkg/dialect"

func init() {
	dialect.Register(DuckDB)
}

// DuckDB is the DuckDB dialect.
// PIVOT and UNPIVOT open their own statements, so they are clause keywords
// here rather than reserved words.
var DuckDB = dialect.New(Config).
	TopLevel("PIVOT", "UNPIVOT", "PIVOT_WIDER", "PIVOT_LONGER").
	Build()

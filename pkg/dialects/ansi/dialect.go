// Package ansi provides the standard SQL dialect.
//
// This dialect serves as the default for the formatter and as the base that
// user dialect files extend when they do not need a vendor's conventions.
package ansi

import "github.com/leapstack-labs/sqlfmt/pkg/dialect"

func init() {
	dialect.Register(ANSI)
}

// ANSI is the standard SQL dialect.
var ANSI = dialect.New(Config).Build()

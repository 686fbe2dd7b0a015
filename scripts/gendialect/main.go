// Package main provides a generator that extracts the reserved keywords of
// an embedded DuckDB and writes them as Go code for the duckdb dialect.
//
// Usage:
//
//	go run ./scripts/gendialect -out=pkg/dialects/duckdb/keywords_gen.go
package main

import (
	"bytes"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/marcboeker/go-duckdb"
)

var (
	outFlag      = flag.String("out", "", "output file path (required)")
	categoryFlag = flag.String("category", "reserved", "duckdb_keywords() category to extract")
)

func main() {
	flag.Parse()

	if *outFlag == "" {
		log.Fatal("--out flag is required")
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		log.Fatalf("failed to open duckdb: %v", err)
	}

	ctx := context.Background()

	var version string
	if err := db.QueryRowContext(ctx, "SELECT version()").Scan(&version); err != nil {
		_ = db.Close()
		log.Fatalf("failed to get version: %v", err)
	}
	log.Printf("Connected to DuckDB %s", version)

	keywords, err := extractKeywords(ctx, db, *categoryFlag)
	if err != nil {
		_ = db.Close()
		log.Fatalf("failed to extract keywords: %v", err)
	}

	if err := db.Close(); err != nil {
		log.Printf("warning: failed to close db: %v", err)
	}
	if len(keywords) == 0 {
		log.Fatalf("no keywords in category %q", *categoryFlag)
	}
	log.Printf("Extracted %d %s keywords", len(keywords), *categoryFlag)

	code := generateCode(version, *categoryFlag, keywords)

	formatted, err := format.Source([]byte(code))
	if err != nil {
		log.Printf("Warning: failed to format generated code: %v", err)
		formatted = []byte(code)
	}

	if err := os.WriteFile(*outFlag, formatted, 0o600); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}

	log.Printf("Generated %s", *outFlag)
}

func extractKeywords(ctx context.Context, db *sql.DB, category string) ([]string, error) {
	query := `SELECT upper(keyword_name) FROM duckdb_keywords() WHERE keyword_category = ? ORDER BY 1`

	rows, err := db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("query keywords: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var keywords []string
	for rows.Next() {
		var kw string
		if err := rows.Scan(&kw); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		keywords = append(keywords, strings.TrimSpace(kw))
	}

	return keywords, rows.Err()
}

func generateCode(version, category string, keywords []string) string {
	var buf bytes.Buffer

	buf.WriteString("// Code generated by scripts/gendialect. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "// Source: DuckDB %s, duckdb_keywords() category %q\n", version, category)
	fmt.Fprintf(&buf, "// Generated: %s\n\n", time.Now().Format("2006-01-02"))
	buf.WriteString("package duckdb\n\n")

	buf.WriteString("// duckDBKeywords lists the words DuckDB's parser reserves.\n")
	buf.WriteString("var duckDBKeywords = []string{\n")
	writeStringSlice(&buf, keywords)
	buf.WriteString("}\n")

	return buf.String()
}

func writeStringSlice(buf *bytes.Buffer, items []string) {
	const itemsPerLine = 8
	for i, item := range items {
		if i%itemsPerLine == 0 {
			buf.WriteString("\t")
		}
		fmt.Fprintf(buf, "%q, ", item)
		if (i+1)%itemsPerLine == 0 {
			buf.WriteString("\n")
		}
	}
	if len(items)%itemsPerLine != 0 {
		buf.WriteString("\n")
	}
}

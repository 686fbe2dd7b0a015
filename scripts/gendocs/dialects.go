package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
	_ "github.com/leapstack-labs/sqlfmt/pkg/sqlfmt" // registers the built-in dialects
)

// generateDialectDocs writes dialects.md describing every built-in dialect.
func generateDialectDocs(outDir string) error {
	log.Printf("Generating dialect docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Dialects", "SQL dialects understood by sqlfmt")
	w.GeneratedMarker()

	w.Header(1, "Dialects")
	w.Paragraph("Pick a dialect with " + InlineCode("--language") + " or the " + InlineCode("language") +
		" config key. Names and aliases are case-insensitive.")

	var rows [][]string
	for _, d := range dialect.All() {
		rows = append(rows, []string{
			InlineCode(d.Name),
			codeList(d.Aliases),
			codeList(placeholderForms(d)),
			codeList(commentMarkers(d)),
		})
	}
	w.Table([]string{"Name", "Aliases", "Placeholders", "Comments"}, rows)

	for _, d := range dialect.All() {
		writeDialectSection(w, d)
	}

	w.Header(2, "Custom Dialects")
	w.Paragraph("A YAML file can extend a built-in dialect. Lists of keywords and operators are appended " +
		"to the base; lexical settings such as quotes and comments replace it.")
	w.CodeBlock("yaml", `name: acme
extends: postgres
aliases: [acme-sql]
top_level: [RETURNING]
line_comments: ["--", "%"]`)
	w.Paragraph("Register it with " + InlineCode("--dialect-file") + " or the " + InlineCode("dialect_files") +
		" config key, and check it with " + InlineCode("sqlfmt dialects --file acme.yaml") + ".")

	filename := filepath.Join(outDir, "dialects.md")
	if err := os.WriteFile(filename, w.Bytes(), 0o600); err != nil {
		return err
	}
	log.Printf("  Generated dialects.md")
	return nil
}

func writeDialectSection(w *MarkdownWriter, d *dialect.Dialect) {
	cfg := d.Config()

	w.Header(2, d.Name)

	var features []string
	if cfg.SupportsDollarQuotes {
		features = append(features, "dollar-quoted strings")
	}
	if cfg.SupportsNestedComments {
		features = append(features, "nested block comments")
	}
	if cfg.SupportsCastOperator {
		features = append(features, InlineCode("::")+" casts")
	}
	if cfg.SupportsQualify {
		features = append(features, InlineCode("QUALIFY"))
	}
	if len(features) > 0 {
		w.Paragraph("Supports " + strings.Join(features, ", ") + ".")
	}

	w.Table([]string{"Clause", "Keywords"}, [][]string{
		{"Top level", codeList(cfg.TopLevel)},
		{"Top level, not indented", codeList(cfg.TopLevelNoIndent)},
		{"Own line", codeList(cfg.Newline)},
	})
}

func placeholderForms(d *dialect.Dialect) []string {
	var forms []string
	for _, p := range d.Placeholders() {
		if p.Bare {
			forms = append(forms, p.Sentinel)
		}
		if p.Numbered {
			forms = append(forms, p.Sentinel+"1")
		}
		if p.Named {
			forms = append(forms, p.Sentinel+"name")
		}
	}
	return forms
}

func commentMarkers(d *dialect.Dialect) []string {
	markers := append([]string{}, d.LineComments()...)
	if bc, _ := d.BlockComment(); !bc.IsZero() {
		markers = append(markers, bc.Open+" "+bc.Close)
	}
	return markers
}

func codeList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = InlineCode(item)
	}
	return strings.Join(out, ", ")
}

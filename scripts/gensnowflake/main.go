// Package main provides a scraper that extracts the Snowflake reserved
// keywords from the Snowflake documentation and generates Go code for the
// snowflake dialect.
//
// Usage:
//
//	go run ./scripts/gensnowflake -out=pkg/dialects/snowflake/keywords_gen.go
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const keywordsURL = "https://docs.snowflake.com/en/sql-reference/reserved-keywords"

var outFlag = flag.String("out", "", "output file path (required)")

// keywordPattern accepts single words; footnote markers and prose are dropped.
var keywordPattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]+$`)

func main() {
	flag.Parse()

	if *outFlag == "" {
		log.Fatal("--out flag is required")
	}

	log.Printf("Fetching keywords from %s", keywordsURL)

	body, err := fetchURL(keywordsURL)
	if err != nil {
		log.Fatalf("failed to fetch keywords page: %v", err)
	}

	keywords, err := parseKeywordsPage(body)
	if err != nil {
		log.Fatalf("failed to parse keywords page: %v", err)
	}
	if len(keywords) == 0 {
		log.Fatal("no keywords found; the page layout may have changed")
	}
	log.Printf("Extracted %d reserved keywords", len(keywords))

	writeFormattedCode(*outFlag, generateKeywordsCode(keywords))
}

func fetchURL(url string) ([]byte, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; sqlfmt/1.0; +https://github.com/leapstack-labs/sqlfmt)")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// parseKeywordsPage reads the first cell of every table row. The page has a
// single two-column table (Keyword, Comment) split by letter header rows.
func parseKeywordsPage(body []byte) ([]string, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)

	var inTable bool
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			inTable = true
		}

		if inTable && n.Type == html.ElementNode && n.Data == "tr" {
			if kw := strings.ToUpper(firstCell(n)); keywordPattern.MatchString(kw) {
				seen[kw] = true
			}
			return
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && n.Data == "table" {
			inTable = false
		}
	}
	walk(doc)

	keywords := make([]string, 0, len(seen))
	for kw := range seen {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	return keywords, nil
}

func firstCell(tr *html.Node) string {
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "td" {
			return strings.TrimSpace(extractText(c))
		}
	}
	return ""
}

func extractText(n *html.Node) string {
	var buf bytes.Buffer
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

func generateKeywordsCode(keywords []string) string {
	var buf bytes.Buffer

	buf.WriteString("// Code generated by scripts/gensnowflake. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "// Source: %s\n", keywordsURL)
	fmt.Fprintf(&buf, "// Generated: %s\n\n", time.Now().Format("2006-01-02"))
	buf.WriteString("package snowflake\n\n")

	buf.WriteString("// snowflakeKeywords lists the words Snowflake reserves.\n")
	buf.WriteString("var snowflakeKeywords = []string{\n")
	writeStringSlice(&buf, keywords)
	buf.WriteString("}\n")

	return buf.String()
}

func writeStringSlice(buf *bytes.Buffer, items []string) {
	const itemsPerLine = 6
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

func writeFormattedCode(outPath, code string) {
	formatted, err := format.Source([]byte(code))
	if err != nil {
		log.Printf("Warning: failed to format generated code: %v", err)
		formatted = []byte(code)
	}

	if err := os.WriteFile(outPath, formatted, 0o600); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}

	log.Printf("Generated %s", outPath)
}

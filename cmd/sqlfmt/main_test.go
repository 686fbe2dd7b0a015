// Package main provides tests for the sqlfmt CLI.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/sqlfmt/internal/cli"
	"github.com/leapstack-labs/sqlfmt/internal/cli/config"
)

// run executes the root command from an empty working directory.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(config.ResetConfig)

	cmd := cli.NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	output, _, err := run(t, "", "version")
	if err != nil {
		t.Errorf("version command error = %v", err)
	}
	if !strings.Contains(output, "sqlfmt v"+cli.Version) {
		t.Errorf("version output should contain 'sqlfmt v%s', got: %s", cli.Version, output)
	}
}

func TestVersionFlag(t *testing.T) {
	output, _, err := run(t, "", "--version")
	if err != nil {
		t.Errorf("--version error = %v", err)
	}
	if output != "sqlfmt "+cli.Version+"\n" {
		t.Errorf("unexpected --version output: %q", output)
	}
}

func TestHelpCommand(t *testing.T) {
	output, _, err := run(t, "", "--help")
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	expectedCommands := []string{"format", "dialects", "serve", "repl", "lsp", "version", "completion"}
	for _, expected := range expectedCommands {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestFormatCommand(t *testing.T) {
	output, _, err := run(t, "select a, b from t where x = :x", "format", "--uppercase", "--param", "x=42")
	if err != nil {
		t.Fatalf("format command error = %v", err)
	}

	want := "SELECT\n  a,\n  b\nFROM\n  t\nWHERE\n  x = 42\n"
	if output != want {
		t.Errorf("format output = %q, want %q", output, want)
	}
}

func TestFormatCommandConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "fmt.yaml")
	if err := os.WriteFile(cfgFile, []byte("indent: 4\nlanguage: postgres\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	output, _, err := run(t, "select $1::int", "--config", cfgFile, "format")
	if err != nil {
		t.Fatalf("format command error = %v", err)
	}
	if output != "select\n    $1::int\n" {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestUnknownLanguage(t *testing.T) {
	_, _, err := run(t, "select 1", "format", "-l", "klingon")
	if err == nil {
		t.Fatal("expected an error for an unknown language")
	}
	if !strings.Contains(err.Error(), "unknown dialect") {
		t.Errorf("error should mention the unknown dialect, got: %v", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	output, _, err := run(t, "", "completion", "bash")
	if err != nil {
		t.Errorf("completion command error = %v", err)
	}
	if !strings.Contains(output, "sqlfmt") {
		t.Errorf("completion script should mention sqlfmt, got: %s", output)
	}
}

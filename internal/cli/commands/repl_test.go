package commands

import (
	"bytes"
	"testing"

	"github.com/leapstack-labs/sqlfmt/internal/cli/config"
	"github.com/leapstack-labs/sqlfmt/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestSession(t *testing.T) (*replSession, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	return newREPLSession(config.Default().Formatting, testutil.NewTestLogger(t), &out, &errOut), &out, &errOut
}

func TestREPLSession_MultiLine(t *testing.T) {
	s, out, _ := newTestSession(t)

	assert.False(t, s.handleLine("select a,"))
	assert.Equal(t, replContinued, s.prompt())
	assert.Empty(t, out.String())

	assert.False(t, s.handleLine("  b from t;"))
	assert.Equal(t, replPrompt, s.prompt())
	assert.Equal(t, "select\n  a,\n  b\nfrom\n  t;\n\n", out.String())
}

func TestREPLSession_DotCommands(t *testing.T) {
	s, out, errOut := newTestSession(t)

	s.handleLine(".language pg")
	s.handleLine(".uppercase on")
	s.handleLine("select x::int from t;")
	assert.Contains(t, out.String(), "language: postgresql\n")
	assert.Contains(t, out.String(), "uppercase: on\n")
	assert.Contains(t, out.String(), "SELECT\n  x::int\nFROM\n  t;\n")

	out.Reset()
	s.handleLine(".language")
	s.handleLine(".uppercase")
	assert.Equal(t, "language: postgresql\nuppercase: on\n", out.String())

	s.handleLine(".language cobol")
	s.handleLine(".uppercase maybe")
	s.handleLine(".frobnicate")
	assert.Contains(t, errOut.String(), "unknown dialect")
	assert.Contains(t, errOut.String(), "Usage: .uppercase on|off")
	assert.Contains(t, errOut.String(), "Unknown command: .frobnicate")

	out.Reset()
	s.handleLine(".help")
	assert.Contains(t, out.String(), ".language [name]")
}

func TestREPLSession_Quit(t *testing.T) {
	s, _, _ := newTestSession(t)
	assert.True(t, s.handleLine(".quit"))
	assert.True(t, s.handleLine(".EXIT"))
}

func TestREPLSession_DotInsideStatement(t *testing.T) {
	s, out, errOut := newTestSession(t)

	// A line starting with '.' continues a pending statement.
	s.handleLine("select t")
	s.handleLine(".a from t;")
	assert.Empty(t, errOut.String())
	assert.Contains(t, out.String(), "from\n  t;\n")
}

func TestREPLSession_ResetAndFlush(t *testing.T) {
	s, out, _ := newTestSession(t)

	s.handleLine("select broken")
	s.reset()
	assert.Equal(t, replPrompt, s.prompt())

	s.handleLine("select 1")
	s.flush()
	assert.Equal(t, "select\n  1\n\n", out.String())

	// Flushing an empty buffer prints nothing.
	out.Reset()
	s.flush()
	assert.Empty(t, out.String())
}

package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/sqlfmt/internal/cli/config"
	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
	"github.com/spf13/cobra"
)

const (
	replPrompt    = "sqlfmt> "
	replContinued = "   ...> "
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Format SQL interactively",
		Long: `Start an interactive session. Statements are collected until a line
ends with a semicolon and are then printed formatted.

Type .help for commands, .quit to exit.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	addFormattingFlags(cmd)
	return cmd
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	session := newREPLSession(cmdCtx.Cfg.Formatting, cmdCtx.Logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if _, err := session.formatting.Formatter(nil); err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile(),
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sqlfmt REPL (language: %s)\n", session.formatting.Language)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			session.reset()
			rl.SetPrompt(session.prompt())
			continue
		}
		if errors.Is(err, io.EOF) {
			session.flush()
			break
		}
		if err != nil {
			return err
		}

		if quit := session.handleLine(line); quit {
			break
		}
		rl.SetPrompt(session.prompt())
	}
	return nil
}

// historyFile returns the REPL history path, or "" to disable history.
func historyFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	dir = filepath.Join(dir, "sqlfmt")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return ""
	}
	return filepath.Join(dir, "repl_history")
}

func newREPLCompleter() *readline.PrefixCompleter {
	names := dialectNames()
	languages := make([]readline.PrefixCompleterInterface, 0, len(names))
	for _, name := range names {
		languages = append(languages, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem(".language", languages...),
		readline.PcItem(".uppercase", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem(".help"),
		readline.PcItem(".quit"),
	)
}

// replSession holds the state of one interactive session.
type replSession struct {
	formatting config.Formatting
	logger     *slog.Logger
	out        io.Writer
	errOut     io.Writer
	buf        strings.Builder
}

func newREPLSession(f config.Formatting, logger *slog.Logger, out, errOut io.Writer) *replSession {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &replSession{formatting: f, logger: logger, out: out, errOut: errOut}
}

func (s *replSession) prompt() string {
	if s.buf.Len() > 0 {
		return replContinued
	}
	return replPrompt
}

func (s *replSession) reset() {
	s.buf.Reset()
}

// handleLine processes one input line and reports whether to exit.
func (s *replSession) handleLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if s.buf.Len() == 0 {
		if trimmed == "" {
			return false
		}
		if strings.HasPrefix(trimmed, ".") {
			return s.dotCommand(trimmed)
		}
	}

	// Accumulate multi-line SQL until semicolon
	s.buf.WriteString(line)
	s.buf.WriteString("\n")
	if strings.HasSuffix(trimmed, ";") {
		s.flush()
	}
	return false
}

// flush formats and prints the buffered statement.
func (s *replSession) flush() {
	src := s.buf.String()
	s.buf.Reset()
	if strings.TrimSpace(src) == "" {
		return
	}

	fm, err := s.formatting.Formatter(nil)
	if err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
		return
	}
	s.logger.Debug("formatting statement", "language", fm.Dialect().Name, "bytes", len(src))
	_, _ = fmt.Fprintln(s.out, fm.Format(src))
}

func (s *replSession) dotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".language":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(s.out, "language: %s\n", s.formatting.Language)
			return false
		}
		d, err := dialect.Lookup(parts[1])
		if err != nil {
			_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
			return false
		}
		s.formatting.Language = d.Name
		_, _ = fmt.Fprintf(s.out, "language: %s\n", d.Name)

	case ".uppercase":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(s.out, "uppercase: %s\n", onOff(s.formatting.Uppercase))
			return false
		}
		switch strings.ToLower(parts[1]) {
		case "on":
			s.formatting.Uppercase = true
		case "off":
			s.formatting.Uppercase = false
		default:
			_, _ = fmt.Fprintln(s.errOut, "Usage: .uppercase on|off")
			return false
		}
		_, _ = fmt.Fprintf(s.out, "uppercase: %s\n", onOff(s.formatting.Uppercase))

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .language [name]     Show or switch the SQL dialect
  .uppercase on|off    Toggle keyword uppercasing
  .help                Show this help message
  .quit / .exit        Exit the REPL

Tips:
  - Statements are formatted once a line ends with a semicolon (;)
  - Use arrow keys to navigate history
  - Tab completes commands and dialect names
`
	_, _ = fmt.Fprintln(w, help)
}

package commands

import (
	"log/slog"

	"github.com/leapstack-labs/sqlfmt/internal/cli/config"
	"github.com/leapstack-labs/sqlfmt/internal/cli/output"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.GetCurrentConfig()
	logger := config.GetLogger(cmd.Context())

	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
	if cfg.NoColor {
		r.DisableColor()
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// addFormattingFlags registers the flags that override formatting settings.
// Their values reach commands through the loaded config, not these bindings.
func addFormattingFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("language", "l", "", "SQL dialect (see 'sqlfmt dialects')")
	f.Int("indent", 0, "Spaces per indentation level (default 2)")
	f.Bool("tab", false, "Indent with tabs")
	f.BoolP("uppercase", "u", false, "Uppercase keywords")
	f.Int("lines-between-queries", 0, "Line breaks after each statement (default 1)")
	f.Int("inline-width", 0, "Widest parenthesized span kept on one line (default 50)")
	f.Bool("break-between-and", false, "Break before AND inside BETWEEN ranges")
	f.StringArray("param", nil, "Placeholder value as key=value (repeatable)")

	_ = cmd.RegisterFlagCompletionFunc("language", completeLanguages)
}

func completeLanguages(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return dialectNames(), cobra.ShellCompDirectiveNoFileComp
}

package commands

import (
	"github.com/leapstack-labs/sqlfmt/internal/lsp"
	"github.com/spf13/cobra"
)

// NewLSPCommand creates the lsp command.
func NewLSPCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the language server on stdio",
		Long: `Start a Language Server Protocol server on stdin/stdout that provides
document and range formatting to editors.

Formatting flags and config set the defaults. Editors may override them
with initializationOptions using the config file keys; the editor's tab
settings decide indentation.`,
		Example: `  # Neovim (lspconfig-style)
  cmd = { "sqlfmt", "lsp", "-l", "postgres" }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			if _, err := cmdCtx.Cfg.Formatter(nil); err != nil {
				return err
			}

			srv := lsp.NewServer(cmd.InOrStdin(), cmd.OutOrStdout(), lsp.Config{
				Defaults: cmdCtx.Cfg.Formatting,
				Version:  version,
				Logger:   cmdCtx.Logger,
			})
			return srv.Run(cmd.Context())
		},
	}

	addFormattingFlags(cmd)

	return cmd
}

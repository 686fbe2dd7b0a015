package commands

import (
	"fmt"

	"github.com/leapstack-labs/sqlfmt/internal/cli/config"
	"github.com/leapstack-labs/sqlfmt/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the formatter over HTTP",
		Long: `Start an HTTP server exposing the formatter.

Endpoints:
  POST /format    JSON {"sql": ..., options...} or raw SQL with options as query parameters
  GET  /dialects  registered dialects
  GET  /healthz   liveness check

Formatting flags and config set the defaults each request starts from.`,
		Example: `  # Serve on the default address
  sqlfmt serve

  # Serve PostgreSQL formatting on all interfaces
  sqlfmt serve --addr :8080 -l postgres

  # Format a query
  curl -s --data-binary 'select a from t' 'localhost:8765/format?uppercase=true'`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	addFormattingFlags(cmd)
	cmd.Flags().String("addr", "", "Listen address (default "+config.DefaultServeAddr+")")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	// Reject bad defaults before accepting requests.
	if _, err := cfg.Formatter(nil); err != nil {
		return err
	}

	srv := server.New(server.Config{
		Addr:     cfg.Serve.Addr,
		Defaults: cfg.Formatting,
		Logger:   cmdCtx.Logger,
	})

	cmdCtx.Renderer.Muted(fmt.Sprintf("Serving on http://%s (press Ctrl+C to stop)", cfg.Serve.Addr))
	return srv.Serve(cmd.Context())
}

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/sqlfmt/internal/cli/output"
	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
	"github.com/spf13/cobra"
)

// DialectsOptions holds options for the dialects command.
type DialectsOptions struct {
	File string
}

// DialectInfo summarizes a dialect for display.
type DialectInfo struct {
	Name         string   `json:"name"`
	Aliases      []string `json:"aliases"`
	Placeholders []string `json:"placeholders"`
	Comments     []string `json:"comments"`
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	opts := &DialectsOptions{}

	cmd := &cobra.Command{
		Use:   "dialects",
		Short: "List supported SQL dialects",
		Long: `List the registered SQL dialects with their aliases, placeholder styles
and comment markers.

With --file, a YAML dialect definition is validated and described instead.`,
		Example: `  # List dialects
  sqlfmt dialects

  # Check a custom dialect definition
  sqlfmt dialects --file dialects/acme.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDialects(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Validate and describe a YAML dialect file")

	return cmd
}

func runDialects(cmd *cobra.Command, opts *DialectsOptions) error {
	r := NewCommandContext(cmd).Renderer

	dialects := dialect.All()
	if opts.File != "" {
		d, err := dialect.LoadFile(opts.File)
		if err != nil {
			return err
		}
		dialects = []*dialect.Dialect{d}
	}

	infos := make([]DialectInfo, 0, len(dialects))
	for _, d := range dialects {
		infos = append(infos, describeDialect(d))
	}

	switch r.Mode() {
	case output.ModeJSON:
		if err := r.JSON(infos); err != nil {
			return err
		}
	case output.ModeMarkdown:
		renderDialectTable(r.Writer(), infos, true)
	default:
		renderDialectTable(r.Writer(), infos, false)
	}

	if opts.File != "" {
		r.Success(fmt.Sprintf("%s is a valid dialect file", opts.File))
	}
	return nil
}

func describeDialect(d *dialect.Dialect) DialectInfo {
	info := DialectInfo{
		Name:         d.Name,
		Aliases:      append([]string{}, d.Aliases...),
		Placeholders: []string{},
		Comments:     append([]string{}, d.LineComments()...),
	}
	for _, p := range d.Placeholders() {
		if p.Bare {
			info.Placeholders = append(info.Placeholders, p.Sentinel)
		}
		if p.Numbered {
			info.Placeholders = append(info.Placeholders, p.Sentinel+"1")
		}
		if p.Named {
			info.Placeholders = append(info.Placeholders, p.Sentinel+"name")
		}
	}
	if bc, _ := d.BlockComment(); !bc.IsZero() {
		info.Comments = append(info.Comments, bc.Open+" "+bc.Close)
	}
	return info
}

func renderDialectTable(w io.Writer, infos []DialectInfo, markdown bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Aliases", "Placeholders", "Comments"})
	for _, info := range infos {
		t.AppendRow(table.Row{
			info.Name,
			strings.Join(info.Aliases, ", "),
			strings.Join(info.Placeholders, " "),
			strings.Join(info.Comments, " "),
		})
	}
	if markdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}

// dialectNames returns registered dialect names and aliases for completion.
func dialectNames() []string {
	var names []string
	for _, d := range dialect.All() {
		names = append(names, d.Name)
		names = append(names, d.Aliases...)
	}
	return names
}

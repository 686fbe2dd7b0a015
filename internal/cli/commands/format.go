package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/leapstack-labs/sqlfmt/internal/cli/output"
	"github.com/leapstack-labs/sqlfmt/internal/watch"
	"github.com/leapstack-labs/sqlfmt/pkg/sqlfmt"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ErrUnformatted is returned by --check when an input would be reformatted.
var ErrUnformatted = errors.New("input is not formatted")

// stdinName labels standard input in reports and diffs.
const stdinName = "<stdin>"

// FormatOptions holds the switches of the format command.
type FormatOptions struct {
	Write bool
	Check bool
	Diff  bool
	Watch bool
}

// NewFormatCommand creates the format command.
func NewFormatCommand() *cobra.Command {
	opts := &FormatOptions{}

	cmd := &cobra.Command{
		Use:     "format [files...]",
		Aliases: []string{"fmt"},
		Short:   "Format SQL files or standard input",
		Long: `Format SQL read from files, directories or standard input.

Directories are searched recursively for *.sql files. With no arguments, or
with "-", SQL is read from standard input and written to standard output.`,
		Example: `  # Format stdin
  echo "select a,b from t" | sqlfmt format

  # Rewrite every SQL file under models/ using PostgreSQL rules
  sqlfmt format -l postgres -w models/

  # Fail in CI when files are not formatted, showing what would change
  sqlfmt format --check --diff queries/

  # Substitute placeholders
  sqlfmt format --param id=42 query.sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, opts)
		},
	}

	addFormattingFlags(cmd)
	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "Rewrite files in place")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "Exit non-zero if any input is not formatted")
	cmd.Flags().BoolVar(&opts.Diff, "diff", false, "Print unified diffs instead of formatted SQL")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Re-format files when they change (requires --write)")
	cmd.Flags().IntP("jobs", "j", 0, "Files formatted in parallel (default: number of CPUs)")
	cmd.MarkFlagsMutuallyExclusive("write", "check")

	return cmd
}

// fileResult is the outcome of formatting one input.
type fileResult struct {
	Path      string `json:"path"`
	Changed   bool   `json:"changed"`
	Diff      string `json:"diff,omitempty"`
	Formatted string `json:"formatted,omitempty"`

	original  string
	formatted string
}

// formatReport is the JSON output of the format command.
type formatReport struct {
	Files   []fileResult `json:"files"`
	Changed int          `json:"changed"`
}

func runFormat(cmd *cobra.Command, args []string, opts *FormatOptions) error {
	cmdCtx := NewCommandContext(cmd)

	fm, err := cmdCtx.Cfg.Formatter(cmdCtx.Logger)
	if err != nil {
		return err
	}

	if opts.Watch && !opts.Write {
		return errors.New("--watch requires --write")
	}

	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		if opts.Write {
			return errors.New("--write needs file arguments")
		}
		res, err := formatStdin(cmd.InOrStdin(), fm)
		if err != nil {
			return err
		}
		return report(cmdCtx, []fileResult{res}, opts)
	}

	files, err := expandPaths(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .sql files found in %s", strings.Join(args, ", "))
	}
	cmdCtx.Logger.Debug("formatting files", "count", len(files), "language", fm.Dialect().Name)

	results, err := formatFiles(cmd.Context(), fm, files, jobs(cmdCtx.Cfg.Jobs))
	if err != nil {
		return err
	}
	if err := report(cmdCtx, results, opts); err != nil {
		return err
	}

	if opts.Watch {
		return watchFiles(cmd.Context(), cmdCtx, fm, args)
	}
	return nil
}

func jobs(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

func formatStdin(in io.Reader, fm *sqlfmt.Formatter) (fileResult, error) {
	if output.IsTerminal(in) {
		return fileResult{}, errors.New("no input: pass files or pipe SQL on stdin")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return fileResult{}, fmt.Errorf("failed to read stdin: %w", err)
	}
	return newResult(stdinName, string(data), fm), nil
}

func newResult(path, src string, fm *sqlfmt.Formatter) fileResult {
	formatted := fm.Format(src)
	return fileResult{
		Path:      path,
		Changed:   formatted != src,
		original:  src,
		formatted: formatted,
	}
}

func formatFile(path string, fm *sqlfmt.Formatter) (fileResult, error) {
	data, err := os.ReadFile(path) //nolint:gosec // paths come from the command line
	if err != nil {
		return fileResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return newResult(path, string(data), fm), nil
}

// formatFiles formats files concurrently, keeping results in input order.
func formatFiles(ctx context.Context, fm *sqlfmt.Formatter, files []string, limit int) ([]fileResult, error) {
	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := formatFile(path, fm)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// expandPaths resolves arguments to files. Directories contribute their
// *.sql files recursively, skipping hidden directories.
func expandPaths(args []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(filepath.Clean(arg))
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != arg && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if watch.IsSQLFile(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// report prints results according to the switches and applies --write.
func report(cmdCtx *CommandContext, results []fileResult, opts *FormatOptions) error {
	r := cmdCtx.Renderer

	changed := 0
	for i := range results {
		res := &results[i]
		if !res.Changed {
			continue
		}
		changed++
		if opts.Diff {
			res.Diff = unifiedDiff(res)
		}
		if opts.Write {
			if err := writeFormatted(res.Path, res.formatted); err != nil {
				return err
			}
			cmdCtx.Logger.Debug("rewrote file", "path", res.Path)
		}
	}

	listOnly := opts.Write || opts.Check
	switch {
	case r.Mode() == output.ModeJSON:
		if !listOnly && !opts.Diff {
			for i := range results {
				results[i].Formatted = results[i].formatted
			}
		}
		if err := r.JSON(formatReport{Files: results, Changed: changed}); err != nil {
			return err
		}
	case opts.Diff:
		for _, res := range results {
			if res.Changed {
				renderDiff(r, res.Diff)
			}
		}
	case listOnly:
		for _, res := range results {
			if res.Changed {
				r.Println(res.Path)
			}
		}
	default:
		for _, res := range results {
			_, _ = io.WriteString(r.Writer(), res.formatted)
		}
	}

	switch {
	case opts.Check && changed > 0:
		r.Warning(fmt.Sprintf("%d of %d %s would be reformatted", changed, len(results), plural(len(results), "file")))
		return fmt.Errorf("%w: %d %s", ErrUnformatted, changed, plural(changed, "file"))
	case opts.Check:
		r.Success(fmt.Sprintf("%d %s already formatted", len(results), plural(len(results), "file")))
	case opts.Write:
		r.Success(fmt.Sprintf("formatted %d %s (%d unchanged)", changed, plural(changed, "file"), len(results)-changed))
	}
	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func writeFormatted(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func unifiedDiff(res *fileResult) string {
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(res.original),
		B:        difflib.SplitLines(res.formatted),
		FromFile: res.Path,
		ToFile:   res.Path + " (formatted)",
		Context:  3,
	})
	return diff
}

// renderDiff prints a diff, colored on terminals and fenced in markdown.
func renderDiff(r *output.Renderer, diff string) {
	if r.Mode() != output.ModeText {
		r.Println(output.FormatCodeBlock("diff", diff))
		return
	}
	styles := r.Styles()
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		text := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			text = styles.Bold.Render(text)
		case strings.HasPrefix(line, "@@"):
			text = styles.Hunk.Render(text)
		case strings.HasPrefix(line, "+"):
			text = styles.Added.Render(text)
		case strings.HasPrefix(line, "-"):
			text = styles.Removed.Render(text)
		}
		r.Println(text)
	}
}

// watchFiles re-formats changed files in place until ctx is cancelled.
func watchFiles(ctx context.Context, cmdCtx *CommandContext, fm *sqlfmt.Formatter, roots []string) error {
	w, err := watch.New(roots, watch.Options{
		Debounce: cmdCtx.Cfg.Watch.Debounce,
		Logger:   cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("failed to watch files: %w", err)
	}
	defer func() { _ = w.Close() }()

	r := cmdCtx.Renderer
	r.Muted("Watching for changes. Press Ctrl+C to stop.")

	return w.Run(ctx, func(_ context.Context, paths []string) {
		for _, path := range paths {
			res, err := formatFile(path, fm)
			if err != nil {
				// Editors briefly remove files while saving.
				cmdCtx.Logger.Debug("skipping file", "path", path, "error", err)
				continue
			}
			if !res.Changed {
				continue
			}
			if err := writeFormatted(path, res.formatted); err != nil {
				r.Error(err.Error())
				continue
			}
			r.Success("formatted " + path)
		}
	})
}

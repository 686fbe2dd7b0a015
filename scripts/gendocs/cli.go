package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/sqlfmt/internal/cli"
	"github.com/leapstack-labs/sqlfmt/internal/cli/config"
	sharedcfg "github.com/leapstack-labs/sqlfmt/internal/config"
	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// keyNotes describe config keys that no flag sets.
var keyNotes = map[string]string{
	"watch.debounce": "Quiet period before `format --watch` reformats changed files",
}

// formattingSample is the query every formatting example is rendered from.
const formattingSample = "select id, name, case when total between 10 and 20 then 'mid' else 'other' end as band " +
	"from orders where status = :status and region in ('eu', 'us') order by id; select 1"

// formattingExample shows the effect of one flag on formattingSample.
type formattingExample struct {
	flag   string
	args   string
	mutate func(*sharedcfg.Formatting)
}

var formattingExamples = []formattingExample{
	{"indent", "4", func(f *sharedcfg.Formatting) { f.Indent = 4 }},
	{"uppercase", "", func(f *sharedcfg.Formatting) { f.Uppercase = true }},
	{"lines-between-queries", "2", func(f *sharedcfg.Formatting) { f.LinesBetweenQueries = 2 }},
	{"inline-width", "20", func(f *sharedcfg.Formatting) { f.InlineWidth = 20 }},
	{"break-between-and", "", func(f *sharedcfg.Formatting) { f.BreakBetweenAnd = true }},
	{"param", "status=\"'paid'\"", func(f *sharedcfg.Formatting) { f.Params = map[string]any{"status": "'paid'"} }},
}

// generateCLIDocs writes index.md, formatting.md and one page per command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	flags := collectFlags(root)

	pages := map[string][]byte{
		"index.md": cliIndex(root, flags),
	}
	formatting, err := formattingPage(flags)
	if err != nil {
		return err
	}
	pages["formatting.md"] = formatting
	for _, cmd := range visibleCommands(root) {
		pages[cmd.Name()+".md"] = commandPage(cmd)
	}

	for name, data := range pages {
		if err := os.WriteFile(filepath.Join(outDir, name), data, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		log.Printf("  Generated %s", name)
	}
	return nil
}

func visibleCommands(root *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || cmd.Name() == "__complete" {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

// collectFlags indexes every flag of the command tree by name. Persistent
// flags of the root come first, so they win over a local flag of the same name.
func collectFlags(root *cobra.Command) map[string]*pflag.Flag {
	flags := make(map[string]*pflag.Flag)
	add := func(f *pflag.Flag) {
		if _, ok := flags[f.Name]; !ok {
			flags[f.Name] = f
		}
	}
	root.PersistentFlags().VisitAll(add)
	for _, cmd := range root.Commands() {
		cmd.LocalFlags().VisitAll(add)
	}
	return flags
}

func cliIndex(root *cobra.Command, flags map[string]*pflag.Flag) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for sqlfmt")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(root.Long)
	w.CodeBlock("bash", "go install github.com/leapstack-labs/sqlfmt/cmd/sqlfmt@latest")

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range visibleCommands(root) {
		link := fmt.Sprintf("[%s](%s.md)", InlineCode(cmd.Name()), cmd.Name())
		rows = append(rows, []string{link, cleanDescription(cmd.Short)})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Global Options")
	writeFlagsTable(w, root.PersistentFlags())

	w.Header(2, "Configuration")
	w.Paragraph("Settings are read from " + InlineCode(".sqlfmt.yaml") + " (searched upward from the working " +
		"directory), then " + InlineCode(config.EnvPrefix) + " environment variables, then flags. " +
		"Later sources win. See [formatting.md](formatting.md) for what each formatting option does.")
	rows = rows[:0]
	for _, key := range config.Keys() {
		flag, desc := "", keyNotes[key.Name]
		if f, ok := flags[key.Flag]; ok {
			flag = InlineCode("--" + f.Name)
			desc = cleanDescription(f.Usage)
		}
		def := ""
		if key.Default != nil {
			def = InlineCode(fmt.Sprint(key.Default))
		}
		rows = append(rows, []string{InlineCode(key.Name), InlineCode(key.Env), flag, def, desc})
	}
	w.Table([]string{"Key", "Environment", "Flag", "Default", "Description"}, rows)

	w.Header(2, "Dialects")
	rows = rows[:0]
	for _, d := range dialect.All() {
		link := fmt.Sprintf("[%s](../dialects.md#%s)", InlineCode(d.Name), anchor(d.Name))
		rows = append(rows, []string{link, codeList(d.Aliases)})
	}
	w.Table([]string{"Language", "Aliases"}, rows)

	w.Header(2, "Exit Codes")
	w.Table([]string{"Code", "Meaning"}, [][]string{
		{InlineCode("0"), "Success"},
		{InlineCode("1"), "Error, or " + InlineCode("format --check") + " found unformatted input"},
	})

	return w.Bytes()
}

// formattingPage renders formattingSample with the defaults and once per
// formatting flag, through the same option path the CLI uses.
func formattingPage(flags map[string]*pflag.Flag) ([]byte, error) {
	w := NewMarkdownWriter()
	w.Frontmatter("Formatting Options", "How each sqlfmt formatting option changes the output")
	w.GeneratedMarker()

	w.Header(1, "Formatting Options")
	w.Paragraph("Every example formats the same query:")
	w.CodeBlock("sql", formattingSample)

	render := func(mutate func(*sharedcfg.Formatting)) (string, error) {
		f := sharedcfg.DefaultFormatting()
		if mutate != nil {
			mutate(&f)
		}
		fm, err := f.Formatter(nil)
		if err != nil {
			return "", err
		}
		return fm.Format(formattingSample), nil
	}

	out, err := render(nil)
	if err != nil {
		return nil, err
	}
	w.Header(2, "Defaults")
	w.CodeBlock("sql", out)

	for _, ex := range formattingExamples {
		out, err := render(ex.mutate)
		if err != nil {
			return nil, fmt.Errorf("example --%s: %w", ex.flag, err)
		}
		invocation := strings.TrimSpace("--" + ex.flag + " " + ex.args)
		w.Header(2, InlineCode(invocation))
		if f, ok := flags[ex.flag]; ok {
			w.Paragraph(cleanDescription(f.Usage) + ".")
		}
		if key, ok := config.FlagKey(ex.flag); ok {
			w.Paragraph("Config key " + InlineCode(key) + ", environment " + InlineCode(config.EnvVar(key)) + ".")
		}
		w.CodeBlock("sql", out)
	}

	return w.Bytes(), nil
}

func commandPage(cmd *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}

	w.Header(2, "Usage")
	useLine := cmd.UseLine()
	if !strings.HasPrefix(useLine, "sqlfmt") {
		useLine = "sqlfmt " + useLine
	}
	w.CodeBlock("bash", useLine)
	if len(cmd.Aliases) > 0 {
		w.Paragraph("Aliases: " + codeList(cmd.Aliases))
	}

	if cmd.HasLocalFlags() {
		w.Header(2, "Options")
		writeFlagsTable(w, cmd.LocalFlags())
	}
	if cmd.HasInheritedFlags() {
		w.Header(2, "Global Options")
		writeFlagsTable(w, cmd.InheritedFlags())
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", cleanExample(cmd.Example))
	}

	return w.Bytes()
}

// writeFlagsTable writes a table of flags. Flags that carry configuration
// name the config key they set.
func writeFlagsTable(w *MarkdownWriter, flags *pflag.FlagSet) {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}

		short := ""
		if f.Shorthand != "" {
			short = "-" + f.Shorthand
		}

		defVal := f.DefValue
		switch {
		case defVal == "" || defVal == "[]" || defVal == "0" || defVal == "false":
			defVal = ""
		case f.Value.Type() == "string":
			defVal = InlineCode(defVal)
		}

		key := ""
		if k, ok := config.FlagKey(f.Name); ok {
			key = InlineCode(k)
		}

		rows = append(rows, []string{InlineCode("--" + f.Name), short, defVal, key, cleanDescription(f.Usage)})
	})

	w.Table([]string{"Option", "Short", "Default", "Config", "Description"}, rows)
}

// anchor returns the heading anchor markdown renderers give a dialect name.
func anchor(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' {
			return -1
		}
		return r
	}, strings.ToLower(name))
}

// cleanExample removes common leading whitespace from example text.
func cleanExample(example string) string {
	lines := strings.Split(example, "\n")

	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent <= 0 {
		return strings.TrimSpace(example)
	}

	for i, line := range lines {
		if len(line) >= minIndent {
			lines[i] = line[minIndent:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/ecotrack/renderer"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
	format string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a full report or the raw snapshot" }
func (*exportCmd) Usage() string {
	return `eco export [-f md|html|json] [-o <file>]

  Exports the dashboard, shops, intel and notes as one report. The format is
  taken from -f, or from the extension of the output file. json exports the
  snapshot itself, which eco import reads back.

  Example:
    eco export -o report.html
    eco export -f json > backup.json
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "output file (default stdout)")
	f.StringVar(&c.format, "f", "", "output format: md, html or json")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	format := c.format
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(c.output), ".")
	}
	if format == "" || format == "markdown" {
		format = "md"
	}

	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	st := s.State()
	var content []byte
	switch format {
	case "md":
		content = []byte(renderer.Report(st))
	case "html", "htm":
		title := st.Profile.DisplayName
		if title == "" {
			title = "Economy Report"
		}
		page, err := renderer.HTML(title, renderer.Report(st))
		if err != nil {
			return exitStatus("rendering the report", err)
		}
		content = []byte(page)
	case "json":
		content, err = s.Export()
		if err != nil {
			return exitStatus("encoding the snapshot", err)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown export format %q\n", format)
		return subcommands.ExitUsageError
	}

	if c.output == "" {
		output.Write(content)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, content, 0644); err != nil {
		return exitStatus("writing the export", err)
	}
	fmt.Fprintf(os.Stderr, "Exported to %s\n", c.output)
	return subcommands.ExitSuccess
}

type importCmd struct {
	yes bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the tracker content with a snapshot file" }
func (*importCmd) Usage() string {
	return `eco import -y <file>

  Replaces everything with the content of a snapshot file, as written by
  eco export -f json. Files saved by earlier releases are migrated.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "confirm that the current content is replaced")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Expected exactly one file to import")
		return subcommands.ExitUsageError
	}
	if !c.yes {
		fmt.Fprintln(os.Stderr, "Refusing to replace the tracker content without -y")
		return subcommands.ExitUsageError
	}
	data, err := os.ReadFile(f.Arg(0))
	if err != nil {
		return exitStatus("reading the snapshot", err)
	}

	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	migrated, err := s.Import(ctx, data)
	if err != nil {
		return exitStatus("importing the snapshot", err)
	}
	if migrated {
		fmt.Fprintln(os.Stderr, "Migrated a snapshot from an earlier release")
	}
	return subcommands.ExitSuccess
}

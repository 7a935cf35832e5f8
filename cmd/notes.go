package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/ecotrack/renderer"
	"github.com/google/subcommands"
)

type notesCmd struct{}

func (*notesCmd) Name() string     { return "notes" }
func (*notesCmd) Synopsis() string { return "list notes" }
func (*notesCmd) Usage() string {
	return `eco notes
`
}

func (*notesCmd) SetFlags(f *flag.FlagSet) {}

func (*notesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	printMarkdown(renderer.NoteCards(s.State().Notes))
	return subcommands.ExitSuccess
}

type addNoteCmd struct {
	title string
	body  string
}

func (*addNoteCmd) Name() string     { return "add-note" }
func (*addNoteCmd) Synopsis() string { return "write a note" }
func (*addNoteCmd) Usage() string {
	return `eco add-note -t <title> [-b <body> | -b -]

  Writes a note. With -b - the body is read from stdin.

  Example:
    eco add-note -t "Iron farm" -b "Drops 400 ingots an hour"
    cat journal.txt | eco add-note -t "2023-10-02" -b -
`
}

func (c *addNoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "t", "", "title of the note")
	f.StringVar(&c.body, "b", "", "body of the note, - to read it from stdin")
}

func (c *addNoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	body := c.body
	if body == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return exitStatus("reading the note body", err)
		}
		body = string(b)
	}

	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	n, err := s.AddNote(ctx, c.title, body)
	if err != nil {
		return exitStatus("adding the note", err)
	}
	fmt.Fprintf(os.Stderr, "Saved note %q with id %d\n", n.Title, n.ID)
	return subcommands.ExitSuccess
}

type rmNoteCmd struct{}

func (*rmNoteCmd) Name() string     { return "rm-note" }
func (*rmNoteCmd) Synopsis() string { return "delete a note" }
func (*rmNoteCmd) Usage() string {
	return `eco rm-note <id>
`
}

func (*rmNoteCmd) SetFlags(f *flag.FlagSet) {}

func (*rmNoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseID(f)
	if err != nil {
		return exitStatus("reading the note id", err)
	}

	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	if err := s.DeleteNote(ctx, id); err != nil {
		return exitStatus("deleting the note", err)
	}
	return subcommands.ExitSuccess
}

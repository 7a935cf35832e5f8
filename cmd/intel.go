package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ecotrack/renderer"
	"github.com/google/subcommands"
)

type intelCmd struct{}

func (*intelCmd) Name() string     { return "intel" }
func (*intelCmd) Synopsis() string { return "list tracked competitors" }
func (*intelCmd) Usage() string {
	return `eco intel

  Lists the competitors you keep an eye on.
`
}

func (*intelCmd) SetFlags(f *flag.FlagSet) {}

func (*intelCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	printMarkdown(renderer.IntelCards(s.State().Intel))
	return subcommands.ExitSuccess
}

type addIntelCmd struct {
	name   string
	coords string
	notes  string
}

func (*addIntelCmd) Name() string     { return "add-intel" }
func (*addIntelCmd) Synopsis() string { return "track a competitor" }
func (*addIntelCmd) Usage() string {
	return `eco add-intel -name <name> [-coords <coords>] [-n <notes>]

  Example:
    eco add-intel -name RichGuy123 -coords "120 64 -300" -n "Undercuts on Sundays"
`
}

func (c *addIntelCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "name of the competitor")
	f.StringVar(&c.coords, "coords", "", "location of their shop")
	f.StringVar(&c.notes, "n", "", "free notes")
}

func (c *addIntelCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	e, err := s.AddIntel(ctx, c.name, c.coords, c.notes)
	if err != nil {
		return exitStatus("adding intel", err)
	}
	fmt.Fprintf(os.Stderr, "Tracking %q with id %d\n", e.Name, e.ID)
	return subcommands.ExitSuccess
}

type rmIntelCmd struct{}

func (*rmIntelCmd) Name() string     { return "rm-intel" }
func (*rmIntelCmd) Synopsis() string { return "stop tracking a competitor" }
func (*rmIntelCmd) Usage() string {
	return `eco rm-intel <id>
`
}

func (*rmIntelCmd) SetFlags(f *flag.FlagSet) {}

func (*rmIntelCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseID(f)
	if err != nil {
		return exitStatus("reading the intel id", err)
	}

	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	if err := s.DeleteIntel(ctx, id); err != nil {
		return exitStatus("deleting intel", err)
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"

	"github.com/etnz/ecotrack/renderer"
	"github.com/google/subcommands"
)

type profileCmd struct {
	name string
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "show or set the display name" }
func (*profileCmd) Usage() string {
	return `eco profile [-name <display name>]

  Without -name, shows the profile. With -name, sets the display name shown on
  the dashboard.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "new display name")
}

func (c *profileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	if c.name == "" {
		printMarkdown(renderer.Summary(s.State()))
		return subcommands.ExitSuccess
	}
	if err := s.UpdateProfile(ctx, c.name); err != nil {
		return exitStatus("updating the profile", err)
	}
	return subcommands.ExitSuccess
}

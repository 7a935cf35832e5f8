package cmd

import (
	"context"
	"flag"

	"github.com/etnz/ecotrack/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string { return "dashboard" }
func (*dashboardCmd) Synopsis() string {
	return "display balance, net worth, profit and recent transactions"
}
func (*dashboardCmd) Usage() string {
	return `eco dashboard

  Displays the balance, the net worth (balance plus the value of the shop
  stock), the total profit of the listed items, the last transactions and the
  balance history.
`
}

func (*dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (*dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	printMarkdown(renderer.NewDashboard(s.State()).Markdown())
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ecotrack"
	"github.com/etnz/ecotrack/renderer"
	"github.com/google/subcommands"
)

type riskCmd struct {
	gear   string
	reward string
}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "rate the risk of a trip" }
func (*riskCmd) Usage() string {
	return `eco risk -g <gear cost> -r <expected reward>

  Compares the expected reward of a trip with the cost of the gear you could
  lose. A reward above 3 times the gear is a low risk, above 1 time a medium
  risk, anything else a high risk. The thresholds are set with
  ECOTRACK_RISK_LOW and ECOTRACK_RISK_MEDIUM.
`
}

func (c *riskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.gear, "g", "", "cost of the gear at stake")
	f.StringVar(&c.reward, "r", "", "expected reward")
}

func (c *riskCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Missing or invalid values count as zero, a zero gear cost is reported below.
	gear, _ := ecotrack.ParseMoney(c.gear)
	reward, _ := ecotrack.ParseMoney(c.reward)

	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	a, err := s.Risk(gear, reward)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Enter a positive gear cost to rate the risk.")
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.Risk(a))
	return subcommands.ExitSuccess
}

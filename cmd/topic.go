package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/ecotrack/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the eco manual" }
func (*topicCmd) Usage() string {
	return `eco topic [-l] [<topic>...]

  Prints the manual pages named on the command line, or the manual index when
  none is. '*' prints every page, -l only their names.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "l", false, "list the topic names")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		names, err := docs.GetAllTopics()
		if err != nil {
			return exitStatus("listing the manual", err)
		}
		fmt.Fprintln(output, strings.Join(names, "\n"))
		return subcommands.ExitSuccess
	}

	pages := f.Args()
	if len(pages) == 0 {
		pages = []string{"readme"}
	}
	md, err := docs.GetTopics(pages...)
	if err != nil {
		return exitStatus("reading the manual", err)
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// Command eco tracks an in-game economy: balance, shop listings, competitor
// intel and notes.
//
// Shell completion is installed with COMP_INSTALL=1 eco.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/ecotrack/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion().Complete("eco")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the subcommands and their flags to the shell.
func completion() *complete.Command {
	root := &complete.Command{
		Sub: make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{
			"home":    predict.Dirs("*"),
			"backend": predict.Set{cmd.BackendFile, cmd.BackendSQLite},
			"key":     predict.Something,
			"v":       predict.Nothing,
			"raw":     predict.Nothing,
		},
	}
	for _, c := range cmd.Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		f.VisitAll(func(fl *flag.Flag) {
			sub.Flags[fl.Name] = predict.Something
		})
		root.Sub[c.Name()] = sub
	}
	root.Sub["import"].Args = predict.Files("*.json")
	root.Sub["add-tx"].Flags["f"] = predict.Files("*.jsonl")
	root.Sub["export"].Flags["o"] = predict.Files("*")
	root.Sub["export"].Flags["f"] = predict.Set{"md", "html", "json"}
	return root
}

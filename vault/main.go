// The vault command tracks personal cash, loans and recurring bills from the
// terminal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/mfalme0/monies/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion for the subcommands and exits when
// invoked by the shell's completion hook.
func completion() {
	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	sub["sync"] = &complete.Command{Flags: map[string]complete.Predictor{"f": predict.Files("*.json")}}
	sub["export"] = &complete.Command{Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}}

	root := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"vault": predict.Dirs("*"),
		},
	}
	root.Complete("vault")
}

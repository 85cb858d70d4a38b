package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mfalme0/monies"
	"github.com/mfalme0/monies/renderer"
)

// breakdownCmd holds the flags for the 'breakdown' subcommand.
type breakdownCmd struct{}

func (*breakdownCmd) Name() string           { return "breakdown" }
func (*breakdownCmd) Synopsis() string       { return "display spending per category" }
func (*breakdownCmd) SetFlags(*flag.FlagSet) {}
func (*breakdownCmd) Usage() string {
	return `vault breakdown

  Displays spending per category, merging actual transactions with committed
  recurring bills so nothing is double counted.
`
}

func (c *breakdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening vault %q: %v\n", *vaultDir, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BreakdownMarkdown(monies.NewBreakdown(ledger)))
	return subcommands.ExitSuccess
}

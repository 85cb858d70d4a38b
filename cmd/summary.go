package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/mfalme0/monies"
	"github.com/mfalme0/monies/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string           { return "summary" }
func (*summaryCmd) Synopsis() string       { return "display balances, debt, bills and the safe-to-spend figure" }
func (*summaryCmd) SetFlags(*flag.FlagSet) {}
func (*summaryCmd) Usage() string {
	return `vault summary

  Displays the at-a-glance state of the vault: total balance, outstanding
  debt, this month's bills, the safe-to-spend effective balance and the
  burn rate with its health band.
`
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening vault %q: %v\n", *vaultDir, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(monies.NewSummary(ledger, time.Now())))
	return subcommands.ExitSuccess
}

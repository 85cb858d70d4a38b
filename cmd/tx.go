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

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	count    int
	category string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, newest first" }
func (*txCmd) Usage() string {
	return `vault tx [-n <count>] [-c <category>]

  Lists transactions, newest first.

Usage Examples:
$ vault tx -n 20 -c food

`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.count, "n", 10, "Number of transactions to show, 0 for all.")
	f.StringVar(&c.category, "c", "", "Only show transactions in this category.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category != "" {
		if _, ok := monies.CategoryLabels[c.category]; !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown category %q\n", c.category)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening vault %q: %v\n", *vaultDir, err)
		return subcommands.ExitFailure
	}

	var filters []func(monies.Transaction) bool
	if c.category != "" {
		filters = append(filters, monies.ByCategory(c.category))
	}

	var txs []monies.Transaction
	for tx := range ledger.Transactions(filters...) {
		txs = append(txs, tx)
		if c.count > 0 && len(txs) == c.count {
			break
		}
	}

	printMarkdown(renderer.TransactionsMarkdown(txs))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mfalme0/monies"
)

// syncCmd holds the flags for the 'sync' subcommand.
type syncCmd struct {
	file string
}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "compare the ledger with the latest M-PESA SMS balance" }
func (*syncCmd) Usage() string {
	return `vault sync -f <inbox.json>

  Reads an SMS inbox export and looks for the latest M-PESA balance
  confirmation, then prints it next to the ledger's own total. Nothing is
  written to the ledger; the reading is advice only.

Usage Examples:
$ vault sync -f inbox.json

`
}

func (c *syncCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "SMS inbox export, a JSON array of messages newest first.")
}

func (c *syncCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: flag -f is required")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	reported, found, err := monies.LatestSMSBalance(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	if !found {
		fmt.Println("No M-PESA balance found in the export.")
		return subcommands.ExitSuccess
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening vault %q: %v\n", *vaultDir, err)
		return subcommands.ExitFailure
	}
	var total monies.Money
	for _, acc := range ledger.Accounts() {
		total = total.Add(acc.Balance)
	}

	fmt.Printf("M-PESA reports %s; the ledger has %s.\n", reported, total)
	if !reported.Equal(total) {
		fmt.Println("The figures disagree: record the missing income or expense.")
	}
	return subcommands.ExitSuccess
}

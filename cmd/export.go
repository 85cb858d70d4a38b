package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mfalme0/monies"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the transaction log as CSV" }
func (*exportCmd) Usage() string {
	return `vault export [-o <file>]

  Writes the transaction log as CSV, newest first, to the given file or to
  standard output.

Usage Examples:
$ vault export -o transactions.csv

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to standard output.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening vault %q: %v\n", *vaultDir, err)
		return subcommands.ExitFailure
	}

	w := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := monies.ExportCSV(w, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Exported transactions to %s.\n", c.output)
	}
	return subcommands.ExitSuccess
}

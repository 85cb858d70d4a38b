package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mfalme0/monies/renderer"
)

// loanCmd holds the flags for the 'loan' subcommand.
type loanCmd struct {
	from   string
	amount string
}

func (*loanCmd) Name() string     { return "loan" }
func (*loanCmd) Synopsis() string { return "record money borrowed from someone" }
func (*loanCmd) Usage() string {
	return `vault loan -from <name> -amount <amount>

  Registers a peer loan. The principal is credited to your first account and
  tracked as outstanding debt until repaid.

Usage Examples:
$ vault loan -from Wanjiku -amount 2000

`
}

func (c *loanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Who lent you the money.")
	f.StringVar(&c.amount, "amount", "", "Principal borrowed.")
}

func (c *loanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" {
		fmt.Fprintln(os.Stderr, "Error: flag -from is required")
		return subcommands.ExitUsageError
	}
	amount, ok := parseAmountFlag("amount", c.amount)
	if !ok {
		return subcommands.ExitUsageError
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening vault %q: %v\n", *vaultDir, err)
		return subcommands.ExitFailure
	}
	if err := ledger.RecordLoan(c.from, amount); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving vault: %v\n", err)
		return subcommands.ExitFailure
	}

	loans := ledger.Loans()
	fmt.Printf("Recorded loan of %s from %q (id %s).\n", amount, c.from, loans[len(loans)-1].ID)
	return subcommands.ExitSuccess
}

// loansCmd lists the loan book.
type loansCmd struct{}

func (*loansCmd) Name() string           { return "loans" }
func (*loansCmd) Synopsis() string       { return "list loans with their ids and outstanding balances" }
func (*loansCmd) SetFlags(*flag.FlagSet) {}
func (*loansCmd) Usage() string {
	return `vault loans

  Lists every loan with its id, outstanding balance and settlement status.
  Use the id with 'vault repay'.
`
}

func (c *loansCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening vault %q: %v\n", *vaultDir, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.LoansMarkdown(ledger.Loans()))
	return subcommands.ExitSuccess
}

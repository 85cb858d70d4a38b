package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// incomeCmd holds the flags for the 'income' subcommand.
type incomeCmd struct {
	account string
	amount  string
	note    string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record money received into an account" }
func (*incomeCmd) Usage() string {
	return `vault income -account <name> -amount <amount> [-note <text>]

  Credits the amount to the named account, creating the account if it does
  not exist yet. Account names match exactly, including case.

Usage Examples:
$ vault income -account Equity -amount 45000 -note "September salary"

`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account receiving the money.")
	f.StringVar(&c.amount, "amount", "", "Amount received.")
	f.StringVar(&c.note, "note", "", "Optional note.")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "Error: flag -account is required")
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
	if err := ledger.RecordIncome(c.account, amount, c.note); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving vault: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s into %q.\n", amount, c.account)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mfalme0/monies"
)

// expenseCmd holds the flags for the 'expense' subcommand.
type expenseCmd struct {
	category string
	amount   string
	note     string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record money spent" }
func (*expenseCmd) Usage() string {
	return `vault expense -amount <amount> [-category <category>] [-note <text>]

  Withdraws the amount from your accounts in declared order: the first
  account is drained before the next one is touched. Categories: rent,
  utilities, food, entertainment, misc.

Usage Examples:
$ vault expense -category food -amount 1200 -note "Groceries"

`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", monies.CategoryMisc, "Spending category.")
	f.StringVar(&c.amount, "amount", "", "Amount spent.")
	f.StringVar(&c.note, "note", "", "Optional note.")
}

// expenseCategories are the categories a user may spend against directly.
// Loan flows get their categories from the loan and repay commands.
var expenseCategories = map[string]bool{
	monies.CategoryRent:          true,
	monies.CategoryUtilities:     true,
	monies.CategoryFood:          true,
	monies.CategoryEntertainment: true,
	monies.CategoryMisc:          true,
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !expenseCategories[c.category] {
		fmt.Fprintf(os.Stderr, "Error: unknown category %q\n", c.category)
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
	if err := ledger.RecordExpense(c.category, amount, c.note); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving vault: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s on %s.\n", amount, monies.CategoryLabels[c.category])
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// repayCmd holds the flags for the 'repay' subcommand.
type repayCmd struct {
	id     string
	amount string
}

func (*repayCmd) Name() string     { return "repay" }
func (*repayCmd) Synopsis() string { return "record a repayment on a loan" }
func (*repayCmd) Usage() string {
	return `vault repay -id <loan-id> -amount <amount>

  Records a repayment against a loan. The loan settles when cumulative
  repayments reach the principal. Find loan ids with 'vault loans'.

Usage Examples:
$ vault repay -id 1755081600000 -amount 500

`
}

func (c *repayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Loan to repay, see 'vault loans'.")
	f.StringVar(&c.amount, "amount", "", "Amount repaid.")
}

func (c *repayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, ok := parseAmountFlag("amount", c.amount)
	if !ok {
		return subcommands.ExitUsageError
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening vault %q: %v\n", *vaultDir, err)
		return subcommands.ExitFailure
	}
	if _, err := ledger.FindLoan(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: no loan with id %q, see 'vault loans'\n", c.id)
		return subcommands.ExitUsageError
	}
	if err := ledger.RepayLoan(c.id, amount); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving vault: %v\n", err)
		return subcommands.ExitFailure
	}

	loan, err := ledger.FindLoan(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error re-reading loan %q: %v\n", c.id, err)
		return subcommands.ExitFailure
	}
	if loan.Settled {
		fmt.Printf("Repaid %s; loan from %q is settled.\n", amount, loan.Name)
	} else {
		fmt.Printf("Repaid %s; %s still outstanding to %q.\n", amount, loan.Outstanding(), loan.Name)
	}
	return subcommands.ExitSuccess
}

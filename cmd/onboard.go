package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/mfalme0/monies"
)

// onboardCmd holds the flags for the 'onboard' subcommand.
type onboardCmd struct {
	name     string
	accounts string
	salary   string
	payWeek  string
	bills    string
}

func (*onboardCmd) Name() string     { return "onboard" }
func (*onboardCmd) Synopsis() string { return "set up the vault with your accounts, salary and bills" }
func (*onboardCmd) Usage() string {
	return `vault onboard -name <name> [-accounts <a,b,..>] [-salary <amount>] [-payweek <1-4>] [-bills <name:amount,..>]

  Creates the initial ledger. Each account starts at zero; the salary is
  credited to the first account. Running onboard again replaces everything.

Usage Examples:
$ vault onboard -name Shiro -accounts "Equity,M-Pesa" -salary 45000 -bills "Rent:15000,Wifi:3000"

`
}

func (c *onboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Your name, shown on the summary.")
	f.StringVar(&c.accounts, "accounts", "", "Comma-separated account names, in spending order.")
	f.StringVar(&c.salary, "salary", "", "Monthly net income, credited to the first account.")
	f.StringVar(&c.payWeek, "payweek", "4", "Which week of the month pay arrives (1-4).")
	f.StringVar(&c.bills, "bills", "", "Comma-separated recurring bills as name:amount pairs.")
}

func (c *onboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	setup := monies.Setup{
		Username: c.name,
		PayWeek:  c.payWeek,
	}
	for _, name := range strings.Split(c.accounts, ",") {
		if name = strings.TrimSpace(name); name != "" {
			setup.Accounts = append(setup.Accounts, name)
		}
	}
	if c.salary != "" {
		salary, ok := parseAmountFlag("salary", c.salary)
		if !ok {
			return subcommands.ExitUsageError
		}
		setup.Salary = salary
	}
	bills, err := parseBills(c.bills)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing bills: %v\n", err)
		return subcommands.ExitUsageError
	}
	setup.Bills = bills

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening vault %q: %v\n", *vaultDir, err)
		return subcommands.ExitFailure
	}
	if err := ledger.CompleteOnboarding(setup); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving vault: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Vault ready in %s with %d accounts and %d bills.\n", *vaultDir, len(setup.Accounts), len(setup.Bills))
	return subcommands.ExitSuccess
}

// parseBills parses a comma-separated list of name:amount pairs.
func parseBills(s string) ([]monies.Bill, error) {
	var bills []monies.Bill
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("bill %q is not a name:amount pair", pair)
		}
		amount, err := monies.ParseAmount(value)
		if err != nil {
			return nil, fmt.Errorf("bill %q: %w", pair, err)
		}
		bills = append(bills, monies.Bill{Name: strings.TrimSpace(name), Amount: amount})
	}
	return bills, nil
}

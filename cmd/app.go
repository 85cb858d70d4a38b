// Package cmd implements the CLI application to manage a money vault.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mfalme0/monies"
)

// Commands is the list of subcommands a main package registers.
// A main package will call Register on each, and Execute on the user-selected one.
var Commands = []subcommands.Command{
	&onboardCmd{},
	&incomeCmd{},
	&expenseCmd{},
	&loanCmd{},
	&loansCmd{},
	&repayCmd{},
	&summaryCmd{},
	&breakdownCmd{},
	&txCmd{},
	&exportCmd{},
	&syncCmd{},
	&lockCmd{},
	&resetCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var vaultDir = flag.String("vault", defaultVaultDir(), "Path to the vault directory holding the ledger files")

// defaultVaultDir resolves the vault location from the environment, falling
// back to a directory next to where the command runs.
func defaultVaultDir() string {
	if dir := os.Getenv("MONIES_VAULT"); dir != "" {
		return dir
	}
	return ".vault"
}

// openLedger is the central function to open the vault's ledger.
func openLedger() (*monies.Ledger, error) {
	store, err := monies.OpenDirStore(*vaultDir)
	if err != nil {
		return nil, err
	}
	return monies.Load(store)
}

// parseAmountFlag parses a required amount flag, printing usage errors.
func parseAmountFlag(name, value string) (monies.Money, bool) {
	amount, err := monies.ParseAmount(value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: flag -%s needs a positive amount, got %q\n", name, value)
		return monies.Money{}, false
	}
	return amount, true
}

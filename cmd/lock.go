package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// lockCmd holds the flags for the 'lock' subcommand.
type lockCmd struct {
	off bool
}

func (*lockCmd) Name() string     { return "lock" }
func (*lockCmd) Synopsis() string { return "enable or disable the app lock flag" }
func (*lockCmd) Usage() string {
	return `vault lock [-off]

  Enables the lock flag consumed by front ends that gate the vault behind a
  device unlock. The flag gates presentation only, never the ledger itself.

Usage Examples:
$ vault lock
$ vault lock -off

`
}

func (c *lockCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.off, "off", false, "Disable the lock flag instead.")
}

func (c *lockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening vault %q: %v\n", *vaultDir, err)
		return subcommands.ExitFailure
	}
	if err := ledger.SetSecurity(!c.off); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving vault: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.off {
		fmt.Println("Lock disabled.")
	} else {
		fmt.Println("Lock enabled.")
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/mfalme0/monies/agent"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string           { return "assist" }
func (*assistCmd) Synopsis() string       { return "start an interactive session with the AI assistant" }
func (*assistCmd) SetFlags(*flag.FlagSet) {}
func (*assistCmd) Usage() string {
	return `vault assist [<first question>]

  Starts an interactive session with the AI assistant. The assistant can
  read the vault's figures and search for general budgeting advice. Needs a
  Gemini API key in the environment.
`
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening vault %q: %v\n", *vaultDir, err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	coach := agent.NewCoach()
	bookkeeper := agent.NewBookkeeper(ledger)
	a := agent.New(os.Stdout, os.Stdin, coach, bookkeeper)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

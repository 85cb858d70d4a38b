package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mfalme0/monies/docs"
)

type topicCmd struct{}

func (*topicCmd) Name() string           { return "topic" }
func (*topicCmd) Synopsis() string       { return "show documentation" }
func (*topicCmd) SetFlags(*flag.FlagSet) {}
func (*topicCmd) Usage() string {
	return `vault topic [<topic>...]

  Shows documentation for the given topics, or the topic index when none is
  given. Use '*' for everything.
`
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}

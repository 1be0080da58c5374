package commands

import (
	"github.com/spf13/cobra"
)

func addMark(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:     "mark <num|lo..hi>...",
		Aliases: []string{"m"},
		Short:   "Toggle the done flag of items.",
		Long: `Toggle the done flag of items.

Each argument is a position or a range. Arguments are applied left to right;
a bad argument stops the command but toggles already applied are kept.`,
		Example: `
todo mark 0
todo m 0 2..4
`,
		Args: cobra.ArbitraryArgs,
		RunE: runVerb(g, "mark"),
	}

	topLevel.AddCommand(cmd)
}

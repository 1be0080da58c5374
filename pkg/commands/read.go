package commands

import (
	"github.com/spf13/cobra"
)

func addRead(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:     "read <name>",
		Aliases: []string{"r"},
		Short:   "Append the items of another list to the active one.",
		Example: `
todo read work
`,
		Args:              cobra.ArbitraryArgs,
		ValidArgsFunction: g.listCompletions,
		RunE:              runVerb(g, "read"),
	}

	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"
)

func addPri(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:     "pri <pos> <goto>",
		Aliases: []string{"p"},
		Short:   "Move the item at pos so it ends up at goto.",
		Example: `
todo pri 3 0
`,
		Args: cobra.ArbitraryArgs,
		RunE: runVerb(g, "pri"),
	}

	topLevel.AddCommand(cmd)
}

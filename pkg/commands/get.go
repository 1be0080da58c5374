package commands

import (
	"github.com/spf13/cobra"
)

func addGet(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"g"},
		Short:   "Show the active list.",
		Example: `
todo get
todo --json g
`,
		Args: cobra.ArbitraryArgs,
		RunE: runVerb(g, "get"),
	}

	topLevel.AddCommand(cmd)
}

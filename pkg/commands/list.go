package commands

import (
	"github.com/spf13/cobra"
)

func addList(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "Show every known list, marking the active one.",
		Example: `
todo list
todo l
`,
		Args: cobra.ArbitraryArgs,
		RunE: runVerb(g, "list"),
	}

	topLevel.AddCommand(cmd)
}

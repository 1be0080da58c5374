package commands

import (
	"github.com/spf13/cobra"
)

func addFile(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:     "file <name>",
		Aliases: []string{"f"},
		Short:   "Switch to another list, creating it on first use.",
		Example: `
todo file work
todo f todo.data
`,
		Args:              cobra.ArbitraryArgs,
		ValidArgsFunction: g.listCompletions,
		RunE:              runVerb(g, "file"),
	}

	topLevel.AddCommand(cmd)
}

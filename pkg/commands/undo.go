package commands

import (
	"github.com/spf13/cobra"
)

func addUndo(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:     "undo",
		Aliases: []string{"u"},
		Short:   "Restore the active list from its backup.",
		Long: `Restore the active list from its backup.

Every change saves the list as it was beforehand, so undo reverts the last
change only. Undo twice is a no-op.`,
		Example: `
todo undo
`,
		Args: cobra.ArbitraryArgs,
		RunE: runVerb(g, "undo"),
	}

	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"
)

func addAdd(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:     "add <text>...",
		Aliases: []string{"a"},
		Short:   "Append an item. The words are joined with single spaces.",
		Example: `
todo add buy milk
todo a -- -5 degrees, bring a coat
`,
		Args: cobra.ArbitraryArgs,
		RunE: runVerb(g, "add"),
	}
	// Flags after the first word are item text.
	cmd.Flags().SetInterspersed(false)

	topLevel.AddCommand(cmd)
}

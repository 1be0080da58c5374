package commands

import (
	"github.com/spf13/cobra"
)

func addDel(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:     "del <num|lo..hi>",
		Aliases: []string{"d"},
		Short:   "Remove an item, or an inclusive range of items.",
		Long: `Remove an item, or an inclusive range of items.

A range is written lo..hi or lo-hi with lo < hi. Positions past the end of
the list are ignored.`,
		Example: `
todo del 0
todo d 1..3
`,
		Args: cobra.ArbitraryArgs,
		RunE: runVerb(g, "del"),
	}

	topLevel.AddCommand(cmd)
}

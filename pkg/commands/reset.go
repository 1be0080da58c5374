package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/runner/todo"
)

func addReset(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the active list file, even when it no longer decodes.",
		Long: `Delete the active list file, even when it no longer decodes.

The backup is kept, so a reset can be followed by undo to get the state before
the last change back.`,
		Example: `
todo reset
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := g.resolve(cmd); err != nil {
				return err
			}
			r := todo.Reset{
				Dir:     g.store.Dir,
				Options: g.store.Options,
				Out:     g.output.Out,
				Logger:  g.log.Logger(),
			}
			err := r.Do(contextOf(cmd))
			return g.output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

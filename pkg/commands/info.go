package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about lists and where they are stored.",
		Example: `
todo info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := g.resolve(cmd); err != nil {
				return err
			}
			s := info.Info{
				Dir:     g.store.Dir,
				Options: g.store.Options,
				Out:     g.output.Out,
				Logger:  g.log.Logger(),
			}
			err := s.Do(contextOf(cmd))
			return g.output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

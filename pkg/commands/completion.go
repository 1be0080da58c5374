package commands

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/store"
)

func addCompletions(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(todo completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(todo completion)
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}

// listCompletions offers the known list names for file and read.
func (g *globals) listCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if err := g.store.Resolve(g.v); err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	conf, err := store.LoadConfig(g.store.Dir, g.store.Options, log.New(io.Discard))
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var names []string
	for _, n := range conf.KnownLists() {
		if strings.HasPrefix(n, toComplete) {
			names = append(names, n)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

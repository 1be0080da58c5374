package commands

import (
	"github.com/spf13/cobra"
)

// runVerb returns a RunE that hands verb and the positional args to the
// interpreter, which owns argument validation.
func runVerb(g *globals, verb string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return g.run(cmd, append([]string{verb}, args...))
	}
}

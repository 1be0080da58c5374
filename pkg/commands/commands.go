package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/exitcode"
	"tableflip.dev/todo/pkg/interpreter"
	"tableflip.dev/todo/pkg/runner/todo"
)

// globals are the persistent flags shared by every command.
type globals struct {
	v      *viper.Viper
	store  options.StoreOptions
	output options.OutputOptions
	log    options.LogOptions
}

func New() *cobra.Command {
	g := &globals{v: viper.New()}
	g.v.SetEnvPrefix("TODO")
	g.v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "todo [verb] [args...]",
		Short: base.Wrap80("Keep todo lists in plain files on the command line."),
		Long: base.Wrap80("Keep todo lists in plain files on the command line. " +
			"Verbs and their one letter aliases are case-insensitive. " +
			"Every change backs up the list first so the last change can be undone."),
		Example: `
todo add buy milk
todo mark 0
todo del 1..3
todo file work
`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				// Not a registered subcommand; the interpreter resolves case
				// folding or reports an unknown verb.
				return g.run(cmd, args)
			}
			if err := g.run(cmd, []string{"get"}); err != nil {
				return err
			}
			return cmd.Help()
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", interpreter.ErrUsage, err)
	})

	options.AddStoreArgs(cmd, g.v)
	options.AddOutputArg(cmd, g.v)
	options.AddLogArgs(cmd, g.v)

	addCommands(cmd, g)
	return cmd
}

func addCommands(topLevel *cobra.Command, g *globals) {
	addList(topLevel, g)
	addGet(topLevel, g)
	addAdd(topLevel, g)
	addDel(topLevel, g)
	addMark(topLevel, g)
	addPri(topLevel, g)
	addUndo(topLevel, g)
	addFile(topLevel, g)
	addRead(topLevel, g)
	addInfo(topLevel, g)
	addReset(topLevel, g)
	addVersion(topLevel)
	addCompletions(topLevel, g)
}

func (g *globals) resolve(cmd *cobra.Command) error {
	if err := g.store.Resolve(g.v); err != nil {
		return err
	}
	g.output.Out = cmd.OutOrStdout()
	g.output.Resolve(g.v)
	g.log.Err = cmd.ErrOrStderr()
	g.log.Resolve(g.v)
	return nil
}

// run executes one interpreter invocation: args is the verb followed by its
// arguments.
func (g *globals) run(cmd *cobra.Command, args []string) error {
	if err := g.resolve(cmd); err != nil {
		return err
	}
	r := todo.Todo{
		Args:    args,
		Dir:     g.store.Dir,
		Options: g.store.Options,
		Lock:    g.store.Lock,
		JSON:    g.output.JSON,
		Out:     g.output.Out,
		Logger:  g.log.Logger(),
	}
	err := r.Do(contextOf(cmd))
	return g.output.HandleError(err)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// Report prints err for the user and returns the process exit code. Usage
// errors are followed by the usage of the command that failed.
func Report(cmd *cobra.Command, err error, w io.Writer) int {
	code := exitcode.For(err)
	if err == nil {
		return code
	}
	var reported *options.ReportedError
	if errors.As(err, &reported) {
		return code
	}
	_, _ = fmt.Fprintf(w, "error: %v\n", err)
	if code == exitcode.UserError && cmd != nil {
		_, _ = fmt.Fprint(w, cmd.UsageString())
	}
	return code
}

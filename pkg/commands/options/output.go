package options

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/todo/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
	Out  io.Writer
}

// ReportedError is an error that has already been written to the output.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

func AddOutputArg(cmd *cobra.Command, v *viper.Viper) {
	cmd.PersistentFlags().Bool("json", false,
		"Output as JSON.")
	_ = v.BindPFlag("json", cmd.PersistentFlags().Lookup("json"))
}

// Resolve fills the options from flags and the environment.
func (o *OutputOptions) Resolve(v *viper.Viper) {
	o.JSON = v.GetBool("json")
	if o.Out == nil {
		o.Out = color.Output
	}
}

// HandleError prints err as JSON in JSON mode. The error is still returned,
// wrapped, so the exit code reflects it.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		jp := printers.JSONPrint{Out: o.Out}
		if perr := jp.Error(err); perr != nil {
			return fmt.Errorf("%v (printing: %w)", err, perr)
		}
		return &ReportedError{Err: err}
	}
	return err
}

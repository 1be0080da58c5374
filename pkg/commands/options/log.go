package options

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// LogOptions
type LogOptions struct {
	Debug bool
	Err   io.Writer
}

func AddLogArgs(cmd *cobra.Command, v *viper.Viper) {
	cmd.PersistentFlags().Bool("debug", false,
		"Log persistence traces to stderr.")
	_ = v.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))
}

func (o *LogOptions) Resolve(v *viper.Viper) {
	o.Debug = v.GetBool("debug")
}

// Logger builds the stderr logger. Warnings only, unless Debug is set.
func (o *LogOptions) Logger() *log.Logger {
	w := o.Err
	if w == nil {
		w = os.Stderr
	}
	level := log.WarnLevel
	if o.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "todo",
	})
}

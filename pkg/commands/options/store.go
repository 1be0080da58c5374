package options

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/todo/pkg/store"
)

// StoreOptions locate the config directory and control locking.
type StoreOptions struct {
	Dir     string
	Lock    bool
	Options store.Options
}

func AddStoreArgs(cmd *cobra.Command, v *viper.Viper) {
	cmd.PersistentFlags().String("dir", "",
		"Config directory. Defaults to $TODO_DIR, then the user config directory.")
	cmd.PersistentFlags().Bool("lock", false,
		"Hold an advisory lock on the config directory while running.")
	_ = v.BindPFlag("dir", cmd.PersistentFlags().Lookup("dir"))
	_ = v.BindPFlag("lock", cmd.PersistentFlags().Lookup("lock"))
}

// Resolve fills the options from flags and the environment, falling back to
// the platform config directory for todo.
func (o *StoreOptions) Resolve(v *viper.Viper) error {
	o.Lock = v.GetBool("lock")
	if o.Options == (store.Options{}) {
		o.Options = store.DefaultOptions()
	}

	dir := v.GetString("dir")
	if dir == "" {
		p, err := gap.NewScope(gap.User, "todo").ConfigPath(o.Options.ConfigFile)
		if err != nil {
			return err
		}
		dir = filepath.Dir(p)
	}
	dir, err := homedir.Expand(dir)
	if err != nil {
		return err
	}
	o.Dir = dir
	return nil
}

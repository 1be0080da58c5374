package todo

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"tableflip.dev/todo/pkg/store"
)

// Reset deletes the active list's file without reading it, so a list that no
// longer decodes can be started over. The backup is left in place.
type Reset struct {
	Dir     string
	Options store.Options
	Out     io.Writer
	Logger  *log.Logger
}

// Do removes the active list file and forgets its name.
func (r *Reset) Do(_ context.Context) error {
	conf, err := store.LoadConfig(r.Dir, r.Options, r.Logger)
	if err != nil {
		return err
	}
	lists := store.NewLists(conf.DataDir(), conf.Options(), r.Logger)
	path := lists.Path(conf.ActiveList())
	if err := conf.RemoveActiveListFile(lists); err != nil {
		return err
	}

	out := r.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "removed %s\n", path)
	return nil
}

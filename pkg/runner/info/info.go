// Package info reports where todo keeps its config and lists.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"tableflip.dev/todo/pkg/store"
)

type Info struct {
	Dir     string
	Options store.Options
	Out     io.Writer
	Logger  *log.Logger
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("TODO_DIR"); override != "" {
		fmt.Fprintln(out, "TODO_DIR found on env, using", override)
	} else {
		fmt.Fprintln(out, "TODO_DIR env var not set")
	}

	conf, err := store.LoadConfig(n.Dir, n.Options, n.Logger)
	if err != nil {
		return err
	}
	lists := store.NewLists(conf.DataDir(), conf.Options(), n.Logger)
	active := conf.ActiveList()

	fmt.Fprintln(out, "Config.path:", conf.Path())
	fmt.Fprintln(out, "Data.dir:   ", conf.DataDir())
	fmt.Fprintln(out, "Active list:", active)
	fmt.Fprintln(out, "  file:     ", lists.Path(active))
	fmt.Fprintln(out, "  backup:   ", lists.BackupPath(active))

	fmt.Fprintf(out, "Lists:\n")
	known := conf.KnownLists()
	for _, k := range known {
		fmt.Fprintf(out, "  %s\n", k)
	}
	if len(known) == 0 {
		fmt.Fprintf(out, "  %s\n", "no lists")
	}

	return nil
}

// Package todo runs one todo command from config load to list save.
package todo

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/todo/pkg/collection"
	"tableflip.dev/todo/pkg/interpreter"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/store"
)

// LockTimeout bounds how long an invocation waits for the advisory lock.
const LockTimeout = 2 * time.Second

// Todo is a single invocation against the storage in Dir.
type Todo struct {
	// Args is the verb followed by its arguments.
	Args    []string
	Dir     string
	Options store.Options
	// Lock takes the advisory lock for the whole invocation.
	Lock   bool
	JSON   bool
	Out    io.Writer
	Logger *log.Logger
}

// Do loads the config and the active list, applies Args, prints the result
// and persists the list. Command errors are returned after the list is
// persisted; storage errors are returned before anything is written.
func (t *Todo) Do(ctx context.Context) error {
	logger := t.Logger
	if logger == nil {
		logger = log.Default()
	}

	release, err := t.lock(ctx)
	if err != nil {
		return err
	}
	defer release()

	conf, err := store.LoadConfig(t.Dir, t.Options, logger)
	if err != nil {
		return err
	}
	opts := conf.Options()
	lists := store.NewLists(conf.DataDir(), opts, logger)

	list, err := lists.Load(conf.ActiveList())
	if err != nil {
		return err
	}

	in := &interpreter.Interpreter{
		Config:       conf,
		Lists:        lists,
		Logger:       logger,
		Reserved:     []string{opts.ConfigFile, opts.ConfigFile + ".tmp", opts.LockFile},
		BackupSuffix: opts.BackupSuffix,
	}

	res, cmdErr := in.Interpret(list, t.Args)
	if cmdErr != nil && !interpreter.IsUsage(cmdErr) {
		return cmdErr
	}
	if cmdErr == nil {
		if err := t.render(res, conf, list); err != nil {
			return err
		}
	}

	if err := in.Persist(list); err != nil {
		return err
	}
	return cmdErr
}

func (t *Todo) lock(ctx context.Context) (func(), error) {
	if !t.Lock {
		return func() {}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, LockTimeout)
	defer cancel()
	l, err := store.AcquireLock(ctx, t.Dir, t.Options)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := l.Release(); err != nil && t.Logger != nil {
			t.Logger.Warn("release lock", "path", l.Path(), "err", err)
		}
	}, nil
}

func (t *Todo) render(res interpreter.Result, conf *store.Config, list *collection.List) error {
	if t.JSON {
		jp := printers.JSONPrint{Out: t.Out}
		if res.Effect == interpreter.ShowLists {
			return jp.Lists(conf.KnownLists(), conf.ActiveList())
		}
		return jp.List(conf.ActiveList(), list)
	}

	pp := printers.PrettyPrint{Out: t.Out}
	if res.Effect == interpreter.ShowLists {
		pp.Lists(conf.KnownLists(), conf.ActiveList())
		return nil
	}
	pp.Title(conf.ActiveList())
	pp.List(list)
	return nil
}

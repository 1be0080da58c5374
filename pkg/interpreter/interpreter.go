// Package interpreter maps a verb and its arguments onto todo list mutations.
package interpreter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"tableflip.dev/todo/pkg/collection"
	"tableflip.dev/todo/pkg/index"
	"tableflip.dev/todo/pkg/store"
)

// Effect tells the caller what to show after a command.
type Effect int

const (
	// ShowList means print the active list.
	ShowList Effect = iota
	// ShowLists means print the known list names.
	ShowLists
	// Changed means the active list was mutated in memory.
	Changed
)

// Result is the outcome of a successful command.
type Result struct {
	Verb   string
	Effect Effect
	// Restored is false when undo found no backup.
	Restored bool
}

// Config is the part of the config store commands need.
type Config interface {
	ActiveList() string
	KnownLists() []string
	SetActiveList(name string) error
	RemoveActiveListFile(r store.Remover) error
}

// Lists is the list persistence commands need.
type Lists interface {
	store.Remover
	Load(name string) (*collection.List, error)
	Save(name string, list *collection.List) error
	Backup(name string, list *collection.List) error
	Restore(name string) (*collection.List, bool, error)
}

// Verb describes one command and its short form.
type Verb struct {
	Name  string
	Alias string
	Args  string
	Help  string
}

// Verbs lists every command in help order.
func Verbs() []Verb {
	return []Verb{
		{Name: "list", Alias: "l", Help: "show all known lists"},
		{Name: "get", Alias: "g", Help: "show the current list"},
		{Name: "add", Alias: "a", Args: "<text>...", Help: "add an item"},
		{Name: "del", Alias: "d", Args: "<num|lo..hi>", Help: "remove an item or a range"},
		{Name: "mark", Alias: "m", Args: "<num|lo..hi>...", Help: "toggle done"},
		{Name: "pri", Alias: "p", Args: "<pos> <goto>", Help: "move an item"},
		{Name: "undo", Alias: "u", Help: "restore the list as it was before the last change"},
		{Name: "file", Alias: "f", Args: "<name>", Help: "switch to another list"},
		{Name: "read", Alias: "r", Args: "<name>", Help: "append another list's items"},
	}
}

// Canonical resolves a verb or alias, case-insensitively.
func Canonical(verb string) (string, bool) {
	v := strings.ToLower(verb)
	for _, known := range Verbs() {
		if v == known.Name || v == known.Alias {
			return known.Name, true
		}
	}
	return v, false
}

// Interpreter runs one command against the active list.
type Interpreter struct {
	Config Config
	Lists  Lists
	Logger *log.Logger

	// Reserved names cannot be used as list names.
	Reserved []string
	// BackupSuffix is rejected as a list name ending.
	BackupSuffix string
}

// Interpret applies args to list. args[0] is the verb. Recoverable failures
// are *CommandError; anything else is a storage failure.
func (in *Interpreter) Interpret(list *collection.List, args []string) (Result, error) {
	if len(args) == 0 {
		return Result{Effect: ShowList}, nil
	}
	verb, ok := Canonical(args[0])
	rest := args[1:]
	if !ok {
		return Result{}, fail(args[0], InvalidCommand, "", nil)
	}
	in.logger().Debug("interpret", "verb", verb, "args", rest, "list", in.Config.ActiveList())

	res := Result{Verb: verb, Effect: Changed}
	var err error
	switch verb {
	case "list":
		res.Effect = ShowLists
		err = want(verb, rest, 0)
	case "get":
		res.Effect = ShowList
		err = want(verb, rest, 0)
	case "add":
		err = in.add(list, rest)
	case "del":
		err = in.del(list, rest)
	case "mark":
		err = in.mark(list, rest)
	case "pri":
		err = in.pri(list, rest)
	case "undo":
		res.Restored, err = in.undo(list, rest)
	case "file":
		err = in.file(list, rest)
	case "read":
		err = in.read(list, rest)
	}
	if err != nil {
		return Result{Verb: verb}, err
	}
	return res, nil
}

// Persist writes list under the active name, or removes the active list's
// file when the list is empty. A saved list is recorded as known again if an
// earlier empty state dropped it.
func (in *Interpreter) Persist(list *collection.List) error {
	active := in.Config.ActiveList()
	if list.IsEmpty() {
		return in.Config.RemoveActiveListFile(in.Lists)
	}
	if err := in.Lists.Save(active, list); err != nil {
		return err
	}
	for _, name := range in.Config.KnownLists() {
		if name == active {
			return nil
		}
	}
	return in.Config.SetActiveList(active)
}

func (in *Interpreter) add(list *collection.List, args []string) error {
	if len(args) == 0 {
		return fail("add", ArgumentCount, "", nil)
	}
	if err := in.backup(list); err != nil {
		return err
	}
	list.Add(strings.Join(args, " "))
	return nil
}

func (in *Interpreter) del(list *collection.List, args []string) error {
	if err := want("del", args, 1); err != nil {
		return err
	}
	sel, err := index.Parse(args[0])
	if err != nil {
		return fail("del", UnparsableIndex, args[0], err)
	}
	if err := in.backup(list); err != nil {
		return err
	}
	removed := list.DeleteAll(sel.Within(list.Len()).Descending())
	in.logger().Debug("deleted", "selection", sel, "removed", removed)
	return nil
}

// mark toggles tokens in order. A bad token stops the command but toggles
// made by earlier tokens stay applied. The backup is taken before the first
// toggle, so a bad first token leaves it alone.
func (in *Interpreter) mark(list *collection.List, args []string) error {
	if len(args) == 0 {
		return fail("mark", ArgumentCount, "", nil)
	}
	backedUp := false
	for _, token := range args {
		sel, err := index.Parse(token)
		if err != nil {
			return fail("mark", UnparsableIndex, token, err)
		}
		if !backedUp {
			if err := in.backup(list); err != nil {
				return err
			}
			backedUp = true
		}
		for _, pos := range sel.Within(list.Len()).Indices() {
			_ = list.Mark(pos)
		}
		if sel.Hi() >= list.Len() {
			in.logger().Debug("mark skipped positions past the end", "selection", sel, "len", list.Len())
		}
	}
	return nil
}

func (in *Interpreter) pri(list *collection.List, args []string) error {
	if err := want("pri", args, 2); err != nil {
		return err
	}
	var pos [2]int
	for i, token := range args {
		n, err := strconv.Atoi(token)
		if err != nil || n < 0 {
			return fail("pri", NotANumber, token, err)
		}
		pos[i] = n
	}
	if _, err := list.At(pos[0]); err != nil {
		return fail("pri", OutOfRange, args[0], err)
	}
	if _, err := list.At(pos[1]); err != nil {
		return fail("pri", OutOfRange, args[1], err)
	}
	if err := in.backup(list); err != nil {
		return err
	}
	return list.Reorder(pos[0], pos[1])
}

func (in *Interpreter) undo(list *collection.List, args []string) (bool, error) {
	if err := want("undo", args, 0); err != nil {
		return false, err
	}
	previous, ok, err := in.Lists.Restore(in.Config.ActiveList())
	if err != nil {
		return false, err
	}
	if !ok {
		in.logger().Info("nothing to undo", "list", in.Config.ActiveList())
		return false, nil
	}
	list.Replace(previous)
	return true, nil
}

func (in *Interpreter) file(list *collection.List, args []string) error {
	if err := want("file", args, 1); err != nil {
		return err
	}
	name := args[0]
	if err := in.validName("file", name); err != nil {
		return err
	}
	if err := in.backup(list); err != nil {
		return err
	}
	if err := in.Persist(list); err != nil {
		return err
	}
	if err := in.Config.SetActiveList(name); err != nil {
		return err
	}
	list.Clear()
	next, err := in.Lists.Load(name)
	if err != nil {
		return err
	}
	list.Replace(next)
	return nil
}

func (in *Interpreter) read(list *collection.List, args []string) error {
	if err := want("read", args, 1); err != nil {
		return err
	}
	name := args[0]
	if err := in.validName("read", name); err != nil {
		return err
	}
	other, err := in.Lists.Load(name)
	if err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			return fail("read", Unreadable, name, err)
		}
		return err
	}
	if other.IsEmpty() {
		return nil
	}
	if err := in.backup(list); err != nil {
		return err
	}
	list.Append(other)
	return nil
}

func (in *Interpreter) backup(list *collection.List) error {
	return in.Lists.Backup(in.Config.ActiveList(), list)
}

func (in *Interpreter) validName(verb, name string) error {
	bad := func(why string) error {
		return fail(verb, InvalidName, name, errors.New(why))
	}
	switch {
	case strings.TrimSpace(name) == "":
		return bad("empty")
	case strings.ContainsAny(name, `/\`):
		return bad("contains a path separator")
	case strings.HasPrefix(name, "."):
		return bad("starts with a dot")
	case in.BackupSuffix != "" && strings.HasSuffix(name, in.BackupSuffix):
		return bad(fmt.Sprintf("ends with the backup suffix %q", in.BackupSuffix))
	}
	for _, r := range in.Reserved {
		if name == r {
			return bad("reserved")
		}
	}
	return nil
}

func (in *Interpreter) logger() *log.Logger {
	if in.Logger == nil {
		return log.Default()
	}
	return in.Logger
}

func want(verb string, args []string, n int) error {
	if len(args) != n {
		return fail(verb, ArgumentCount, "", fmt.Errorf("want %d, got %d", n, len(args)))
	}
	return nil
}

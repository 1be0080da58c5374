package interpreter

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"tableflip.dev/todo/pkg/collection"
	"tableflip.dev/todo/pkg/entry"
	"tableflip.dev/todo/pkg/store"
)

type memoryLists struct {
	files   map[string]*collection.List
	backups map[string]*collection.List
	corrupt map[string]bool
}

func newMemoryLists() *memoryLists {
	return &memoryLists{
		files:   make(map[string]*collection.List),
		backups: make(map[string]*collection.List),
		corrupt: make(map[string]bool),
	}
}

func (m *memoryLists) Load(name string) (*collection.List, error) {
	if m.corrupt[name] {
		return nil, fmt.Errorf("%w: %s", store.ErrCorrupt, name)
	}
	if l, ok := m.files[name]; ok {
		return l.Clone(), nil
	}
	return collection.New(), nil
}

func (m *memoryLists) Save(name string, list *collection.List) error {
	m.files[name] = list.Clone()
	return nil
}

func (m *memoryLists) Backup(name string, list *collection.List) error {
	m.backups[name] = list.Clone()
	return nil
}

func (m *memoryLists) Restore(name string) (*collection.List, bool, error) {
	l, ok := m.backups[name]
	if !ok {
		return nil, false, nil
	}
	return l.Clone(), true, nil
}

func (m *memoryLists) Remove(name string) error {
	delete(m.files, name)
	return nil
}

type memoryConfig struct {
	active string
	known  *collection.Names
	saves  int
}

func newMemoryConfig() *memoryConfig {
	return &memoryConfig{active: "todo.data", known: collection.NewNames("todo.data")}
}

func (c *memoryConfig) ActiveList() string {
	return c.active
}

func (c *memoryConfig) KnownLists() []string {
	return c.known.Slice()
}

func (c *memoryConfig) SetActiveList(name string) error {
	c.active = name
	c.known.Add(name)
	c.saves++
	return nil
}

func (c *memoryConfig) RemoveActiveListFile(r store.Remover) error {
	if err := r.Remove(c.active); err != nil {
		return err
	}
	c.known.Remove(c.active)
	c.saves++
	return nil
}

func newInterpreter() (*Interpreter, *memoryConfig, *memoryLists) {
	conf := newMemoryConfig()
	lists := newMemoryLists()
	return &Interpreter{
		Config:       conf,
		Lists:        lists,
		Logger:       log.NewWithOptions(io.Discard, log.Options{}),
		Reserved:     []string{"todo.config", "todo.lock"},
		BackupSuffix: ".bk",
	}, conf, lists
}

func withItems(texts ...string) *collection.List {
	l := collection.New()
	for _, t := range texts {
		l.Add(t)
	}
	return l
}

func textsOf(l *collection.List) []string {
	out := []string{}
	for _, e := range l.Items() {
		out = append(out, e.Text)
	}
	return out
}

func doneOf(l *collection.List) []bool {
	out := []bool{}
	for _, e := range l.Items() {
		out = append(out, e.Done)
	}
	return out
}

func wantKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	var ce *CommandError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want *CommandError", err)
	}
	if ce.Kind != kind {
		t.Fatalf("kind = %v, want %v (%v)", ce.Kind, kind, err)
	}
	if !IsUsage(err) {
		t.Fatalf("command error should match ErrUsage")
	}
}

func TestVerbsAndAliasesCaseInsensitive(t *testing.T) {
	tests := map[string]string{
		"l": "list", "LIST": "list", "g": "get", "Get": "get",
		"a": "add", "D": "del", "mark": "mark", "P": "pri",
		"u": "undo", "F": "file", "Read": "read",
	}
	for in, want := range tests {
		got, ok := Canonical(in)
		if !ok || got != want {
			t.Fatalf("Canonical(%q) = %q,%v want %q", in, got, ok, want)
		}
	}
	if _, ok := Canonical("swap"); ok {
		t.Fatalf("swap should be unknown")
	}
}

func TestListAndGetDoNotMutate(t *testing.T) {
	in, _, lists := newInterpreter()
	l := withItems("A")

	res, err := in.Interpret(l, []string{"l"})
	if err != nil || res.Effect != ShowLists {
		t.Fatalf("list: res=%+v err=%v", res, err)
	}
	res, err = in.Interpret(l, []string{"get"})
	if err != nil || res.Effect != ShowList {
		t.Fatalf("get: res=%+v err=%v", res, err)
	}
	if len(lists.backups) != 0 {
		t.Fatalf("read-only verbs wrote a backup")
	}
	_, err = in.Interpret(l, []string{"get", "extra"})
	wantKind(t, err, ArgumentCount)
}

func TestUnknownVerb(t *testing.T) {
	in, _, _ := newInterpreter()
	_, err := in.Interpret(collection.New(), []string{"swap", "1", "2"})
	wantKind(t, err, InvalidCommand)
}

func TestEmptyArgsShowsList(t *testing.T) {
	in, _, _ := newInterpreter()
	res, err := in.Interpret(collection.New(), nil)
	if err != nil || res.Effect != ShowList {
		t.Fatalf("res=%+v err=%v", res, err)
	}
}

func TestAddJoinsTokens(t *testing.T) {
	in, _, _ := newInterpreter()
	l := collection.New()
	res, err := in.Interpret(l, []string{"add", "buy", "milk"})
	if err != nil || res.Effect != Changed {
		t.Fatalf("res=%+v err=%v", res, err)
	}
	if got := textsOf(l); !reflect.DeepEqual(got, []string{"buy milk"}) {
		t.Fatalf("got %v", got)
	}
	_, err = in.Interpret(l, []string{"a"})
	wantKind(t, err, ArgumentCount)
}

func TestAddThenUndoRestoresPreState(t *testing.T) {
	in, _, _ := newInterpreter()
	l := withItems("A", "B")
	_ = l.Mark(1)
	before := l.Items()

	if _, err := in.Interpret(l, []string{"add", "x"}); err != nil {
		t.Fatal(err)
	}
	res, err := in.Interpret(l, []string{"undo"})
	if err != nil || !res.Restored {
		t.Fatalf("undo: res=%+v err=%v", res, err)
	}
	if !reflect.DeepEqual(l.Items(), before) {
		t.Fatalf("after undo %+v, want %+v", l.Items(), before)
	}
}

func TestUndoWithoutBackupIsNoop(t *testing.T) {
	in, _, _ := newInterpreter()
	l := withItems("A")
	res, err := in.Interpret(l, []string{"u"})
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if res.Restored {
		t.Fatalf("nothing should be restored")
	}
	if got := textsOf(l); !reflect.DeepEqual(got, []string{"A"}) {
		t.Fatalf("list changed: %v", got)
	}
	_, err = in.Interpret(l, []string{"undo", "now"})
	wantKind(t, err, ArgumentCount)
}

func TestDelRangeHighToLow(t *testing.T) {
	in, _, lists := newInterpreter()
	l := withItems("A", "B", "C", "D")
	if _, err := in.Interpret(l, []string{"del", "1..2"}); err != nil {
		t.Fatal(err)
	}
	if got := textsOf(l); !reflect.DeepEqual(got, []string{"A", "D"}) {
		t.Fatalf("got %v", got)
	}
	if got := textsOf(lists.backups["todo.data"]); !reflect.DeepEqual(got, []string{"A", "B", "C", "D"}) {
		t.Fatalf("backup = %v", got)
	}
}

func TestDelSkipsOutOfRange(t *testing.T) {
	in, _, _ := newInterpreter()
	l := withItems("A", "B", "C")
	if _, err := in.Interpret(l, []string{"d", "1-9"}); err != nil {
		t.Fatal(err)
	}
	if got := textsOf(l); !reflect.DeepEqual(got, []string{"A"}) {
		t.Fatalf("got %v", got)
	}
	if _, err := in.Interpret(l, []string{"d", "5"}); err != nil {
		t.Fatalf("out of range single index should be skipped: %v", err)
	}
	if got := textsOf(l); !reflect.DeepEqual(got, []string{"A"}) {
		t.Fatalf("got %v", got)
	}
}

func TestDelErrors(t *testing.T) {
	in, _, lists := newInterpreter()
	l := withItems("A", "B")
	_, err := in.Interpret(l, []string{"del"})
	wantKind(t, err, ArgumentCount)
	_, err = in.Interpret(l, []string{"del", "0", "1"})
	wantKind(t, err, ArgumentCount)
	_, err = in.Interpret(l, []string{"del", "1.2"})
	wantKind(t, err, UnparsableIndex)
	if len(lists.backups) != 0 {
		t.Fatalf("failed del overwrote the backup")
	}
	if l.Len() != 2 {
		t.Fatalf("failed del changed the list")
	}
}

func TestMarkMixedTokens(t *testing.T) {
	in, _, _ := newInterpreter()
	l := withItems("A", "B", "C", "D", "E")
	if _, err := in.Interpret(l, []string{"mark", "0", "2-3", "9"}); err != nil {
		t.Fatal(err)
	}
	if got, want := doneOf(l), []bool{true, false, true, true, false}; !reflect.DeepEqual(got, want) {
		t.Fatalf("done = %v, want %v", got, want)
	}
	if _, err := in.Interpret(l, []string{"m", "0"}); err != nil {
		t.Fatal(err)
	}
	e, _ := l.At(0)
	if e.Done {
		t.Fatalf("mark twice should restore pending")
	}
}

func TestMarkBadTokenKeepsEarlierToggles(t *testing.T) {
	in, _, lists := newInterpreter()
	l := withItems("A", "B", "C")
	_, err := in.Interpret(l, []string{"mark", "0", "x", "2"})
	wantKind(t, err, UnparsableIndex)

	var ce *CommandError
	errors.As(err, &ce)
	if ce.Token != "x" {
		t.Fatalf("token = %q", ce.Token)
	}
	if got, want := doneOf(l), []bool{true, false, false}; !reflect.DeepEqual(got, want) {
		t.Fatalf("done = %v, want %v", got, want)
	}
	if got, want := doneOf(lists.backups["todo.data"]), []bool{false, false, false}; !reflect.DeepEqual(got, want) {
		t.Fatalf("backup done = %v, want %v", got, want)
	}

	_, err = in.Interpret(l, []string{"mark"})
	wantKind(t, err, ArgumentCount)
}

func TestMarkBadFirstTokenKeepsBackup(t *testing.T) {
	in, _, lists := newInterpreter()
	lists.backups["todo.data"] = withItems("older")
	l := withItems("A", "B")

	_, err := in.Interpret(l, []string{"mark", "x", "0"})
	wantKind(t, err, UnparsableIndex)

	if got, want := textsOf(lists.backups["todo.data"]), []string{"older"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("backup = %v, want %v", got, want)
	}
	if got, want := doneOf(l), []bool{false, false}; !reflect.DeepEqual(got, want) {
		t.Fatalf("done = %v, want %v", got, want)
	}
}

func TestPri(t *testing.T) {
	in, _, _ := newInterpreter()
	l := withItems("A", "B", "C", "D", "E")
	if _, err := in.Interpret(l, []string{"pri", "1", "3"}); err != nil {
		t.Fatal(err)
	}
	if got := textsOf(l); !reflect.DeepEqual(got, []string{"A", "C", "D", "B", "E"}) {
		t.Fatalf("got %v", got)
	}
	if _, err := in.Interpret(l, []string{"undo"}); err != nil {
		t.Fatal(err)
	}
	if _, err := in.Interpret(l, []string{"p", "3", "1"}); err != nil {
		t.Fatal(err)
	}
	if got := textsOf(l); !reflect.DeepEqual(got, []string{"A", "D", "B", "C", "E"}) {
		t.Fatalf("got %v", got)
	}
}

func TestPriErrors(t *testing.T) {
	in, _, _ := newInterpreter()
	l := withItems("A", "B")
	_, err := in.Interpret(l, []string{"pri", "1"})
	wantKind(t, err, ArgumentCount)
	_, err = in.Interpret(l, []string{"pri", "one", "0"})
	wantKind(t, err, NotANumber)
	_, err = in.Interpret(l, []string{"pri", "0", "-1"})
	wantKind(t, err, NotANumber)
	_, err = in.Interpret(l, []string{"pri", "0", "1..2"})
	wantKind(t, err, NotANumber)
	_, err = in.Interpret(l, []string{"pri", "0", "5"})
	wantKind(t, err, OutOfRange)
	if got := textsOf(l); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("list changed: %v", got)
	}
}

func TestFileSwitchesLists(t *testing.T) {
	in, conf, lists := newInterpreter()
	lists.files["work"] = withItems("report")
	l := withItems("A")

	if _, err := in.Interpret(l, []string{"file", "work"}); err != nil {
		t.Fatal(err)
	}
	if conf.active != "work" {
		t.Fatalf("active = %q", conf.active)
	}
	if got := textsOf(lists.files["todo.data"]); !reflect.DeepEqual(got, []string{"A"}) {
		t.Fatalf("old list saved as %v", got)
	}
	if got := textsOf(l); !reflect.DeepEqual(got, []string{"report"}) {
		t.Fatalf("in-memory list = %v", got)
	}
	if got := conf.known.Slice(); !reflect.DeepEqual(got, []string{"todo.data", "work"}) {
		t.Fatalf("known = %v", got)
	}
}

func TestFileFromEmptyListForgetsIt(t *testing.T) {
	in, conf, lists := newInterpreter()
	lists.files["todo.data"] = withItems("stale")
	l := collection.New()

	if _, err := in.Interpret(l, []string{"f", "fresh"}); err != nil {
		t.Fatal(err)
	}
	if _, ok := lists.files["todo.data"]; ok {
		t.Fatalf("empty list file should be removed")
	}
	if got := conf.known.Slice(); !reflect.DeepEqual(got, []string{"fresh"}) {
		t.Fatalf("known = %v", got)
	}
	if !l.IsEmpty() {
		t.Fatalf("new list should be empty")
	}
}

func TestFileThenUndoTargetsNewList(t *testing.T) {
	in, _, lists := newInterpreter()
	lists.backups["work"] = withItems("older work")
	l := withItems("A")
	if _, err := in.Interpret(l, []string{"file", "work"}); err != nil {
		t.Fatal(err)
	}
	if _, err := in.Interpret(l, []string{"undo"}); err != nil {
		t.Fatal(err)
	}
	if got := textsOf(l); !reflect.DeepEqual(got, []string{"older work"}) {
		t.Fatalf("got %v", got)
	}
}

func TestFileAndReadRejectBadNames(t *testing.T) {
	in, conf, _ := newInterpreter()
	l := withItems("A")
	for _, name := range []string{"", "../x", "a/b", ".hidden", "todo.data.bk", "todo.config", "todo.lock"} {
		_, err := in.Interpret(l, []string{"file", name})
		wantKind(t, err, InvalidName)
		_, err = in.Interpret(l, []string{"read", name})
		wantKind(t, err, InvalidName)
	}
	if conf.active != "todo.data" {
		t.Fatalf("active changed to %q", conf.active)
	}
	_, err := in.Interpret(l, []string{"file"})
	wantKind(t, err, ArgumentCount)
	_, err = in.Interpret(l, []string{"file", "a", "b"})
	wantKind(t, err, ArgumentCount)
}

func TestReadAppends(t *testing.T) {
	in, conf, lists := newInterpreter()
	lists.files["work"] = withItems("x", "y")
	l := withItems("A")
	if _, err := in.Interpret(l, []string{"read", "work"}); err != nil {
		t.Fatal(err)
	}
	if got := textsOf(l); !reflect.DeepEqual(got, []string{"A", "x", "y"}) {
		t.Fatalf("got %v", got)
	}
	if conf.active != "todo.data" {
		t.Fatalf("read must not switch lists")
	}
	if got := textsOf(lists.files["work"]); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Fatalf("other list changed: %v", got)
	}
}

func TestReadMissingAndCorrupt(t *testing.T) {
	in, _, lists := newInterpreter()
	l := withItems("A")
	if _, err := in.Interpret(l, []string{"r", "nothing"}); err != nil {
		t.Fatalf("absent list should be success: %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("nothing should be appended")
	}

	lists.corrupt["broken"] = true
	_, err := in.Interpret(l, []string{"read", "broken"})
	wantKind(t, err, Unreadable)
	if !errors.Is(err, store.ErrCorrupt) {
		t.Fatalf("err should wrap ErrCorrupt")
	}
	_, err = in.Interpret(l, []string{"read"})
	wantKind(t, err, ArgumentCount)
}

func TestPersistRemovesEmptyList(t *testing.T) {
	in, conf, lists := newInterpreter()
	l := collection.New(entry.New("buy milk"))
	if err := in.Persist(l); err != nil {
		t.Fatal(err)
	}
	if _, ok := lists.files["todo.data"]; !ok {
		t.Fatalf("list not saved")
	}
	l.Clear()
	if err := in.Persist(l); err != nil {
		t.Fatal(err)
	}
	if _, ok := lists.files["todo.data"]; ok {
		t.Fatalf("empty list should be removed")
	}
	if conf.known.Contains("todo.data") {
		t.Fatalf("empty list name should be forgotten")
	}

	l.Add("again")
	if err := in.Persist(l); err != nil {
		t.Fatal(err)
	}
	if !conf.known.Contains("todo.data") {
		t.Fatalf("saved list name should be known again")
	}
}

func TestCommandErrorMessage(t *testing.T) {
	err := fail("del", UnparsableIndex, "1.2", nil)
	if got, want := err.Error(), `del: not an index or range "1.2"`; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

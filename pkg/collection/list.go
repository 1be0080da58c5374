// Package collection holds the ordered todo list and the set of known list names.
package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"tableflip.dev/todo/pkg/entry"
)

// ErrOutOfRange is returned when a position does not address an item.
var ErrOutOfRange = errors.New("collection: position out of range")

// List is an ordered sequence of entries. Insertion order is display order and
// addressing order; positions are zero-based and contiguous.
type List struct {
	items []entry.Entry
}

// New returns a list holding a copy of items.
func New(items ...entry.Entry) *List {
	l := &List{}
	l.items = append(l.items, items...)
	return l
}

// Add appends a pending entry.
func (l *List) Add(text string) {
	l.items = append(l.items, entry.New(text))
}

// Delete removes the entry at pos, shifting later entries down by one.
func (l *List) Delete(pos int) error {
	if err := l.check(pos); err != nil {
		return err
	}
	l.items = append(l.items[:pos], l.items[pos+1:]...)
	return nil
}

// DeleteAll removes every addressed position, highest first, skipping
// positions outside the list. It returns how many entries were removed.
func (l *List) DeleteAll(positions []int) int {
	sorted := append([]int(nil), positions...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	removed := 0
	last := -1
	for _, pos := range sorted {
		if pos == last {
			continue
		}
		last = pos
		if l.Delete(pos) == nil {
			removed++
		}
	}
	return removed
}

// Mark toggles the completion flag of the entry at pos.
func (l *List) Mark(pos int) error {
	if err := l.check(pos); err != nil {
		return err
	}
	l.items[pos].Toggle()
	return nil
}

// Reorder moves the entry at from so it lands where the user saw position to
// before the move. Equal positions are a no-op.
func (l *List) Reorder(from, to int) error {
	if err := l.check(from); err != nil {
		return err
	}
	if err := l.check(to); err != nil {
		return err
	}
	moved := l.items[from]
	switch {
	case from > to:
		l.insert(to, moved)
		l.items = append(l.items[:from+1], l.items[from+2:]...)
	case from < to:
		l.insert(to+1, moved)
		l.items = append(l.items[:from], l.items[from+1:]...)
	}
	return nil
}

// Append adds copies of other's entries onto the end of l.
func (l *List) Append(other *List) {
	if other == nil {
		return
	}
	l.items = append(l.items, other.items...)
}

// Clear drops every entry.
func (l *List) Clear() {
	l.items = nil
}

// Replace swaps the contents of l for a copy of other.
func (l *List) Replace(other *List) {
	l.items = nil
	l.Append(other)
}

// Clone returns an independent copy.
func (l *List) Clone() *List {
	return New(l.items...)
}

// IsEmpty reports whether the list has no entries.
func (l *List) IsEmpty() bool {
	return len(l.items) == 0
}

// Len is the number of entries.
func (l *List) Len() int {
	return len(l.items)
}

// Items returns a copy of the entries in order.
func (l *List) Items() []entry.Entry {
	return append([]entry.Entry(nil), l.items...)
}

// At returns the entry at pos.
func (l *List) At(pos int) (entry.Entry, error) {
	if err := l.check(pos); err != nil {
		return entry.Entry{}, err
	}
	return l.items[pos], nil
}

func (l *List) insert(pos int, e entry.Entry) {
	l.items = append(l.items, entry.Entry{})
	copy(l.items[pos+1:], l.items[pos:])
	l.items[pos] = e
}

func (l *List) check(pos int) error {
	if pos < 0 || pos >= len(l.items) {
		return fmt.Errorf("%w: %d not in 0..%d", ErrOutOfRange, pos, len(l.items)-1)
	}
	return nil
}

// document is the persisted shape of a list: {"list": [...]}.
type document struct {
	List []entry.Entry `json:"list"`
}

// MarshalJSON writes the list as {"list": [...]}.
func (l *List) MarshalJSON() ([]byte, error) {
	items := l.items
	if items == nil {
		items = []entry.Entry{}
	}
	return json.Marshal(document{List: items})
}

// UnmarshalJSON reads {"list": [...]}. A missing or null list decodes as empty.
func (l *List) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	l.items = doc.List
	return nil
}

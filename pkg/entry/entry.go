// Package entry defines a single todo item and its on-disk encoding.
package entry

import (
	"encoding/json"
	"fmt"
)

const (
	// MarkPending is the persisted completion marker for open items.
	MarkPending = ' '
	// MarkDone is the persisted completion marker for finished items.
	MarkDone = 'x'
)

// New returns a pending item with the given text.
func New(text string) Entry {
	return Entry{Text: text}
}

// Entry is one item in a todo list. It has no identity beyond its position.
type Entry struct {
	Text string
	Done bool
}

// Toggle flips the completion flag.
func (e *Entry) Toggle() {
	e.Done = !e.Done
}

// Marker is the one character completion marker used on disk and when printing.
func (e Entry) Marker() string {
	if e.Done {
		return string(MarkDone)
	}
	return string(MarkPending)
}

func (e Entry) String() string {
	return fmt.Sprintf("[%s] - %s", e.Marker(), e.Text)
}

// wire is the persisted shape: {"item": "...", "completed": "x"}.
type wire struct {
	Item      string `json:"item"`
	Completed string `json:"completed"`
}

// MarshalJSON writes the entry using the single character completion marker.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(wire{Item: e.Text, Completed: e.Marker()})
}

// UnmarshalJSON accepts any marker; "x" or "X" means done.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	e.Text = w.Item
	e.Done = w.Completed == "x" || w.Completed == "X"
	return nil
}

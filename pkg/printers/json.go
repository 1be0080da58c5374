package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/todo/pkg/collection"
)

// JSONPrint renders lists and errors as single JSON documents.
type JSONPrint struct {
	Out io.Writer
}

type jsonItem struct {
	Index int    `json:"index"`
	Item  string `json:"item"`
	Done  bool   `json:"done"`
}

func (jp *JSONPrint) out() io.Writer {
	if jp.Out == nil {
		return color.Output
	}
	return jp.Out
}

// List writes {"list": name, "items": [...]}.
func (jp *JSONPrint) List(name string, list *collection.List) error {
	items := make([]jsonItem, 0, list.Len())
	for i, e := range list.Items() {
		items = append(items, jsonItem{Index: i, Item: e.Text, Done: e.Done})
	}
	return jp.write(map[string]interface{}{
		"list":  name,
		"items": items,
	})
}

// Lists writes {"active": name, "lists": [...]}.
func (jp *JSONPrint) Lists(names []string, active string) error {
	if names == nil {
		names = []string{}
	}
	return jp.write(map[string]interface{}{
		"active": active,
		"lists":  names,
	})
}

// Error writes {"error": "..."}.
func (jp *JSONPrint) Error(err error) error {
	return jp.write(map[string]string{
		"error": err.Error(),
	})
}

func (jp *JSONPrint) write(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(jp.out(), string(b))
	return err
}

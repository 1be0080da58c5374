package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/todo/pkg/collection"
)

// PrettyPrint renders lists for a terminal.
type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title+" Todo:")
}

// List prints every item as "  3. [x] - text", indices right aligned.
func (pp *PrettyPrint) List(list *collection.List) {
	if list.IsEmpty() {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n")
		return
	}

	done := color.New(color.Faint, color.CrossedOut)

	tbl := uitable.New()
	tbl.Separator = " "
	for i, e := range list.Items() {
		text := e.Text
		if e.Done {
			text = done.Sprint(text)
		}
		tbl.AddRow(fmt.Sprintf("%d.", i), "["+e.Marker()+"]", "-", text)
	}
	tbl.RightAlign(0)
	// uitable pads the last column too.
	for _, line := range strings.Split(strings.TrimRight(tbl.String(), "\n"), "\n") {
		_, _ = fmt.Fprintln(pp.out(), strings.TrimRight(line, " "))
	}
}

// Lists prints the known list names, flagging the active one.
func (pp *PrettyPrint) Lists(names []string, active string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), "Lists:")

	if len(names) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n")
		return
	}

	a := color.New(color.FgHiYellow)
	for _, name := range names {
		if name == active {
			_, _ = a.Fprintf(pp.out(), "* %s\n", name)
			continue
		}
		_, _ = fmt.Fprintf(pp.out(), "  %s\n", name)
	}
}

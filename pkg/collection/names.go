package collection

// Names is an insertion-ordered set of list names. Adding a name that is
// already present moves it to the end, so the order is also most recently used.
type Names struct {
	names []string
}

// NewNames builds a set from names, keeping the last occurrence of duplicates.
func NewNames(names ...string) *Names {
	n := &Names{}
	for _, name := range names {
		n.Add(name)
	}
	return n
}

// Add removes any prior occurrence of name, then appends it.
func (n *Names) Add(name string) {
	n.Remove(name)
	n.names = append(n.names, name)
}

// Remove drops name if present.
func (n *Names) Remove(name string) {
	for i, have := range n.names {
		if have == name {
			n.names = append(n.names[:i], n.names[i+1:]...)
			return
		}
	}
}

// Contains reports whether name is in the set.
func (n *Names) Contains(name string) bool {
	for _, have := range n.names {
		if have == name {
			return true
		}
	}
	return false
}

// Len is the number of names.
func (n *Names) Len() int {
	return len(n.names)
}

// Slice returns the names in order.
func (n *Names) Slice() []string {
	out := make([]string, len(n.names))
	copy(out, n.names)
	return out
}

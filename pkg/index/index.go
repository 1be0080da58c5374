// Package index parses the positional index syntax used by todo commands.
//
// A token is either a single zero-based position ("5") or an inclusive range
// written as "5-10" or "5..10".
package index

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalid is wrapped by every parse failure.
var ErrInvalid = errors.New("index: invalid token")

// Error reports the token that failed to parse.
type Error struct {
	Token string
}

func (e *Error) Error() string {
	return fmt.Sprintf("index: invalid token %q", e.Token)
}

func (e *Error) Unwrap() error {
	return ErrInvalid
}

// Selection is a single position or an inclusive range of positions.
// Ranges are stored half-open as [lo, end).
type Selection struct {
	lo     int
	end    int
	ranged bool
}

// Single returns a selection of exactly one position.
func Single(n int) Selection {
	return Selection{lo: n, end: n + 1}
}

// Range returns the inclusive range [lo, hi]. Callers are expected to pass lo < hi.
func Range(lo, hi int) Selection {
	return Selection{lo: lo, end: hi + 1, ranged: true}
}

// IsRange reports whether the token used range syntax.
func (s Selection) IsRange() bool {
	return s.ranged
}

// Lo is the first selected position.
func (s Selection) Lo() int {
	return s.lo
}

// Hi is the last selected position, inclusive.
func (s Selection) Hi() int {
	return s.end - 1
}

// Len is the number of selected positions.
func (s Selection) Len() int {
	return s.end - s.lo
}

// Within limits the selection to positions below n.
func (s Selection) Within(n int) Selection {
	if s.end > n {
		s.end = n
	}
	if s.lo > s.end {
		s.lo = s.end
	}
	return s
}

// Indices returns the selected positions in ascending order.
func (s Selection) Indices() []int {
	out := make([]int, 0, s.Len())
	for i := s.lo; i < s.end; i++ {
		out = append(out, i)
	}
	return out
}

// Descending returns the selected positions highest first. Batch deletes must
// walk this order so earlier removals do not shift later targets.
func (s Selection) Descending() []int {
	out := make([]int, 0, s.Len())
	for i := s.end - 1; i >= s.lo; i-- {
		out = append(out, i)
	}
	return out
}

func (s Selection) String() string {
	if s.ranged {
		return fmt.Sprintf("%d..%d", s.Lo(), s.Hi())
	}
	return strconv.Itoa(s.lo)
}

// Parse reads a single index or a range from token.
func Parse(token string) (Selection, error) {
	invalid := &Error{Token: token}

	first, rest := digits(token)
	if first == "" {
		return Selection{}, invalid
	}
	if rest == "" {
		n, err := number(first)
		if err != nil {
			return Selection{}, invalid
		}
		return Single(n), nil
	}

	switch {
	case rest[0] == '-':
		rest = rest[1:]
	case len(rest) >= 2 && rest[:2] == "..":
		rest = rest[2:]
	default:
		return Selection{}, invalid
	}

	second, tail := digits(rest)
	if second == "" || tail != "" {
		return Selection{}, invalid
	}

	lo, err := number(first)
	if err != nil {
		return Selection{}, invalid
	}
	hi, err := number(second)
	if err != nil {
		return Selection{}, invalid
	}
	if lo >= hi {
		return Selection{}, invalid
	}
	return Range(lo, hi), nil
}

// number parses a digit run, leaving room for the exclusive end bound.
func number(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n == math.MaxInt {
		return 0, strconv.ErrRange
	}
	return n, nil
}

// digits splits s into its leading run of ASCII digits and the remainder.
func digits(s string) (string, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

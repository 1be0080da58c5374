package interpreter

import (
	"errors"
	"fmt"
)

// ErrUsage is wrapped by every recoverable command error. The caller prints
// usage guidance and carries on.
var ErrUsage = errors.New("todo: usage error")

// Kind classifies a command error.
type Kind int

const (
	// ArgumentCount means the verb got the wrong number of arguments.
	ArgumentCount Kind = iota
	// UnparsableIndex means a token is not an index or range.
	UnparsableIndex
	// NotANumber means a plain integer argument did not parse.
	NotANumber
	// OutOfRange means an explicitly addressed position does not exist.
	OutOfRange
	// InvalidCommand means the verb is unknown.
	InvalidCommand
	// InvalidName means a list name cannot be used as a file name.
	InvalidName
	// Unreadable means another list's file exists but could not be decoded.
	Unreadable
)

func (k Kind) String() string {
	switch k {
	case ArgumentCount:
		return "wrong number of arguments"
	case UnparsableIndex:
		return "not an index or range"
	case NotANumber:
		return "not a number"
	case OutOfRange:
		return "position out of range"
	case InvalidCommand:
		return "unknown command"
	case InvalidName:
		return "invalid list name"
	case Unreadable:
		return "list file unreadable"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// CommandError is a recoverable failure of a single verb.
type CommandError struct {
	Verb  string
	Kind  Kind
	Token string
	Err   error
}

func (e *CommandError) Error() string {
	msg := e.Verb + ": " + e.Kind.String()
	if e.Token != "" {
		msg += fmt.Sprintf(" %q", e.Token)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is matches ErrUsage so callers can tell command errors from fatal ones.
func (e *CommandError) Is(target error) bool {
	return target == ErrUsage
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func fail(verb string, kind Kind, token string, err error) error {
	return &CommandError{Verb: verb, Kind: kind, Token: token, Err: err}
}

// IsUsage reports whether err is a recoverable command error.
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}

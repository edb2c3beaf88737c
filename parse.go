package tinyargs

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// ErrUnrecognized reports a token that matched no declaration.
	ErrUnrecognized ErrorKind = iota
	// ErrMissingValue reports a required value option that appeared as the
	// last token with nothing following it.
	ErrMissingValue
	// ErrMissingRequired reports a required declaration that was never set.
	ErrMissingRequired
)

// ParseError describes a single parse failure. Token is the offending
// command-line token for ErrUnrecognized and ErrMissingValue, and the
// declaration's long name (possibly empty) for ErrMissingRequired.
type ParseError struct {
	Kind  ErrorKind
	Token string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrUnrecognized:
		return fmt.Sprintf("unrecognized argument %q", e.Token)
	case ErrMissingValue:
		return fmt.Sprintf("missing value for argument %q", e.Token)
	case ErrMissingRequired:
		return fmt.Sprintf("missing required argument %q", e.Token)
	default:
		return fmt.Sprintf("parse error on %q", e.Token)
	}
}

// Diagnostic returns the human-readable line printed by [Registry.Parse].
// The wording is stable and part of the package's compatibility surface.
func (e *ParseError) Diagnostic() string {
	switch e.Kind {
	case ErrMissingValue:
		return fmt.Sprintf("Error: Missing value for argument %s", e.Token)
	case ErrMissingRequired:
		return fmt.Sprintf("Error: Missing required argument %s", e.Token)
	default:
		return fmt.Sprintf("Error: Unrecognized argument %s", e.Token)
	}
}

// ParseArgs scans argv against the registry's declarations and returns nil on
// success or a [*ParseError] describing the first failure.
//
// argv is the full argument vector; argv[0] is the program name and is always
// skipped. Tokens are matched exactly (case-sensitive) against declaration
// names in insertion order. A Flag match marks the declaration set. A Value
// match additionally consumes the following token as its value; when no token
// follows, a required option fails with [ErrMissingValue] while an optional
// one is marked set with no value. After a clean scan, the first required
// declaration still unset fails with [ErrMissingRequired], named by its long
// name.
//
// Parsing stops at the first failure and does not roll back: declarations
// matched by earlier tokens keep their state. Successive calls accumulate
// state; there is no implicit reset between parses.
func (r *Registry) ParseArgs(argv []string) error {
	for i := 1; i < len(argv); i++ {
		token := argv[i]
		arg := r.lookup(token)
		if arg == nil {
			return &ParseError{Kind: ErrUnrecognized, Token: token}
		}
		arg.set = true
		if arg.Kind == Value {
			if i+1 < len(argv) {
				i++
				arg.value = argv[i]
				arg.hasValue = true
			} else if arg.Required {
				return &ParseError{Kind: ErrMissingValue, Token: token}
			}
		}
	}
	for i := range r.args {
		arg := &r.args[i]
		if arg.Required && !arg.set {
			return &ParseError{Kind: ErrMissingRequired, Token: arg.Long}
		}
	}
	return nil
}

// Parse is the boolean-result form of [Registry.ParseArgs]. On failure it
// writes the diagnostic line to the registry's output and returns false. The
// library never terminates the process; the caller decides whether a false
// result is fatal.
func (r *Registry) Parse(argv []string) bool {
	if err := r.ParseArgs(argv); err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			fmt.Fprintln(r.out, perr.Diagnostic())
		} else {
			fmt.Fprintln(r.out, "Error:", err)
		}
		return false
	}
	return true
}

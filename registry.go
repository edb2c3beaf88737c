// Package tinyargs is a minimal command-line argument parser. A caller declares
// the flags and key/value options it expects on a [Registry], parses the
// process argument vector against those declarations, and queries the result.
//
// The package intentionally stays small: no combined short-flag clusters
// (-abc), no --opt=value syntax, no repeated options, no subcommands, and no
// type coercion. Every value stays a string.
//
// A Registry is not safe for concurrent use; callers must serialize access.
package tinyargs

import (
	"io"
	"os"
)

// Kind identifies how a declared argument consumes tokens.
type Kind int

const (
	// Flag is a boolean-presence argument with no following value (e.g. -h).
	Flag Kind = iota
	// Value is an argument that consumes the next token as its value
	// (e.g. -n Alice).
	Value
)

// String returns the label used for the kind in help output.
func (k Kind) String() string {
	if k == Flag {
		return "Flag"
	}
	return "Key=Value"
}

// Arg declares a single argument. At least one of Short or Long should be
// set; the registry does not enforce this, but a declaration with neither
// name can never match a token and is skipped in help output.
type Arg struct {
	// Short is the short token matched on the command line (e.g. "-h").
	Short string

	// Long is the long token matched on the command line (e.g. "--help").
	Long string

	// Kind selects between a presence flag and a value-consuming option.
	Kind Kind

	// Required indicates the argument must be set by the end of a
	// successful parse. Meaningful mostly for Value kind; a required Flag
	// is legal but unusual.
	Required bool

	// Description is free text shown in help output.
	Description string

	set      bool
	value    string
	hasValue bool
}

// matches reports whether token equals the short or long name, byte for
// byte. Unset names never match.
func (a *Arg) matches(token string) bool {
	return (a.Short != "" && a.Short == token) || (a.Long != "" && a.Long == token)
}

// Registry holds argument declarations in insertion order along with the
// state produced by parsing. The zero value is not usable; create one with
// [New].
//
// Parse state accumulates: parsing twice with different argument vectors
// leaves the union of both results on the registry. Create a fresh registry
// to start over.
type Registry struct {
	args []Arg
	out  io.Writer
}

// New returns an empty registry. Diagnostics and help are written to
// [os.Stdout] unless redirected with [Registry.SetOutput].
func New() *Registry {
	return &Registry{out: os.Stdout}
}

// Declare appends a declaration to the registry. Declarations are append-only
// and matched in insertion order; duplicate names are accepted silently, with
// the first declaration shadowing later ones at parse and query time.
func (r *Registry) Declare(arg Arg) {
	arg.set = false
	arg.value = ""
	arg.hasValue = false
	r.args = append(r.args, arg)
}

// SetOutput redirects diagnostic and help output to w.
func (r *Registry) SetOutput(w io.Writer) {
	r.out = w
}

// lookup returns the first declaration whose short or long name equals name,
// or nil if none matches.
func (r *Registry) lookup(name string) *Arg {
	for i := range r.args {
		if r.args[i].matches(name) {
			return &r.args[i]
		}
	}
	return nil
}

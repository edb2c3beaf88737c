package tinyargs

import "github.com/pressly/tinyargs/suggest"

// GetValue returns the parsed value of the first declaration whose short or
// long name equals name. The second result is false when no declaration
// matches or when the matched declaration carries no value; the two cases are
// indistinguishable to the caller.
func (r *Registry) GetValue(name string) (string, bool) {
	arg := r.lookup(name)
	if arg == nil || !arg.hasValue {
		return "", false
	}
	return arg.value, true
}

// IsFlagSet reports whether the first declaration matching name was seen
// during parsing. Despite the name, it reports the set state of any kind of
// declaration: a Value option that appeared on the command line also reports
// true. Returns false when no declaration matches.
func (r *Registry) IsFlagSet(name string) bool {
	arg := r.lookup(name)
	return arg != nil && arg.set
}

// Has reports whether the first declaration matching name is usably present:
// for a Flag, whether it was set; for a Value, whether a value was actually
// captured. This differs from [Registry.IsFlagSet] for an optional value
// option that appeared without a following token, which is set but has no
// value. Returns false when no declaration matches.
func (r *Registry) Has(name string) bool {
	arg := r.lookup(name)
	if arg == nil {
		return false
	}
	if arg.Kind == Flag {
		return arg.set
	}
	return arg.hasValue
}

// SuggestFor returns up to three declared names similar to token, for use in
// "did you mean" hints after an unrecognized-argument failure. The result may
// be empty.
func (r *Registry) SuggestFor(token string) []string {
	var names []string
	for i := range r.args {
		if s := r.args[i].Short; s != "" {
			names = append(names, s)
		}
		if l := r.args[i].Long; l != "" {
			names = append(names, l)
		}
	}
	return suggest.FindSimilar(token, names, 3)
}

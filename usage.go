package tinyargs

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Usage returns the help text for the registry: a "Usage:" header followed by
// one line per declaration in insertion order, showing whichever names are
// present, the description, and the kind label. Declarations with neither
// name are skipped. Long descriptions wrap to an 80-column budget with
// continuation lines indented under the description column.
func (r *Registry) Usage() string {
	var b strings.Builder
	b.WriteString("Usage:\n")

	maxNameLen := 0
	for i := range r.args {
		if n := len(argNames(&r.args[i])); n > maxNameLen {
			maxNameLen = n
		}
	}

	nameWidth := maxNameLen + 4
	wrapWidth := 80 - nameWidth
	if wrapWidth < 20 {
		wrapWidth = 20
	}

	for i := range r.args {
		arg := &r.args[i]
		names := argNames(arg)
		if names == "" {
			continue
		}

		description := fmt.Sprintf("(Type: %s)", arg.Kind)
		if arg.Description != "" {
			description = fmt.Sprintf("%s (Type: %s)", arg.Description, arg.Kind)
		}

		lines := strings.Split(wordwrap.WrapString(description, uint(wrapWidth)), "\n")
		padding := strings.Repeat(" ", maxNameLen-len(names)+4)
		fmt.Fprintf(&b, "  %s:%s%s\n", names, padding, lines[0])

		indentPadding := strings.Repeat(" ", nameWidth+3)
		for _, line := range lines[1:] {
			fmt.Fprintf(&b, "%s%s\n", indentPadding, line)
		}
	}
	return b.String()
}

// PrintHelp writes [Registry.Usage] to the registry's output.
func (r *Registry) PrintHelp() {
	fmt.Fprint(r.out, r.Usage())
}

func argNames(arg *Arg) string {
	switch {
	case arg.Short != "" && arg.Long != "":
		return arg.Short + ", " + arg.Long
	case arg.Short != "":
		return arg.Short
	default:
		return arg.Long
	}
}

package fmttools

import "fmt"

// Replace wraps a value so that every non-overlapping occurrence of pattern
// in its formatted output is replaced by replacement. The wrapper honors the
// verb and flags it is formatted with, so "%v", "%+v", "%#v", "%q" and
// friends all work and apply to the wrapped value:
//
//	fmt.Sprintf("%v", fmttools.Replace("a.b.c", ".", "/"))
//	// "a/b/c"
//
// The wrapper is reusable: each formatting request runs with fresh match
// state. An empty pattern formats the value unchanged.
func Replace(value any, pattern, replacement string) fmt.Formatter {
	return &replaced{value: value, pattern: pattern, replacement: replacement}
}

// ReplaceRune is a convenience for single-rune patterns.
func ReplaceRune(value any, old rune, replacement string) fmt.Formatter {
	return Replace(value, string(old), replacement)
}

type replaced struct {
	value       any
	pattern     string
	replacement string
}

func (r *replaced) Format(f fmt.State, verb rune) {
	w := NewWriter(f, r.pattern, r.replacement)
	_, _ = fmt.Fprintf(w, fmt.FormatString(f, verb), r.value)
	_ = w.Flush()
}

package fmttools

import "fmt"

// FormatterWith is implemented by values that need an extra context argument
// to format themselves, such as an ID that is only meaningful next to the
// registry it came from.
type FormatterWith[E any] interface {
	FormatWith(f fmt.State, verb rune, extra E)
}

// With pairs a value with the context it needs to format, producing a plain
// fmt.Formatter:
//
//	type entry struct{ key uint32 }
//
//	func (e entry) FormatWith(f fmt.State, verb rune, names map[uint32]string) {
//		fmt.Fprintf(f, "entry(%s)", names[e.key])
//	}
//
//	fmt.Sprint(fmttools.With(entry{key: 5}, names))
func With[E any](value FormatterWith[E], extra E) fmt.Formatter {
	return Func(func(f fmt.State, verb rune) {
		value.FormatWith(f, verb, extra)
	})
}

// Func adapts a function to fmt.Formatter. Formatting runs the function with
// the destination state and verb.
func Func(fn func(f fmt.State, verb rune)) fmt.Formatter {
	return funcFormatter(fn)
}

type funcFormatter func(fmt.State, rune)

func (fn funcFormatter) Format(f fmt.State, verb rune) { fn(f, verb) }

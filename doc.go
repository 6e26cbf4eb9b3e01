// Package fmttools provides streaming text transformation helpers that plug
// into fmt's formatting pipeline without buffering the formatted output.
//
// The centerpiece is Replace, which rewrites every occurrence of a literal
// pattern in a value's formatted output while it is being written:
//
//	type FooBar struct {
//		A string
//	}
//
//	v := FooBar{A: "Bar"}
//	fmt.Sprintf("%+v", fmttools.Replace(v, "Bar", "Biz"))
//	// "{A:Biz}"
//
// Matching works across write boundaries, so it does not matter how the
// wrapped value splits its output into chunks. Auxiliary state is bounded by
// the pattern length, independent of the amount of text formatted, and the
// write path performs no allocations.
//
// Join and its variants format the elements of an iterator with a separator
// between each pair:
//
//	elements := []string{"abc", "def", "ghi"}
//	fmt.Sprintf("%s", fmttools.JoinSlice(elements, ", "))
//	// "abc, def, ghi"
//
// With and Func adapt values that need extra context to format themselves
// into plain fmt.Formatter values.
package fmttools

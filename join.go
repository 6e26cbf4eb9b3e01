package fmttools

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

// Join formats the elements of seq separated by sep. Elements are formatted
// with the verb and flags the Join value itself is formatted with:
//
//	elements := []string{"abc", "\n", "123"}
//	fmt.Sprintf("%s", fmttools.JoinSlice(elements, ", "))  // abc, \n, 123
//	fmt.Sprintf("%q", fmttools.JoinSlice(elements, ", "))  // "abc", "\n", "123"
//
// The returned value may be formatted more than once as long as seq can be
// ranged over more than once; a single-use sequence simply yields no output
// the second time.
func Join[T any](seq iter.Seq[T], sep string) fmt.Formatter {
	return Func(func(f fmt.State, verb rune) {
		format := fmt.FormatString(f, verb)
		first := true
		for item := range seq {
			if !first {
				if _, err := io.WriteString(f, sep); err != nil {
					return
				}
			}
			first = false
			if _, err := fmt.Fprintf(f, format, item); err != nil {
				return
			}
		}
	})
}

// JoinSlice is Join over the elements of a slice.
func JoinSlice[T any](items []T, sep string) fmt.Formatter {
	return Join(slices.Values(items), sep)
}

// JoinFunc formats the elements of seq separated by sep, writing each
// element with fn. Iteration stops at the first error reported by the
// destination.
//
//	over := func(w io.Writer, x int) error {
//		if x > 3 {
//			_, err := io.WriteString(w, "3+")
//			return err
//		}
//		_, err := fmt.Fprintf(w, "%d", x)
//		return err
//	}
//	fmt.Sprint(fmttools.JoinFunc(slices.Values([]int{1, 2, 3, 4, 5}), ", ", over))
//	// 1, 2, 3, 3+, 3+
func JoinFunc[T any](seq iter.Seq[T], sep string, fn func(w io.Writer, item T) error) fmt.Formatter {
	return JoinFuncAll(seq, func(w io.Writer) error {
		_, err := io.WriteString(w, sep)
		return err
	}, fn)
}

// JoinFuncAll formats the elements of seq, writing each element with fn and
// each separator with sepFn. It is the fully general form of Join.
func JoinFuncAll[T any](seq iter.Seq[T], sepFn func(w io.Writer) error, fn func(w io.Writer, item T) error) fmt.Formatter {
	return Func(func(f fmt.State, _ rune) {
		first := true
		for item := range seq {
			if !first {
				if err := sepFn(f); err != nil {
					return
				}
			}
			first = false
			if err := fn(f, item); err != nil {
				return
			}
		}
	})
}

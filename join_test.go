package fmttools

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"testing"
)

func TestJoinDisplay(t *testing.T) {
	values := []string{"abc", "def", "\0123"}
	got := fmt.Sprintf("%s", JoinSlice(values, ", "))
	want := "abc, def, \0123"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestJoinQuoted(t *testing.T) {
	values := []string{"abc", "\n", "123"}
	got := fmt.Sprintf("%q", JoinSlice(values, ", "))
	want := `"abc", "\n", "123"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestJoinEmpty(t *testing.T) {
	if got := fmt.Sprintf("%v", JoinSlice([]int{}, ", ")); got != "" {
		t.Errorf("empty sequence should format as empty, got %q", got)
	}
}

func TestJoinSingle(t *testing.T) {
	if got := fmt.Sprintf("%v", JoinSlice([]int{7}, ":")); got != "7" {
		t.Errorf("got %q, want %q", got, "7")
	}
}

func TestJoinInts(t *testing.T) {
	got := fmt.Sprintf("%v", JoinSlice([]int{1, 2, 3, 4, 5}, ":"))
	if got != "1:2:3:4:5" {
		t.Errorf("got %q, want %q", got, "1:2:3:4:5")
	}
}

func TestJoinReusable(t *testing.T) {
	j := JoinSlice([]int{1, 2}, "-")
	for i := 0; i < 2; i++ {
		if got := fmt.Sprintf("%v", j); got != "1-2" {
			t.Errorf("format %d: got %q, want %q", i, got, "1-2")
		}
	}
}

func TestJoinFunc(t *testing.T) {
	over := func(w io.Writer, x int) error {
		if x > 3 {
			_, err := io.WriteString(w, "3+")
			return err
		}
		_, err := fmt.Fprintf(w, "%d", x)
		return err
	}
	got := fmt.Sprintf("%v", JoinFunc(slices.Values([]int{1, 2, 3, 4, 5}), ", ", over))
	want := "1, 2, 3, 3+, 3+"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestJoinFuncAll(t *testing.T) {
	element := func(w io.Writer, x int) error {
		_, err := fmt.Fprintf(w, "(%d)", x)
		return err
	}
	positive := true
	separator := func(w io.Writer) error {
		positive = !positive
		if positive {
			_, err := io.WriteString(w, " + ")
			return err
		}
		_, err := io.WriteString(w, " - ")
		return err
	}
	got := fmt.Sprintf("%v", JoinFuncAll(slices.Values([]int{1, 2, 3, 4, 5}), separator, element))
	want := "(1) - (2) + (3) - (4) + (5)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestJoinInsideReplace(t *testing.T) {
	// Wrappers compose: a join stream rewritten by a replacer.
	j := JoinSlice([]string{"a.b", "c.d"}, "; ")
	got := fmt.Sprintf("%v", Replace(j, ".", "/"))
	want := "a/b; c/d"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func BenchmarkJoin(b *testing.B) {
	values := make([]int, 100)
	for i := range values {
		values[i] = i
	}
	j := JoinSlice(values, ", ")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fmt.Sprintf("%v", j)
	}
}

func BenchmarkStringsJoin(b *testing.B) {
	values := make([]string, 100)
	for i := range values {
		values[i] = fmt.Sprint(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = strings.Join(values, ", ")
	}
}

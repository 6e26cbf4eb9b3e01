package fmttools

import (
	"bytes"
	"io"
)

// Writer replaces every non-overlapping occurrence of a literal pattern in
// the text written through it, forwarding the result to an underlying writer.
// Matching spans Write boundaries: a pattern split across any number of
// writes is still recognized, and a rune split across writes never confuses
// the matcher because comparison happens at the byte level against a valid
// UTF-8 pattern.
//
// Between writes the Writer withholds at most len(pattern) bytes of input
// that still form a live match candidate. Flush must be called after the
// final write to release any withheld text.
type Writer struct {
	fw io.Writer

	pattern     []byte
	replacement []byte

	// Number of input bytes withheld because they match a pattern prefix.
	// The withheld input is byte-identical to pattern[:withheld], so the
	// pattern doubles as the pending-match buffer.
	withheld int
}

// NewWriter returns a Writer that forwards text to fw with every occurrence
// of pattern replaced by replacement. An empty pattern yields a transparent
// pass-through.
func NewWriter(fw io.Writer, pattern, replacement string) *Writer {
	return &Writer{
		fw:          fw,
		pattern:     []byte(pattern),
		replacement: []byte(replacement),
	}
}

// Write feeds a chunk of text through the matcher. The returned count treats
// withheld bytes as written, as a buffered writer would. Errors from the
// underlying writer are returned verbatim.
func (w *Writer) Write(p []byte) (int, error) {
	if len(w.pattern) == 0 {
		return w.fw.Write(p)
	}
	if len(w.pattern) == 1 {
		return w.replaceByte(p)
	}

	total := len(p)
	for len(p) > 0 {
		if w.withheld == 0 {
			// Skip ahead to the next possible match start.
			i := bytes.IndexByte(p, w.pattern[0])
			if i < 0 {
				if err := w.forward(p); err != nil {
					return total - len(p), err
				}
				break
			}
			if err := w.forward(p[:i]); err != nil {
				return total - len(p), err
			}
			p = p[i+1:]
			w.withheld = 1
			continue
		}

		// Greedily extend the candidate as far as this chunk allows.
		overlap := min(len(p), len(w.pattern)-w.withheld)
		if bytes.Equal(p[:overlap], w.pattern[w.withheld:w.withheld+overlap]) {
			if w.withheld+overlap == len(w.pattern) {
				if err := w.forward(w.replacement); err != nil {
					return total - len(p), err
				}
				w.withheld = 0
			} else {
				w.withheld += overlap
			}
			p = p[overlap:]
			continue
		}

		// The candidate failed. Fall back to the longest pattern prefix
		// that is still alive and release everything before it.
		keep := w.backoff()
		if err := w.forward(w.pattern[:w.withheld-keep]); err != nil {
			return total - len(p), err
		}
		w.withheld = keep
	}

	return total, nil
}

// replaceByte handles single-byte patterns, which cannot span a write
// boundary and need no match state.
func (w *Writer) replaceByte(p []byte) (int, error) {
	total := len(p)
	for {
		i := bytes.IndexByte(p, w.pattern[0])
		if i < 0 {
			if err := w.forward(p); err != nil {
				return total - len(p), err
			}
			return total, nil
		}
		if err := w.forward(p[:i]); err != nil {
			return total - len(p), err
		}
		if err := w.forward(w.replacement); err != nil {
			return total - len(p), err
		}
		p = p[i+1:]
	}
}

// backoff returns the length of the longest proper prefix of the pattern
// that is also a suffix of the withheld text, which is where matching can
// resume after a failed candidate.
func (w *Writer) backoff() int {
	return patternBackoff(w.pattern, w.withheld)
}

// Flush releases any withheld text verbatim. Withheld text never completed a
// match, so it is forwarded unmodified.
func (w *Writer) Flush() error {
	n := w.withheld
	w.withheld = 0
	return w.forward(w.pattern[:n])
}

func (w *Writer) forward(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	_, err := w.fw.Write(p)
	return err
}

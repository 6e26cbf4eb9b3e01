package fmttools

import (
	"bytes"

	"golang.org/x/text/transform"
)

// Transformer returns a transform.Transformer that replaces every
// non-overlapping occurrence of pattern with replacement. It composes with
// the rest of the x/text streaming machinery:
//
//	r := transform.NewReader(src, fmttools.Transformer("Bar", "Biz"))
//
// The transformer carries at most len(pattern) bytes of state between calls
// and is reusable after Reset. An empty pattern copies input through
// unchanged.
func Transformer(pattern, replacement string) transform.Transformer {
	return &replaceTransformer{
		pattern:     []byte(pattern),
		replacement: []byte(replacement),
	}
}

type replaceTransformer struct {
	pattern     []byte
	replacement []byte
	withheld    int
}

func (t *replaceTransformer) Reset() { t.withheld = 0 }

func (t *replaceTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if len(t.pattern) == 0 {
		n := copy(dst, src)
		if n < len(src) {
			return n, n, transform.ErrShortDst
		}
		return n, n, nil
	}

	for nSrc < len(src) {
		rem := src[nSrc:]

		if t.withheld == 0 {
			i := bytes.IndexByte(rem, t.pattern[0])
			if i < 0 {
				i = len(rem)
			}
			n := copy(dst[nDst:], rem[:i])
			nDst += n
			nSrc += n
			if n < i {
				return nDst, nSrc, transform.ErrShortDst
			}
			if i < len(rem) {
				// A single-byte pattern is already a complete match.
				if len(t.pattern) == 1 {
					if len(dst)-nDst < len(t.replacement) {
						return nDst, nSrc, transform.ErrShortDst
					}
					nDst += copy(dst[nDst:], t.replacement)
				} else {
					t.withheld = 1
				}
				nSrc++
			}
			continue
		}

		overlap := min(len(rem), len(t.pattern)-t.withheld)
		if bytes.Equal(rem[:overlap], t.pattern[t.withheld:t.withheld+overlap]) {
			if t.withheld+overlap == len(t.pattern) {
				// Emit the replacement whole so the match state never
				// straddles a short destination.
				if len(dst)-nDst < len(t.replacement) {
					return nDst, nSrc, transform.ErrShortDst
				}
				nDst += copy(dst[nDst:], t.replacement)
				t.withheld = 0
			} else {
				t.withheld += overlap
			}
			nSrc += overlap
			continue
		}

		keep := patternBackoff(t.pattern, t.withheld)
		flush := t.pattern[:t.withheld-keep]
		if len(dst)-nDst < len(flush) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], flush)
		t.withheld = keep
	}

	if atEOF && t.withheld > 0 {
		flush := t.pattern[:t.withheld]
		if len(dst)-nDst < len(flush) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], flush)
		t.withheld = 0
	}

	return nDst, nSrc, nil
}

func patternBackoff(pattern []byte, withheld int) int {
	for off := 1; off < withheld; off++ {
		if bytes.Equal(pattern[:withheld-off], pattern[off:withheld]) {
			return withheld - off
		}
	}
	return 0
}

package line

import "strings"

// Escape returns the line-safe text form of s.
//
// Every occurrence of the escape character and of the separator is prefixed
// with the escape character. The single left-to-right pass is equivalent to
// the classic "escape the escape character first, then the separator"
// two-pass rule: an escape character inserted in front of a separator is
// never itself rescanned.
func Escape(s string, escape, sep rune) string {
	if !strings.ContainsRune(s, escape) && !strings.ContainsRune(s, sep) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	for _, r := range s {
		if r == escape || r == sep {
			b.WriteRune(escape)
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Unescape resolves escape sequences in s: the character following an
// escape character is kept literally, whatever it is. A dangling escape at
// the end of input is dropped.
func Unescape(s string, escape rune) string {
	if !strings.ContainsRune(s, escape) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	state := stateNormal
	for _, r := range s {
		if state == stateEscaped {
			b.WriteRune(r)
			state = stateNormal
			continue
		}

		if r == escape {
			state = stateEscaped
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

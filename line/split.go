package line

import (
	"fmt"
	"unicode"

	"github.com/arloliu/linekv/errs"
)

// scanState is the per-character escape state of the line scanner.
type scanState uint8

const (
	stateNormal scanState = iota
	stateEscaped
)

// markedRune is a rune plus the knowledge of whether it entered the text
// through an escape sequence. Trimming must not touch escaped runes.
type markedRune struct {
	r       rune
	escaped bool
}

// Split decomposes a single line into its key and value.
//
// The scanner walks the line rune by rune with an explicit two-state escape
// machine: in the normal state the escape character switches to the escaped
// state without emitting anything, and the first separator seen ends the
// key; in the escaped state the current rune is emitted literally and the
// state returns to normal. Everything after the key-ending separator is the
// value and is not scanned for further separators.
//
// Both key and value are returned unescaped. Surrounding whitespace is
// trimmed, but only where it was not escaped: `\ a` keeps its leading
// space, ` a` does not. A trailing line terminator is plain unescaped
// whitespace and is trimmed with the rest.
//
// Split fails with errs.ErrNoValue when the line contains no unescaped
// separator, and with errs.ErrNoKey when the key is empty after trimming.
func Split(s string, escape, sep rune) (key, value string, err error) {
	var (
		keyRunes []markedRune
		state    = stateNormal
		rest     = -1
	)

	for i, r := range s {
		if state == stateEscaped {
			keyRunes = append(keyRunes, markedRune{r: r, escaped: true})
			state = stateNormal
			continue
		}

		switch r {
		case escape:
			state = stateEscaped
		case sep:
			// First unescaped separator ends the key; the remainder is the
			// value, separators and all.
			rest = i + len(string(r))
		default:
			keyRunes = append(keyRunes, markedRune{r: r})
		}

		if rest >= 0 {
			break
		}
	}

	if rest < 0 {
		return "", "", fmt.Errorf("%w: no unescaped separator %q in line", errs.ErrNoValue, sep)
	}

	key = trimUnescaped(keyRunes)
	if key == "" {
		return "", "", fmt.Errorf("%w: separator %q at start of line", errs.ErrNoKey, sep)
	}

	value = trimUnescaped(unescapeRunes(s[rest:], escape))

	return key, value, nil
}

// unescapeRunes resolves escape sequences in s, keeping track of which
// runes were escaped. A dangling escape at the end of input is dropped.
func unescapeRunes(s string, escape rune) []markedRune {
	out := make([]markedRune, 0, len(s))
	state := stateNormal

	for _, r := range s {
		if state == stateEscaped {
			out = append(out, markedRune{r: r, escaped: true})
			state = stateNormal
			continue
		}

		if r == escape {
			state = stateEscaped
			continue
		}

		out = append(out, markedRune{r: r})
	}

	return out
}

// trimUnescaped strips leading and trailing unescaped whitespace and
// returns the remaining text. Escaped whitespace is part of the payload and
// survives trimming.
func trimUnescaped(runes []markedRune) string {
	start := 0
	for start < len(runes) && !runes[start].escaped && unicode.IsSpace(runes[start].r) {
		start++
	}

	end := len(runes)
	for end > start && !runes[end-1].escaped && unicode.IsSpace(runes[end-1].r) {
		end--
	}

	out := make([]rune, 0, end-start)
	for _, mr := range runes[start:end] {
		out = append(out, mr.r)
	}

	return string(out)
}

package line

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	require.Equal(t, "plain", Escape("plain", '\\', '='))
	require.Equal(t, `a\=b`, Escape("a=b", '\\', '='))
	require.Equal(t, `a\\b`, Escape(`a\b`, '\\', '='))
	require.Equal(t, `\\\=`, Escape(`\=`, '\\', '='))
	require.Equal(t, `\=\=\=`, Escape("===", '\\', '='))
}

func TestEscape_NoCommaEscaping(t *testing.T) {
	// Commas pass through untouched: list elements cannot contain them.
	require.Equal(t, "a,b", Escape("a,b", '\\', '='))
}

func TestUnescape(t *testing.T) {
	require.Equal(t, "plain", Unescape("plain", '\\'))
	require.Equal(t, "a=b", Unescape(`a\=b`, '\\'))
	require.Equal(t, `a\b`, Unescape(`a\\b`, '\\'))
	require.Equal(t, "x", Unescape(`\x`, '\\'))
}

func TestUnescape_DanglingEscapeDropped(t *testing.T) {
	require.Equal(t, "abc", Unescape(`abc\`, '\\'))
}

func TestEscapeUnescape_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"=",
		`\`,
		`\=`,
		`=\`,
		`\\==\\`,
		`a=b\c=d\\e`,
		"равно=значение",
	}
	for _, in := range inputs {
		require.Equal(t, in, Unescape(Escape(in, '\\', '='), '\\'), "input %q", in)
	}
}

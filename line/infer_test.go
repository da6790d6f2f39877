package line

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInfer_Precedence(t *testing.T) {
	require.Equal(t, true, Infer("true"))
	require.Equal(t, false, Infer("false"))
	require.Equal(t, uint64(1), Infer("1"))
	require.Equal(t, uint64(0), Infer("0"))
	require.Equal(t, int64(-1), Infer("-1"))
	require.Nil(t, Infer(""))
	require.Equal(t, "abc", Infer("abc"))
}

func TestInfer_BooleanIsExactMatch(t *testing.T) {
	require.Equal(t, "True", Infer("True"))
	require.Equal(t, "TRUE", Infer("TRUE"))
	require.Equal(t, "truex", Infer("truex"))
}

func TestInfer_UnsignedWinsOverSigned(t *testing.T) {
	v := Infer("42")
	_, isUint := v.(uint64)
	require.True(t, isUint, "unsigned must win for %v", v)
}

func TestInfer_LargeNumbers(t *testing.T) {
	// Fits uint64 but not int64.
	require.Equal(t, uint64(18446744073709551615), Infer("18446744073709551615"))
	// Fits int64 only.
	require.Equal(t, int64(-9223372036854775808), Infer("-9223372036854775808"))
	// Fits neither: falls through to string.
	require.Equal(t, "18446744073709551616", Infer("18446744073709551616"))
}

func TestInfer_FloatsStayStrings(t *testing.T) {
	// Floats are not part of the inference precedence.
	require.Equal(t, "3.5", Infer("3.5"))
}

package codec

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkEncoder_Struct(b *testing.B) {
	in := roundTripRecord{
		Name:    "widget",
		Count:   42,
		Offset:  -7,
		Ratio:   0.625,
		Active:  true,
		Tags:    []string{"a", "b", "c"},
		Weights: []int{1, -2, 3},
	}

	enc, err := NewEncoder(io.Discard)
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := enc.Encode(in); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecoder_Struct(b *testing.B) {
	data := []byte("name=widget\ncount=42\noffset=-7\nratio=0.625\nactive=true\ntags=a,b,c\nweights=1,-2,3\n")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dec, err := NewDecoder(bytes.NewReader(data))
		if err != nil {
			b.Fatal(err)
		}

		var out roundTripRecord
		if err := dec.Decode(&out); err != nil {
			b.Fatal(err)
		}
	}
}

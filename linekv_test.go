package linekv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/linekv/codec"
	"github.com/arloliu/linekv/errs"
	"github.com/arloliu/linekv/format"
)

type server struct {
	Host string   `linekv:"host"`
	Port uint16   `linekv:"port"`
	Tags []string `linekv:"tags"`
}

func TestMarshalUnmarshal(t *testing.T) {
	in := server{Host: "db1", Port: 5432, Tags: []string{"a", "b"}}

	data, err := Marshal(in)
	require.NoError(t, err)
	require.Equal(t, "host=db1\nport=5432\ntags=a,b\n", string(data))

	var out server
	require.NoError(t, Unmarshal(data, &out))
	require.Equal(t, in, out)
}

func TestMarshalTo_UnmarshalFrom(t *testing.T) {
	in := server{Host: "db2", Port: 443, Tags: []string{"x"}}

	var buf bytes.Buffer
	require.NoError(t, MarshalTo(&buf, in))

	var out server
	require.NoError(t, UnmarshalFrom(&buf, &out))
	require.Equal(t, in, out)
}

func TestUnmarshalAny(t *testing.T) {
	fields, err := UnmarshalAny([]byte("retries=3\nverbose=true\ndelta=-2\nnote=\nname=widget\n"))
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"retries": uint64(3),
		"verbose": true,
		"delta":   int64(-2),
		"note":    nil,
		"name":    "widget",
	}, fields)
}

func TestMarshal_WithOptions(t *testing.T) {
	in := server{Host: "a:b", Port: 1, Tags: []string{"t"}}

	data, err := Marshal(in, codec.WithSeparator(':'), codec.WithEscape('#'))
	require.NoError(t, err)
	require.Equal(t, "host:a#:b\nport:1\ntags:t\n", string(data))

	var out server
	require.NoError(t, Unmarshal(data, &out, codec.WithSeparator(':'), codec.WithEscape('#')))
	require.Equal(t, in, out)
}

func TestMarshal_Compressed(t *testing.T) {
	in := server{Host: strings.Repeat("h", 200), Port: 9, Tags: []string{"a", "b"}}

	raw, err := Marshal(in)
	require.NoError(t, err)

	data, err := Marshal(in, codec.WithCompression(format.CompressionS2))
	require.NoError(t, err)
	require.Less(t, len(data), len(raw))

	var out server
	require.NoError(t, Unmarshal(data, &out, codec.WithCompression(format.CompressionS2)))
	require.Equal(t, in, out)
}

func TestUnmarshal_Errors(t *testing.T) {
	var out server
	require.ErrorIs(t, Unmarshal([]byte("host=a\n"), &out), errs.ErrNoValue)
	require.ErrorIs(t, Unmarshal([]byte("host=a\nport=x\ntags=\n"), &out), errs.ErrInvalidValue)
	require.ErrorIs(t, Unmarshal(nil, out), errs.ErrUnsupportedType)
}

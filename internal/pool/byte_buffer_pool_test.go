package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Writes(t *testing.T) {
	bb := NewByteBuffer(16)

	bb.WriteString("key")
	require.NoError(t, bb.WriteByte('='))
	bb.WriteString("value")
	bb.WriteRune('→')

	require.Equal(t, "key=value→", string(bb.Bytes()))
	require.Equal(t, len("key=value→"), bb.Len())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.WriteString("data")

	c := bb.Cap()
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, c, bb.Cap(), "Reset must retain capacity")
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.WriteString("payload")

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", out.String())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(8, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.WriteString("scratch")
	p.Put(bb)

	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len(), "pooled buffers are handed out empty")
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(8, 16)

	bb := p.Get()
	bb.WriteString(string(make([]byte, 128)))
	p.Put(bb) // over threshold, dropped

	p.Put(nil) // must not panic
}

func TestDefaultLinePool(t *testing.T) {
	bb := GetLineBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	PutLineBuffer(bb)
}

package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/linekv/errs"
	"github.com/arloliu/linekv/format"
)

func TestCreateCodec(t *testing.T) {
	for _, comp := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := CreateCodec(comp)
		require.NoError(t, err, "compression %s", comp)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0xff))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("key=value\nother=1,2,3\n"), 64)

	codecs := map[string]Codec{
		"noop": NewNoOpCompressor(),
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	}

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, restored)
		})
	}
}

func TestCodecs_EmptyPayload(t *testing.T) {
	codecs := []Codec{
		NewNoOpCompressor(),
		NewZstdCompressor(),
		NewS2Compressor(),
		NewLZ4Compressor(),
	}

	for _, codec := range codecs {
		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, compressed)

		restored, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestCodecs_CompressibleText(t *testing.T) {
	// Line text is highly repetitive; every real codec should shrink it.
	payload := bytes.Repeat([]byte("metric.cpu.usage=99.5\n"), 256)

	for name, codec := range map[string]Codec{
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	} {
		compressed, err := codec.Compress(payload)
		require.NoError(t, err, name)
		require.Less(t, len(compressed), len(payload), "%s should compress repetitive text", name)
	}
}

func TestDecompress_CorruptedInput(t *testing.T) {
	garbage := []byte{0x01, 0x02, 0x03, 0x04, 0x05}

	_, err := NewZstdCompressor().Decompress(garbage)
	require.Error(t, err)
}

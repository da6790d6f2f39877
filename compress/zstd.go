package compress

// ZstdCompressor provides Zstandard compression for encoded records.
//
// Zstd trades compression speed for ratio, which suits records that are
// written once and shipped or archived: the line text is highly repetitive
// (keys, separators, terminators) and compresses well.
//
// The implementation is selected at build time: cgo builds use the
// valyala/gozstd bindings, pure-Go builds fall back to klauspost/compress.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

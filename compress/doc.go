// Package compress provides the whole-stream compression codecs available
// to the linekv encoder and decoder.
//
// The encoded line text is treated as one opaque payload: the encoder
// compresses the complete record after encoding, and the decoder
// decompresses the complete input before splitting it into lines. Four
// codecs are available: None, Zstd, S2, and LZ4.
package compress

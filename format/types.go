// Package format defines the wire-level constants shared by the linekv
// encoder and decoder.
package format

// CompressionType selects the whole-stream compression applied to the
// encoded line text.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

const (
	// DefaultSeparator divides a line's key from its value.
	DefaultSeparator = '='

	// DefaultEscape marks the following character as literal, allowing the
	// separator and the escape character itself to appear inside keys and
	// values.
	DefaultEscape = '\\'

	// ListSeparator joins list elements inside a value. It is fixed and not
	// escapable: list elements cannot contain literal commas.
	ListSeparator = ','

	// LineTerminator ends every encoded field line.
	LineTerminator = '\n'
)

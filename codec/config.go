package codec

import (
	"fmt"
	"unicode"

	"github.com/arloliu/linekv/compress"
	"github.com/arloliu/linekv/errs"
	"github.com/arloliu/linekv/format"
	"github.com/arloliu/linekv/internal/options"
)

// TagName is the struct tag consulted for field names. A tag value of "-"
// skips the field; any other non-empty value replaces the Go field name on
// the wire.
const TagName = "linekv"

// Config holds the settings shared by Encoder and Decoder.
//
// Both sides must agree on the separator, escape character, and compression
// type for a round trip to succeed. The zero value is not usable; configs
// are built by NewEncoder/NewDecoder from the defaults plus options.
type Config struct {
	separator   rune
	escape      rune
	compression format.CompressionType
	strictKeys  bool
}

func newConfig() *Config {
	return &Config{
		separator:   format.DefaultSeparator,
		escape:      format.DefaultEscape,
		compression: format.CompressionNone,
	}
}

// Separator returns the configured key/value separator.
func (c *Config) Separator() rune {
	return c.separator
}

// Escape returns the configured escape character.
func (c *Config) Escape() rune {
	return c.escape
}

// Compression returns the configured compression type.
func (c *Config) Compression() format.CompressionType {
	return c.compression
}

// validate rejects separator/escape combinations that would make the line
// grammar ambiguous. It runs once after all options are applied, so options
// may be given in any order.
func (c *Config) validate() error {
	if c.separator == c.escape {
		return fmt.Errorf("%w: separator and escape are both %q", errs.ErrInvalidSeparator, c.separator)
	}

	for _, r := range []rune{c.separator, c.escape} {
		switch {
		case r == format.ListSeparator:
			return fmt.Errorf("%w: %q collides with the list separator", errs.ErrInvalidSeparator, r)
		case r == format.LineTerminator || r == '\r':
			return fmt.Errorf("%w: %q collides with the line terminator", errs.ErrInvalidSeparator, r)
		case unicode.IsSpace(r):
			// Whitespace separators would be consumed by trimming.
			return fmt.Errorf("%w: %q is whitespace", errs.ErrInvalidSeparator, r)
		}
	}

	return nil
}

// newCodec builds the compression codec for the configured type.
func (c *Config) newCodec() (compress.Codec, error) {
	return compress.CreateCodec(c.compression)
}

// Option is a functional option for configuring an Encoder or a Decoder.
type Option = options.Option[*Config]

// WithSeparator sets the character dividing a line's key from its value.
// Default is '='.
func WithSeparator(sep rune) Option {
	return options.NoError(func(c *Config) {
		c.separator = sep
	})
}

// WithEscape sets the character that makes the following character literal,
// allowing separator and escape characters inside keys and values.
// Default is '\\'.
func WithEscape(escape rune) Option {
	return options.NoError(func(c *Config) {
		c.escape = escape
	})
}

// WithCompression selects whole-stream compression for the encoded record.
// Available types: format.CompressionNone, format.CompressionZstd,
// format.CompressionS2, format.CompressionLZ4. Default is CompressionNone,
// which keeps the wire format human-readable text.
func WithCompression(compression format.CompressionType) Option {
	return options.NoError(func(c *Config) {
		c.compression = compression
	})
}

// WithDuplicateKeyCheck makes the decoder fail with errs.ErrDuplicateKey
// when a key appears on more than one line. The default is last-write-wins.
// The encoder ignores this option.
func WithDuplicateKeyCheck(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.strictKeys = enabled
	})
}

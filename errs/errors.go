// Package errs defines the sentinel errors returned by the linekv codec.
//
// Callers should match errors with errors.Is; most errors returned by the
// codec wrap one of these sentinels with additional context.
package errs

import "errors"

var (
	// ErrNoKey indicates a line where the separator was found but the key
	// before it was empty after trimming.
	ErrNoKey = errors.New("no key before separator")

	// ErrNoValue indicates a line without an unescaped separator, or a field
	// whose value was required but no input remained.
	ErrNoValue = errors.New("no value")

	// ErrInvalidValue indicates a value that is present but cannot be parsed
	// into the required scalar type.
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnsupportedNesting indicates an attempt to encode or decode a
	// structured value (struct, map, slice of structs) inside a field value.
	// The line format is flat by design.
	ErrUnsupportedNesting = errors.New("nested structures unsupported")

	// ErrUnsupportedType indicates a Go type the codec cannot represent,
	// such as channels, functions, or complex numbers.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidUTF8 indicates input or output text that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 text")

	// ErrDuplicateKey indicates a repeated key during strict decoding.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidSeparator indicates a separator or escape configuration that
	// would make the grammar ambiguous.
	ErrInvalidSeparator = errors.New("invalid separator or escape character")

	// ErrInvalidCompression indicates an unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
)

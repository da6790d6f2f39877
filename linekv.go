// Package linekv implements a bidirectional codec between flat Go records
// (structs or string-keyed maps, optionally with list-valued fields) and a
// line-oriented text format where each line is `key=value`.
//
// A configurable escape character (default '\\') embeds literal separator
// or escape characters inside keys and values; list fields join their
// elements with commas. The format is deliberately flat: nested structs,
// maps, multi-line values, and binary payloads are rejected rather than
// approximated.
//
// # Basic Usage
//
// Encoding and decoding a struct:
//
//	type Server struct {
//	    Host  string `linekv:"host"`
//	    Port  uint16 `linekv:"port"`
//	    Tags  []string
//	}
//
//	data, _ := linekv.Marshal(Server{Host: "db1", Port: 5432, Tags: []string{"a", "b"}})
//	// host=db1
//	// port=5432
//	// Tags=a,b
//
//	var s Server
//	_ = linekv.Unmarshal(data, &s)
//
// Untyped decoding infers a type per value (boolean, unsigned integer,
// signed integer, absent, string — first match wins):
//
//	fields, _ := linekv.UnmarshalAny([]byte("retries=3\nverbose=true\n"))
//	// fields["retries"] == uint64(3), fields["verbose"] == true
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec
// package. For streaming use or fine-grained control (separator, escape,
// compression, strict duplicate-key checking), use codec.NewEncoder and
// codec.NewDecoder directly.
package linekv

import (
	"bytes"
	"io"

	"github.com/arloliu/linekv/codec"
)

// Option configures an Encoder or Decoder; see the codec package for the
// available options.
type Option = codec.Option

// Marshal encodes v into its line-format byte representation.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := MarshalTo(&buf, v, opts...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// MarshalTo encodes v and writes the result to w.
func MarshalTo(w io.Writer, v any, opts ...Option) error {
	enc, err := codec.NewEncoder(w, opts...)
	if err != nil {
		return err
	}

	return enc.Encode(v)
}

// Unmarshal decodes data into v, which must be a non-nil pointer to a
// struct or to a map with string keys.
func Unmarshal(data []byte, v any, opts ...Option) error {
	return UnmarshalFrom(bytes.NewReader(data), v, opts...)
}

// UnmarshalFrom decodes a record read from r into v.
func UnmarshalFrom(r io.Reader, v any, opts ...Option) error {
	dec, err := codec.NewDecoder(r, opts...)
	if err != nil {
		return err
	}

	return dec.Decode(v)
}

// UnmarshalAny decodes data without a target shape, inferring each value's
// type from its text.
func UnmarshalAny(data []byte, opts ...Option) (map[string]any, error) {
	dec, err := codec.NewDecoder(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, err
	}

	return dec.DecodeAny()
}

// Package codec implements the record-level encoder and decoder for the
// linekv line format.
//
// A record is a flat set of named fields, one field per line:
//
//	key1=value1
//	key2=value2,value3,value4
//
// The Encoder walks a Go struct or map and writes one escaped line per
// field. The Decoder reads lines, splits each with the line grammar, and
// fills a Go struct, a map, or an untyped map[string]any with inferred
// scalar types. Nested structures are rejected by design: the wire format
// is flat, and the codec fails fast rather than flattening silently.
//
// Both sides share one configuration surface (separator, escape character,
// compression, strict duplicate-key checking) built from functional
// options.
package codec

package codec

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/arloliu/linekv/compress"
	"github.com/arloliu/linekv/errs"
	"github.com/arloliu/linekv/format"
	"github.com/arloliu/linekv/internal/options"
	"github.com/arloliu/linekv/internal/pool"
	"github.com/arloliu/linekv/line"
)

// Encoder writes records to an output stream in the line format.
//
// The encoder is stateless beyond its configuration and output sink: each
// Encode call builds the complete record in a pooled buffer, runs it
// through the configured compression codec, and writes it to the sink in a
// single call.
//
// Note: The Encoder is NOT thread-safe. Each encoder instance should be
// used by a single goroutine at a time.
type Encoder struct {
	cfg   *Config
	codec compress.Codec
	w     io.Writer
}

// NewEncoder creates a new Encoder writing to w.
//
// Parameters:
//   - w: Output sink for the encoded record
//   - opts: Optional configuration (separator, escape, compression)
//
// Returns:
//   - *Encoder: New encoder instance
//   - error: Configuration error if invalid options provided
func NewEncoder(w io.Writer, opts ...Option) (*Encoder, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	codec, err := cfg.newCodec()
	if err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg, codec: codec, w: w}, nil
}

// Encode writes v to the output stream.
//
// Structs encode one line per exported field, in declared field order, with
// names taken from the `linekv` struct tag when present. Maps with string
// keys encode one line per entry; keys are written in sorted order so the
// output is deterministic. Any other value encodes as its bare escaped text
// with no key, separator, or line terminator.
//
// Field values may be booleans, integers, floats, strings, byte slices
// (treated as text), slices or arrays of those, or pointers to them. A nil
// pointer encodes as an empty value, indistinguishable on the wire from an
// explicitly empty string. Struct- or map-typed values fail with
// errs.ErrUnsupportedNesting: the wire format is flat.
func (e *Encoder) Encode(v any) error {
	buf := pool.GetLineBuffer()
	defer pool.PutLineBuffer(buf)

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fmt.Errorf("%w: cannot encode nil", errs.ErrUnsupportedType)
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return fmt.Errorf("%w: cannot encode nil", errs.ErrUnsupportedType)
	}

	var err error
	switch rv.Kind() {
	case reflect.Struct:
		err = e.encodeStruct(buf, rv)
	case reflect.Map:
		err = e.encodeMap(buf, rv)
	default:
		err = e.encodeBare(buf, rv)
	}
	if err != nil {
		return err
	}

	payload, err := e.codec.Compress(buf.Bytes())
	if err != nil {
		return fmt.Errorf("compress record: %w", err)
	}

	if len(payload) == 0 {
		return nil
	}

	if _, err := e.w.Write(payload); err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	return nil
}

// encodeStruct writes one line per exported field in declared order.
func (e *Encoder) encodeStruct(buf *pool.ByteBuffer, rv reflect.Value) error {
	for _, f := range structFields(rv.Type()) {
		if err := e.writeField(buf, f.name, rv.Field(f.index)); err != nil {
			return fmt.Errorf("field %s: %w", f.name, err)
		}
	}

	return nil
}

// encodeMap writes one line per entry, in sorted key order. Go map
// iteration order is randomized, so sorting is the only way to produce a
// deterministic byte stream.
func (e *Encoder) encodeMap(buf *pool.ByteBuffer, rv reflect.Value) error {
	if rv.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("%w: map key type %s, need string", errs.ErrUnsupportedType, rv.Type().Key())
	}

	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	keyType := rv.Type().Key()
	for _, k := range keys {
		mk := reflect.ValueOf(k).Convert(keyType)
		if err := e.writeField(buf, k, rv.MapIndex(mk)); err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
	}

	return nil
}

// encodeBare writes a standalone scalar or list: escaped text only, no key,
// separator, or terminator.
func (e *Encoder) encodeBare(buf *pool.ByteBuffer, rv reflect.Value) error {
	text, err := e.valueText(rv)
	if err != nil {
		return err
	}
	buf.WriteString(text)

	return nil
}

// writeField emits one complete `key<sep>value\n` line.
func (e *Encoder) writeField(buf *pool.ByteBuffer, name string, fv reflect.Value) error {
	text, err := e.valueText(fv)
	if err != nil {
		return err
	}

	buf.WriteString(line.Escape(name, e.cfg.escape, e.cfg.separator))
	buf.WriteRune(e.cfg.separator)
	buf.WriteString(text)
	_ = buf.WriteByte(byte(format.LineTerminator))

	return nil
}

// valueText renders a field value as line-safe text.
func (e *Encoder) valueText(fv reflect.Value) (string, error) {
	// Nil pointers and interfaces encode as the empty string; "absent" has
	// no distinct wire form.
	for fv.Kind() == reflect.Interface || fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return "", nil
		}
		fv = fv.Elem()
	}

	switch fv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(fv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(fv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(fv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(fv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(fv.Float(), 'g', -1, 64), nil
	case reflect.String:
		return e.stringText(fv.String())
	case reflect.Slice, reflect.Array:
		return e.listText(fv)
	case reflect.Struct, reflect.Map:
		return "", errs.ErrUnsupportedNesting
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrUnsupportedType, fv.Kind())
	}
}

// stringText validates and escapes a text value.
func (e *Encoder) stringText(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", errs.ErrInvalidUTF8
	}

	return line.Escape(s, e.cfg.escape, e.cfg.separator), nil
}

// listText renders a slice or array as comma-joined elements.
//
// Byte slices are treated as text, not as lists of numbers. Commas inside
// string elements are not escapable and will split on decode; this is a
// documented limitation of the format, not detected here.
func (e *Encoder) listText(fv reflect.Value) (string, error) {
	if fv.Kind() == reflect.Slice && fv.Type().Elem().Kind() == reflect.Uint8 {
		return e.stringText(string(fv.Bytes()))
	}

	elems := make([]string, fv.Len())
	for i := 0; i < fv.Len(); i++ {
		ev := fv.Index(i)
		for ev.Kind() == reflect.Interface || ev.Kind() == reflect.Pointer {
			if ev.IsNil() {
				break
			}
			ev = ev.Elem()
		}
		if isListKind(ev) {
			return "", fmt.Errorf("element %d: %w", i, errs.ErrUnsupportedNesting)
		}

		text, err := e.valueText(fv.Index(i))
		if err != nil {
			return "", fmt.Errorf("element %d: %w", i, err)
		}
		elems[i] = text
	}

	return line.JoinList(elems), nil
}

// isListKind reports whether v is a list on the wire: a slice or array that
// is not a byte slice.
func isListKind(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array:
		return true
	case reflect.Slice:
		return v.Type().Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}

package codec

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
	"unicode/utf8"

	"github.com/arloliu/linekv/compress"
	"github.com/arloliu/linekv/errs"
	"github.com/arloliu/linekv/format"
	"github.com/arloliu/linekv/internal/dedup"
	"github.com/arloliu/linekv/internal/options"
	"github.com/arloliu/linekv/line"
)

// decodeState tracks the decoder's line cursor.
//
// The decoder moves awaitingKey → haveKeyValue when a line is read and
// split, back to awaitingKey when the pair has been consumed, and to done
// when a read returns no bytes. Reaching done is the normal way a record
// decode completes.
type decodeState uint8

const (
	stateAwaitingKey decodeState = iota
	stateHaveKeyValue
	stateDone
)

// Decoder reads records from an input stream in the line format.
//
// Each decoder owns its configuration and line cursor exclusively; two
// decoders over two different inputs are fully independent. The decoder
// holds at most one line and one field's list expansion in memory at a
// time (with compression enabled, the whole compressed input is read up
// front since the codecs operate on complete payloads).
//
// Note: The Decoder is NOT thread-safe. Each decoder instance should be
// used by a single goroutine at a time.
type Decoder struct {
	cfg   *Config
	codec compress.Codec
	src   io.Reader
	br    *bufio.Reader

	state    decodeState
	curKey   string
	curValue string

	tracker *dedup.Tracker
}

// NewDecoder creates a new Decoder reading from r.
//
// Parameters:
//   - r: Input source holding one encoded record
//   - opts: Optional configuration (separator, escape, compression,
//     duplicate-key checking)
//
// Returns:
//   - *Decoder: New decoder instance
//   - error: Configuration error if invalid options provided
func NewDecoder(r io.Reader, opts ...Option) (*Decoder, error) {
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

	d := &Decoder{
		cfg:   cfg,
		codec: codec,
		src:   r,
		state: stateAwaitingKey,
	}
	if cfg.strictKeys {
		d.tracker = dedup.NewTracker()
	}

	return d, nil
}

// Decode reads the remaining input and fills v, which must be a non-nil
// pointer to a struct or to a map with string keys.
//
// Struct targets match line keys against exported field names, or the
// `linekv` tag when present. Unknown keys are ignored; repeated keys are
// last-write-wins unless WithDuplicateKeyCheck is enabled. A non-pointer
// field that never receives a value fails with errs.ErrNoValue once end of
// input is reached; pointer fields are optional and stay nil.
//
// Map targets receive every line as an entry. Map or struct value types
// fail with errs.ErrUnsupportedNesting; map[string]any values use the
// scalar inference precedence.
//
// Any error aborts the decode; the partially-filled target must be
// discarded by the caller.
func (d *Decoder) Decode(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: decode target must be a non-nil pointer, got %T", errs.ErrUnsupportedType, v)
	}

	if d.tracker != nil {
		d.tracker.Reset()
	}

	elem := rv.Elem()
	switch elem.Kind() {
	case reflect.Struct:
		return d.decodeStruct(elem)
	case reflect.Map:
		return d.decodeMap(elem)
	default:
		return fmt.Errorf("%w: cannot decode record into %s", errs.ErrUnsupportedType, elem.Kind())
	}
}

// DecodeAny reads the remaining input into a map keyed by line key, with
// each value's type selected by the scalar inference precedence: boolean,
// unsigned integer, signed integer, absent (nil for an empty value), else
// string. Values are never comma-split in this mode.
func (d *Decoder) DecodeAny() (map[string]any, error) {
	if d.tracker != nil {
		d.tracker.Reset()
	}

	out := make(map[string]any)
	for {
		if err := d.next(); err != nil {
			return nil, err
		}
		if d.state == stateDone {
			return out, nil
		}

		out[d.curKey] = line.Infer(d.curValue)
		d.consume()
	}
}

// decodeStruct fills one struct from the remaining lines.
func (d *Decoder) decodeStruct(sv reflect.Value) error {
	fields := structFields(sv.Type())
	byName := make(map[string]int, len(fields))
	for i, f := range fields {
		byName[f.name] = i
	}
	seen := make([]bool, len(fields))

	for {
		if err := d.next(); err != nil {
			return err
		}
		if d.state == stateDone {
			break
		}

		if i, ok := byName[d.curKey]; ok {
			if err := d.convertValue(sv.Field(fields[i].index), d.curValue); err != nil {
				return fmt.Errorf("field %q: %w", d.curKey, err)
			}
			seen[i] = true
		}
		d.consume()
	}

	// End of input: every non-optional field must have received a value.
	for i, f := range fields {
		if seen[i] || f.optional {
			continue
		}

		return fmt.Errorf("%w: missing value for field %q", errs.ErrNoValue, f.name)
	}

	return nil
}

// decodeMap fills one map from the remaining lines.
func (d *Decoder) decodeMap(mv reflect.Value) error {
	mt := mv.Type()
	if mt.Key().Kind() != reflect.String {
		return fmt.Errorf("%w: map key type %s, need string", errs.ErrUnsupportedType, mt.Key())
	}

	if kind := baseKind(mt.Elem()); kind == reflect.Struct || kind == reflect.Map {
		return fmt.Errorf("%w: map value type %s", errs.ErrUnsupportedNesting, mt.Elem())
	}

	if mv.IsNil() {
		mv.Set(reflect.MakeMap(mt))
	}

	for {
		if err := d.next(); err != nil {
			return err
		}
		if d.state == stateDone {
			return nil
		}

		ev := reflect.New(mt.Elem()).Elem()
		if err := d.convertValue(ev, d.curValue); err != nil {
			return fmt.Errorf("key %q: %w", d.curKey, err)
		}
		mv.SetMapIndex(reflect.ValueOf(d.curKey).Convert(mt.Key()), ev)

		d.consume()
	}
}

// next advances the cursor: it reads one line, splits it, and moves to
// haveKeyValue, or moves to done when the input is exhausted.
func (d *Decoder) next() error {
	if d.state == stateDone {
		return nil
	}

	if err := d.prepare(); err != nil {
		return err
	}

	raw, err := d.br.ReadString(byte(format.LineTerminator))
	if raw == "" {
		if err == nil || errors.Is(err, io.EOF) {
			d.state = stateDone
			return nil
		}

		return fmt.Errorf("read line: %w", err)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read line: %w", err)
	}

	if !utf8.ValidString(raw) {
		return fmt.Errorf("%w: line is not valid UTF-8 text", errs.ErrInvalidUTF8)
	}

	key, value, err := line.Split(raw, d.cfg.escape, d.cfg.separator)
	if err != nil {
		return err
	}

	if d.tracker != nil && d.tracker.Track(key) {
		return fmt.Errorf("%w: %q", errs.ErrDuplicateKey, key)
	}

	d.curKey = key
	d.curValue = value
	d.state = stateHaveKeyValue

	return nil
}

// consume clears the buffered pair and returns the cursor to awaitingKey.
func (d *Decoder) consume() {
	d.curKey = ""
	d.curValue = ""
	d.state = stateAwaitingKey
}

// prepare sets up the buffered line reader on first use. Without
// compression the source is streamed; with compression the codecs operate
// on complete payloads, so the whole input is read and decompressed up
// front.
func (d *Decoder) prepare() error {
	if d.br != nil {
		return nil
	}

	if _, isNoop := d.codec.(compress.NoOpCompressor); isNoop {
		d.br = bufio.NewReader(d.src)
		return nil
	}

	payload, err := io.ReadAll(d.src)
	if err != nil {
		return fmt.Errorf("read compressed record: %w", err)
	}

	raw, err := d.codec.Decompress(payload)
	if err != nil {
		return fmt.Errorf("decompress record: %w", err)
	}

	d.br = bufio.NewReader(bytes.NewReader(raw))

	return nil
}

package codec

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/arloliu/linekv/errs"
	"github.com/arloliu/linekv/line"
)

// fieldInfo describes one encodable/decodable struct field.
type fieldInfo struct {
	index    int
	name     string
	optional bool // pointer fields are optional: absent on the wire ⇔ nil
}

// structFields resolves the wire name of every exported field of rt, in
// declared order. Fields tagged `linekv:"-"` are excluded. Encoder and
// decoder share this resolution so the two directions always agree.
func structFields(rt reflect.Type) []fieldInfo {
	fields := make([]fieldInfo, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}

		name := f.Name
		if tag, ok := f.Tag.Lookup(TagName); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}

		fields = append(fields, fieldInfo{
			index:    i,
			name:     name,
			optional: f.Type.Kind() == reflect.Pointer,
		})
	}

	return fields
}

// baseKind unwraps pointer types and returns the underlying kind.
func baseKind(t reflect.Type) reflect.Kind {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Kind()
}

// convertValue parses raw into the settable value rv.
//
// The raw text arrives unescaped from the line grammar. Parse failures are
// reported as errs.ErrInvalidValue; struct- or map-typed targets fail with
// errs.ErrUnsupportedNesting.
func (d *Decoder) convertValue(rv reflect.Value, raw string) error {
	switch rv.Kind() {
	case reflect.Pointer:
		// An empty value means absent: the pointer stays (or becomes) nil.
		if raw == "" {
			rv.SetZero()
			return nil
		}
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}

		return d.convertValue(rv.Elem(), raw)

	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return fmt.Errorf("%w: non-empty interface %s", errs.ErrUnsupportedType, rv.Type())
		}
		if v := line.Infer(raw); v != nil {
			rv.Set(reflect.ValueOf(v))
		} else {
			rv.SetZero()
		}

		return nil

	case reflect.Bool:
		// Exact literals only; the inference precedence depends on every
		// other string falling through.
		switch raw {
		case "true":
			rv.SetBool(true)
		case "false":
			rv.SetBool(false)
		default:
			return fmt.Errorf("%w: %q is not a boolean literal", errs.ErrInvalidValue, raw)
		}

		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(raw, 10, rv.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: %q is not a valid %s", errs.ErrInvalidValue, raw, rv.Type().Kind())
		}
		rv.SetInt(i)

		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(raw, 10, rv.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: %q is not a valid %s", errs.ErrInvalidValue, raw, rv.Type().Kind())
		}
		rv.SetUint(u)

		return nil

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, rv.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: %q is not a valid %s", errs.ErrInvalidValue, raw, rv.Type().Kind())
		}
		rv.SetFloat(f)

		return nil

	case reflect.String:
		rv.SetString(raw)
		return nil

	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			// Byte slices are text on the wire, not lists of numbers.
			rv.SetBytes([]byte(raw))
			return nil
		}

		return d.convertList(rv, raw)

	case reflect.Array:
		return d.convertArray(rv, raw)

	case reflect.Struct, reflect.Map:
		return fmt.Errorf("%w: cannot decode a field value into %s", errs.ErrUnsupportedNesting, rv.Type())

	default:
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedType, rv.Type().Kind())
	}
}

// convertList eagerly comma-splits raw and converts each element into a
// freshly allocated slice. An empty value yields an empty slice.
func (d *Decoder) convertList(rv reflect.Value, raw string) error {
	if err := checkListElem(rv.Type().Elem()); err != nil {
		return err
	}

	elems := line.SplitList(raw)
	out := reflect.MakeSlice(rv.Type(), len(elems), len(elems))
	for i, s := range elems {
		if err := d.convertValue(out.Index(i), s); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	rv.Set(out)

	return nil
}

// convertArray is convertList for fixed-length targets: the element count
// on the wire must match the array length exactly.
func (d *Decoder) convertArray(rv reflect.Value, raw string) error {
	if err := checkListElem(rv.Type().Elem()); err != nil {
		return err
	}

	elems := line.SplitList(raw)
	if len(elems) != rv.Len() {
		return fmt.Errorf("%w: %d elements for [%d]%s", errs.ErrInvalidValue, len(elems), rv.Len(), rv.Type().Elem())
	}

	for i, s := range elems {
		if err := d.convertValue(rv.Index(i), s); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	return nil
}

// checkListElem rejects element types that would need a second level of
// structure inside a single value.
func checkListElem(et reflect.Type) error {
	switch baseKind(et) {
	case reflect.Struct, reflect.Map:
		return fmt.Errorf("%w: list of %s", errs.ErrUnsupportedNesting, et)
	case reflect.Slice, reflect.Array:
		if et.Kind() == reflect.Slice && et.Elem().Kind() == reflect.Uint8 {
			return nil // byte slices are scalar text
		}

		return fmt.Errorf("%w: list of %s", errs.ErrUnsupportedNesting, et)
	default:
		return nil
	}
}

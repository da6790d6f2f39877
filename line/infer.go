package line

import "strconv"

// Infer selects a value domain for a raw string when the target type is not
// statically known.
//
// The precedence is fixed and must stay stable for compatibility with
// previously serialized data: boolean literal, unsigned 64-bit integer,
// signed 64-bit integer, empty string as absence (nil), plain string.
// Unsigned wins over signed so that "0" and "42" decode as uint64 by
// default; negative numbers fall through to int64.
func Infer(value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	}

	if u, err := strconv.ParseUint(value, 10, 64); err == nil {
		return u
	}

	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return i
	}

	if value == "" {
		return nil
	}

	return value
}

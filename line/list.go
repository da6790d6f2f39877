package line

import (
	"strings"

	"github.com/arloliu/linekv/format"
)

// SplitList splits a value into its comma-separated list elements.
//
// The split is eager and purely textual: commas are not escapable, so list
// elements cannot contain literal commas. An empty value yields a nil
// slice, so an empty wire value round-trips to an empty list rather than a
// single empty element.
func SplitList(value string) []string {
	if value == "" {
		return nil
	}

	return strings.Split(value, string(format.ListSeparator))
}

// JoinList joins pre-escaped list elements with the list separator.
func JoinList(elems []string) string {
	return strings.Join(elems, string(format.ListSeparator))
}

// Package line implements the grammar of a single key/value line.
//
// A line holds exactly one `key<separator>value` pair. An escape character
// makes the following character literal, so the separator and the escape
// character itself can appear inside keys and values. The list separator
// (a comma) is fixed and never escaped: list elements cannot contain
// literal commas.
//
// The package is the low-level leaf of the codec: it knows nothing about
// records, Go types, or I/O. The codec package drives it once per line.
package line

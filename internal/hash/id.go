package hash

import "github.com/cespare/xxhash/v2"

// KeyID computes the xxHash64 of the given field key.
func KeyID(key string) uint64 {
	return xxhash.Sum64String(key)
}

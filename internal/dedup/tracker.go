// Package dedup tracks field keys seen during one decode pass and reports
// repeated keys.
package dedup

import (
	"github.com/arloliu/linekv/internal/hash"
)

// Tracker records every key observed while decoding a single record.
//
// Keys are tracked by their xxHash64 ID for cheap lookups; the original key
// string is kept per hash so that a hash collision between two different
// keys is not misreported as a duplicate.
type Tracker struct {
	seen map[uint64][]string
}

// NewTracker creates an empty key tracker.
func NewTracker() *Tracker {
	return &Tracker{
		seen: make(map[uint64][]string),
	}
}

// Track records key and reports whether it was already seen.
//
// The first call for a given key returns false; every subsequent call with
// the same key returns true. Distinct keys that happen to share a hash are
// disambiguated by comparing the stored key strings.
func (t *Tracker) Track(key string) bool {
	id := hash.KeyID(key)

	names, exists := t.seen[id]
	if exists {
		for _, name := range names {
			if name == key {
				return true
			}
		}
	}

	t.seen[id] = append(names, key)

	return false
}

// Count returns the number of distinct keys tracked.
func (t *Tracker) Count() int {
	n := 0
	for _, names := range t.seen {
		n += len(names)
	}

	return n
}

// Reset clears all tracked keys so the tracker can be reused for the next
// record.
func (t *Tracker) Reset() {
	// Clear the map but preserve capacity to avoid allocations
	for k := range t.seen {
		delete(t.seen, k)
	}
}

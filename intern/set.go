package intern

import "sync"

// StrongSet deduplicates strings by value equality and keeps a strong
// reference to every string it stores (spec §3 "Strong set").
//
// Grounded on _examples/original_source/src/str.hh's Str::Set, backed
// here by a hash-bucketed map since Go's map type can't be parameterized
// by a custom hash/equal pair the way std::unordered_set can.
type StrongSet struct {
	mu      sync.Mutex
	buckets map[uint32][]*String
}

// NewStrongSet returns an empty StrongSet.
func NewStrongSet() *StrongSet {
	return &StrongSet{buckets: make(map[uint32][]*String)}
}

// Get returns a String representing s, retained once for the caller.
// If an equal string is already present, a new reference to it is
// returned instead of allocating.
func (set *StrongSet) Get(s string) *String {
	probe := NewView(s)

	set.mu.Lock()
	defer set.mu.Unlock()

	bucket := set.buckets[probe.hash]
	for _, existing := range bucket {
		if existing.Equals(probe) {
			existing.Retain()
			return existing
		}
	}

	owned := newOwned(s)
	set.buckets[probe.hash] = append(bucket, owned)
	owned.Retain() // the set's own strong reference, separate from the caller's
	return owned
}

// Find returns a String if the set already contains s, else nil. The
// returned reference, if any, is retained once for the caller.
func (set *StrongSet) Find(s string) *String {
	probe := NewView(s)

	set.mu.Lock()
	defer set.mu.Unlock()

	for _, existing := range set.buckets[probe.hash] {
		if existing.Equals(probe) {
			existing.Retain()
			return existing
		}
	}
	return nil
}

package intern

import (
	"sync"

	"github.com/rsms/sat/internal/fnv1a"
)

// weakSlot is one bucket entry: a weak observer of whatever string last
// occupied this slot. Once its target is released, Self() returns nil
// and the slot becomes a hole available for reuse.
type weakSlot struct {
	ref *WeakRef
}

// WeakSet deduplicates strings the same way StrongSet does, but holds
// only weak references: a string stays alive exactly as long as
// something else retains it. When the last strong reference is
// released, the slot that held it is not removed — it becomes a hole
// that the next colliding insertion reuses (spec §4.4).
//
// Grounded on _examples/original_source/src/str.hh's Str::WeakSet,
// whose underlying std::unordered_set<WeakRef,...> has the same
// position-collision reuse quirk spec §4.4 describes: a hole is
// reused by the next insertion that hashes into the same bucket, not
// necessarily one with byte-equal content. The bucket key is the raw
// FNV-1a hash folded through fnv1a.Twang32: FNV-1a clusters short,
// similar strings (e.g. "a", "b", "c") into adjacent hash values, and
// twang's avalanche spreads those apart before they land in the map,
// the same fold hash.hh's twang() exists for in the reference
// implementation.
type WeakSet struct {
	mu      sync.Mutex
	buckets map[uint32][]*weakSlot
}

func bucketKey(hash uint32) uint32 { return fnv1a.Twang32(hash) }

// NewWeakSet returns an empty WeakSet, optionally preseeded with
// constant strings (spec §4.4 / SPEC_FULL.md's CONST_SYMBOLS
// preregistration) so that looking them up later never allocates.
func NewWeakSet(consts ...*String) *WeakSet {
	ws := &WeakSet{buckets: make(map[uint32][]*weakSlot)}
	for _, c := range consts {
		key := bucketKey(c.hash)
		ws.buckets[key] = append(ws.buckets[key], &weakSlot{ref: Bind(c)})
	}
	return ws
}

// Get returns a String representing s, retained once for the caller:
//  1. a live equal entry already occupies the matching bucket: return
//     a new reference to it;
//  2. a hole occupies the matching bucket: reuse it for a freshly
//     allocated owned string;
//  3. neither: insert a freshly allocated owned string into a new slot.
func (set *WeakSet) Get(s string) *String {
	probe := NewView(s)

	set.mu.Lock()
	defer set.mu.Unlock()

	key := bucketKey(probe.hash)
	bucket := set.buckets[key]
	for _, slot := range bucket {
		if live := slot.ref.Self(); live != nil && live.Equals(probe) {
			live.Retain()
			return live
		}
	}
	for _, slot := range bucket {
		if slot.ref.Self() == nil {
			owned := newOwned(s)
			slot.ref = Bind(owned)
			return owned
		}
	}

	owned := newOwned(s)
	set.buckets[key] = append(bucket, &weakSlot{ref: Bind(owned)})
	return owned
}

// Find returns a String if a live equal entry is present, retained
// once for the caller, else nil.
func (set *WeakSet) Find(s string) *String {
	probe := NewView(s)

	set.mu.Lock()
	defer set.mu.Unlock()

	for _, slot := range set.buckets[bucketKey(probe.hash)] {
		if live := slot.ref.Self(); live != nil && live.Equals(probe) {
			live.Retain()
			return live
		}
	}
	return nil
}

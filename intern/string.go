// Package intern implements the small-string substrate used to
// deduplicate symbol text during parsing: an immutable byte string
// carrying a precomputed hash, manual reference counting, and the two
// container variants (a strong set and a weak set) that intern it.
//
// The reference-counting and weak-observer semantics are specified
// precisely enough by the language this module implements (see
// SPEC_FULL.md, [MODULE InternedString] / [MODULE WeakRef]) that this
// package manages its own lifetime with sync/atomic rather than leaning
// on the Go garbage collector: a weak observer must see its target go
// nil in O(1) exactly when the last strong reference is released, which
// is an externally observable property, not an implementation detail.
//
// Grounded on _examples/original_source/src/str.hh and str.cc.
package intern

import (
	"sync/atomic"

	"github.com/rsms/sat/internal/fnv1a"
)

// kind distinguishes the three provenances described by spec §3: a
// string may be heap-allocated and reference counted (kindOwned), a
// statically registered constant exempt from refcounting (kindConst),
// or a non-owning view over caller-supplied bytes used only as a
// lookup probe (kindView).
type kind uint8

const (
	kindOwned kind = iota
	kindConst
	kindView
)

// refCountConstant is the original's constant sentinel refcount. No
// String stores it: Retain and Release skip constant and view strings
// by checking kind instead.
const refCountConstant = -1

// String is the interned, immutable byte string. Its zero value is the
// "null" string (spec's Str{} with self==0): Len returns 0, CStr
// returns "", and Equals against anything but another null String is
// false.
type String struct {
	bytes   string
	hash    uint32
	kind    kind
	refs    atomic.Int32 // unused when kind == kindConst or kindView
	weak    atomic.Pointer[WeakRef]
}

// NewView wraps bytes for use only as a transient lookup probe (spec
// §3 "View"). A view is never retained, released, or bound to a weak
// reference; it must not outlive the byte slice backing it.
func NewView(bytes string) *String {
	return &String{bytes: bytes, hash: fnv1a.Sum32String(bytes), kind: kindView}
}

// NewConst registers a statically-known string exempt from reference
// counting (spec §3 "Constant"). Used for the parser's preregistered
// namespace symbols ("user", "user:").
func NewConst(bytes string) *String {
	return &String{bytes: bytes, hash: fnv1a.Sum32String(bytes), kind: kindConst}
}

// newOwned allocates a fresh, heap-resident, reference-counted string
// (spec §3 "Owned"), starting at one reference.
func newOwned(bytes string) *String {
	s := &String{bytes: bytes, hash: fnv1a.Sum32String(bytes), kind: kindOwned}
	s.refs.Store(1)
	return s
}

// NewOwned allocates a fresh, heap-resident, reference-counted string
// without deduplicating it against any set. Used for content that is
// never looked up by value — comment text — where interning would only
// spend a bucket for no benefit.
func NewOwned(bytes string) *String {
	return newOwned(bytes)
}

// Len returns the string's byte length.
func (s *String) Len() int {
	if s == nil {
		return 0
	}
	return len(s.bytes)
}

// Hash returns the precomputed FNV-1a32 hash of the string's bytes.
func (s *String) Hash() uint32 {
	if s == nil {
		return 0
	}
	return s.hash
}

// CStr returns the string's bytes. Named for continuity with the
// original's c_str() accessor; Go strings carry their own length so
// there is no NUL-terminated pointer to hand back.
func (s *String) CStr() string {
	if s == nil {
		return ""
	}
	return s.bytes
}

// Equals reports whether s and other hold byte-equal content. The hash
// comparison short-circuits almost every negative, as in str.hh.
func (s *String) Equals(other *String) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	return s.hash == other.hash && s.bytes == other.bytes
}

// Retain increments the reference count. A no-op for constant and view
// strings.
func (s *String) Retain() {
	if s == nil || s.kind != kindOwned {
		return
	}
	s.refs.Add(1)
}

// Release decrements the reference count. When it reaches zero, the
// reclamation hook runs: any bound weak observer is invalidated. A
// no-op for constant and view strings.
func (s *String) Release() {
	if s == nil || s.kind != kindOwned {
		return
	}
	if s.refs.Add(-1) == 0 {
		if w := s.weak.Load(); w != nil {
			w.invalidate()
		}
	}
}

// bindWeak installs w as the string's sole weak observer, stealing the
// slot from whatever observer was previously bound (spec §3 "Weak
// reference": "the binder steals ownership from any previous
// observer"). Constant and view strings are never bound.
func (s *String) bindWeak(w *WeakRef) {
	if s.kind != kindOwned {
		return
	}
	if prev := s.weak.Swap(w); prev != nil && prev != w {
		prev.self.Store(nil)
	}
}

package intern

import "sync/atomic"

// WeakRef observes a single String without retaining it. Self returns
// nil once the target has been released down to zero references (spec
// §3 "Weak reference", §8 property 5: "A weak observer's self is null
// iff its bound string has been released").
//
// At most one WeakRef may be bound to a given owned String at a time;
// binding a second one steals the slot from the first, which then
// observes nil from that point on.
type WeakRef struct {
	self atomic.Pointer[String]
}

// Bind creates a WeakRef observing s. Constant and view strings are
// never actually bound (they're never deallocated), so the returned
// WeakRef simply always observes s.
func Bind(s *String) *WeakRef {
	w := &WeakRef{}
	if s == nil {
		return w
	}
	w.self.Store(s)
	s.bindWeak(w)
	return w
}

// Self returns the observed string, or nil if it has been released.
func (w *WeakRef) Self() *String {
	if w == nil {
		return nil
	}
	return w.self.Load()
}

// invalidate is the reclamation hook called from String.Release when
// the last strong reference is dropped.
func (w *WeakRef) invalidate() {
	w.self.Store(nil)
}

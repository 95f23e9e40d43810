package intern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringEqualsUsesHashThenBytes(t *testing.T) {
	a := NewView("hello")
	b := NewView("hello")
	c := NewView("world")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))

	var nilStr *String
	assert.True(t, nilStr.Equals(nil))
}

func TestConstStringNeverReclaimed(t *testing.T) {
	c := NewConst("user")
	w := Bind(c)
	c.Retain()
	c.Release()
	c.Release()
	c.Release()
	// Const strings ignore refcounting entirely; the weak ref never
	// invalidates.
	require.NotNil(t, w.Self())
	assert.Equal(t, "user", w.Self().CStr())
}

func TestStrongSetDeduplicates(t *testing.T) {
	set := NewStrongSet()
	a := set.Get("foo")
	b := set.Get("foo")
	assert.True(t, a == b, "strong set must return the same backing object for equal input")
	assert.Equal(t, "foo", a.CStr())

	missing := set.Find("bar")
	assert.Nil(t, missing)

	c := set.Get("bar")
	found := set.Find("bar")
	assert.True(t, c == found)
}

func TestWeakSetReturnsSameObjectWhileLive(t *testing.T) {
	ws := NewWeakSet()
	a := ws.Get("sym")
	b := ws.Get("sym")
	assert.True(t, a == b, "property 4: a subsequent Get of byte-equal input must return the same object")
	a.Release()
	b.Release()
}

func TestWeakSetSlotIsReusedAfterRelease(t *testing.T) {
	ws := NewWeakSet()
	a := ws.Get("transient")
	probe := NewView("transient")
	bucket := ws.buckets[bucketKey(probe.hash)]
	require.Len(t, bucket, 1)
	w := bucket[0].ref

	a.Release() // drops to zero: the weak ref must self-invalidate in O(1)
	assert.Nil(t, w.Self(), "property 5: weak observer's self is nil once its string is released")

	// A later Get colliding on the same bucket reuses the hole rather
	// than growing the bucket.
	b := ws.Get("transient")
	require.Len(t, ws.buckets[bucketKey(probe.hash)], 1)
	assert.Equal(t, "transient", b.CStr())
	b.Release()
}

func TestWeakRefStealsSlotFromPreviousObserver(t *testing.T) {
	s := newOwned("x")
	w1 := Bind(s)
	require.Equal(t, s, w1.Self())

	w2 := Bind(s)
	assert.Nil(t, w1.Self(), "binding a second observer steals the slot from the first")
	assert.Equal(t, s, w2.Self())
}

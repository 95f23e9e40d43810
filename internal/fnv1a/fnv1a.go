// Package fnv1a implements the FNV-1a hash family used to fingerprint
// interned string payloads, plus the "twang" integer avalanche mixers
// used to fold a precomputed hash into a bucket index.
//
// Constants and algorithms are ported byte-for-byte from
// _examples/original_source/src/hash.hh so that hashes computed here
// match the reference implementation exactly.
package fnv1a

const (
	offset32 uint32 = 0x811c9dc5
	prime32  uint32 = 0x01000193

	offset64 uint64 = 0xcbf29ce484222325
	prime64  uint64 = 0x100000001b3
)

// Sum32 computes the 32-bit FNV-1a hash of b.
func Sum32(b []byte) uint32 {
	h := offset32
	for _, c := range b {
		h = (h ^ uint32(c)) * prime32
	}
	return h
}

// Sum32String computes the 32-bit FNV-1a hash of s without allocating.
func Sum32String(s string) uint32 {
	h := offset32
	for i := 0; i < len(s); i++ {
		h = (h ^ uint32(s[i])) * prime32
	}
	return h
}

// Sum64 computes the 64-bit FNV-1a hash of b.
func Sum64(b []byte) uint64 {
	h := offset64
	for _, c := range b {
		h = (h ^ uint64(c)) * prime64
	}
	return h
}

// Sum64String computes the 64-bit FNV-1a hash of s without allocating.
func Sum64String(s string) uint64 {
	h := offset64
	for i := 0; i < len(s); i++ {
		h = (h ^ uint64(s[i])) * prime64
	}
	return h
}

// Twang32 is a full-width avalanche mixer for 32-bit integers (Bob
// Jenkins' "twang" mix, as used by the reference implementation to
// fold pointer/bucket identity rather than byte-string content).
func Twang32(v uint32) uint32 {
	v = (v + 0x7ed55d16) + (v << 12)
	v = (v ^ 0xc761c23c) ^ (v >> 19)
	v = (v + 0x165667b1) + (v << 5)
	v = (v + 0xd3a2646c) ^ (v << 9)
	v = (v + 0xfd7046c5) + (v << 3)
	v = (v ^ 0xb55a4f09) ^ (v >> 16)
	return v
}

// Twang64 is the 64-bit counterpart of Twang32.
func Twang64(v uint64) uint64 {
	v = (^v) + (v << 21)
	v = v ^ (v >> 24)
	v = v + (v << 3) + (v << 8)
	v = v ^ (v >> 14)
	v = v + (v << 2) + (v << 4)
	v = v ^ (v >> 28)
	v = v + (v << 31)
	return v
}

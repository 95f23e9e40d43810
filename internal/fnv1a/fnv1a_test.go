package fnv1a

import "testing"

func TestSum32KnownVectors(t *testing.T) {
	cases := map[string]uint32{
		"":      0x811c9dc5,
		"a":     0xe40c292c,
		"foo":   0xa9f37ed7,
		"foobar": 0xbf9cf968,
	}
	for s, want := range cases {
		if got := Sum32String(s); got != want {
			t.Errorf("Sum32String(%q) = 0x%x, want 0x%x", s, got, want)
		}
		if got := Sum32([]byte(s)); got != want {
			t.Errorf("Sum32(%q) = 0x%x, want 0x%x", s, got, want)
		}
	}
}

func TestSum64KnownVectors(t *testing.T) {
	cases := map[string]uint64{
		"":    0xcbf29ce484222325,
		"a":   0xaf63dc4c8601ec8c,
		"foo": 0xdcb27518fed9d577,
	}
	for s, want := range cases {
		if got := Sum64String(s); got != want {
			t.Errorf("Sum64String(%q) = 0x%x, want 0x%x", s, got, want)
		}
		if got := Sum64([]byte(s)); got != want {
			t.Errorf("Sum64(%q) = 0x%x, want 0x%x", s, got, want)
		}
	}
}

func TestTwangDeterministicAndAvalanches(t *testing.T) {
	a := Twang32(1)
	b := Twang32(2)
	if a == b {
		t.Fatalf("Twang32 collided trivially for adjacent inputs")
	}
	if Twang32(42) != Twang32(42) {
		t.Fatalf("Twang32 is not deterministic")
	}

	a64 := Twang64(1)
	b64 := Twang64(2)
	if a64 == b64 {
		t.Fatalf("Twang64 collided trivially for adjacent inputs")
	}
	if Twang64(42) != Twang64(42) {
		t.Fatalf("Twang64 is not deterministic")
	}
}

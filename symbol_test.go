package smaz

import "testing"

func TestWindowHashes(t *testing.T) {
	h1, h2, h3 := windowHashes([]byte("the"))
	if h1 != 205 || h2 != 68 || h3 != 169 {
		t.Fatalf("windowHashes(the) = %d, %d, %d; want 205, 68, 169", h1, h2, h3)
	}

	// Short input leaves the longer windows at their seed values.
	h1, h2, h3 = windowHashes([]byte("t"))
	if h1 != 205 || h2 != 205 || h3 != 0 {
		t.Fatalf("windowHashes(t) = %d, %d, %d; want 205, 205, 0", h1, h2, h3)
	}

	// Bytes past the third do not change the hashes.
	a1, a2, a3 := windowHashes([]byte("http://"))
	b1, b2, b3 := windowHashes([]byte("htt"))
	if a1 != b1 || a2 != b2 || a3 != b3 {
		t.Fatalf("hashes depend on bytes past the third")
	}
}

func TestBucketOf(t *testing.T) {
	for lit, want := range map[string]int{
		"t":       205,
		"th":      68,
		"the":     169,
		"they":    169,
		"http://": 237,
	} {
		if got := bucketOf(lit); got != want {
			t.Errorf("bucketOf(%q) = %d, want %d", lit, got, want)
		}
	}
}

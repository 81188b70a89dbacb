package hname

import "testing"

func TestFromDigest_SkipsZeroWindows(t *testing.T) {
	var h [32]byte
	if got := fromDigest(h); got != Fallback {
		t.Fatalf("all-zero digest: got %s, want fallback %s", got, Fallback)
	}

	h[8] = 0x2a
	if got := fromDigest(h); got != 0x2a {
		t.Fatalf("expected third window, got %s", got)
	}

	h[0] = 0x01
	h[3] = 0x80
	if got := fromDigest(h); got != 0x80000001 {
		t.Fatalf("expected first window little-endian, got %s", got)
	}
}

package engine

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	if !strings.HasPrefix(Version, "3.") {
		t.Fatalf("Version = %q, want a 3.x release", Version)
	}
	if VersionNumber < 3000000 {
		t.Fatalf("VersionNumber = %d, want >= 3000000", VersionNumber)
	}
	if SourceID == "" {
		t.Fatal("SourceID is empty")
	}
}

func TestInitializeIdempotent(t *testing.T) {
	if err := Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if err := Initialize(); err != nil {
		t.Fatalf("second Initialize failed: %v", err)
	}
}

func TestMemoryCounters(t *testing.T) {
	if err := Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	used := MemoryUsed()
	if used < 0 {
		t.Fatalf("MemoryUsed = %d, want >= 0", used)
	}
	hw := MemoryHighwater(false)
	if hw < used {
		t.Fatalf("MemoryHighwater = %d, want >= MemoryUsed (%d)", hw, used)
	}
	// Resetting pins the mark back down to current usage.
	MemoryHighwater(true)
	if got := MemoryHighwater(false); got > hw {
		t.Fatalf("MemoryHighwater after reset = %d, want <= %d", got, hw)
	}
}

func TestRandomness(t *testing.T) {
	a := Randomness(32)
	if len(a) != 32 {
		t.Fatalf("Randomness(32) returned %d bytes", len(a))
	}
	b := Randomness(32)
	if bytes.Equal(a, b) {
		t.Fatal("two 32-byte draws are identical")
	}
	if got := Randomness(0); got != nil {
		t.Fatalf("Randomness(0) = %v, want nil", got)
	}
	if got := Randomness(-1); got != nil {
		t.Fatalf("Randomness(-1) = %v, want nil", got)
	}
}

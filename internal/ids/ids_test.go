package ids

import "testing"

func TestNewTempID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewTempID()
		if !IsTemp(id) {
			t.Fatalf("NewTempID() = %q, missing temp prefix", id)
		}
		if seen[id] {
			t.Fatalf("NewTempID() produced duplicate %q", id)
		}
		seen[id] = true
	}
}

func TestIsTemp(t *testing.T) {
	if IsTemp("a1b2c3") {
		t.Error("server-shaped id reported as temporary")
	}
	if !IsTemp(TempPrefix + "xyz") {
		t.Error("prefixed id not reported as temporary")
	}
}

package ast

import (
	"testing"
)

func TestAttrs_InsertionOrder(t *testing.T) {
	a := NewAttrs(A("origin", "*"), A("launch-external", "yes"))
	a.Set("subdomains", "true")

	keys := a.Keys()
	want := []string{"origin", "launch-external", "subdomains"}
	if len(keys) != len(want) {
		t.Fatalf("Expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Key %d: expected %q, got %q", i, want[i], keys[i])
		}
	}
}

func TestAttrs_SetUpdatesInPlace(t *testing.T) {
	a := NewAttrs(A("a", "1"), A("b", "2"), A("c", "3"))
	a.Set("b", "20")

	if got := a.All()[1]; got != A("b", "20") {
		t.Errorf("Updated key should keep its position, got %+v", got)
	}
	if a.Len() != 3 {
		t.Errorf("Expected 3 attributes, got %d", a.Len())
	}
}

func TestAttrs_DeleteAndClear(t *testing.T) {
	a := NewAttrs(A("email", "x@y"), A("href", "http://x"))

	if !a.Delete("href") {
		t.Error("Delete should report a present key")
	}
	if a.Delete("href") {
		t.Error("Delete should report a missing key")
	}
	if a.Has("href") {
		t.Error("href should be gone")
	}

	a.Clear()
	if a.Len() != 0 {
		t.Errorf("Clear should empty the set, got %d", a.Len())
	}
}

func TestAttrs_NilSafeReads(t *testing.T) {
	var a *Attrs
	if a.Len() != 0 {
		t.Error("nil Attrs should have zero length")
	}
	if _, ok := a.Get("x"); ok {
		t.Error("nil Attrs should not report keys")
	}
	if a.Keys() != nil {
		t.Error("nil Attrs should have no keys")
	}
}

func TestAttrs_Equal(t *testing.T) {
	a := NewAttrs(A("x", "1"), A("y", "2"))
	b := NewAttrs(A("x", "1"), A("y", "2"))
	c := NewAttrs(A("y", "2"), A("x", "1"))

	if !a.Equal(b) {
		t.Error("Same pairs in same order should be equal")
	}
	if a.Equal(c) {
		t.Error("Order matters for equality")
	}
}

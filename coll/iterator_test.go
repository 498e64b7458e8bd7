package coll

import (
	"errors"
	"testing"
)

func TestIterator_WalksInOrder(t *testing.T) {
	var v Version
	items := []int{10, 20, 30}
	it := NewIterator(NewGuard(&v), len(items), func(i int) int { return items[i] })

	var got []int
	for it.Next() {
		got = append(got, it.Value())
	}
	if err := it.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if len(got) != 3 || got[0] != 10 || got[1] != 20 || got[2] != 30 {
		t.Errorf("iterated %v, want [10 20 30]", got)
	}
}

func TestIterator_Empty(t *testing.T) {
	var v Version
	it := NewIterator(NewGuard(&v), 0, func(i int) int { return 0 })
	if it.Next() {
		t.Error("expected Next() to be false on empty iteration")
	}
	if err := it.Err(); err != nil {
		t.Errorf("expected nil error on exhausted iteration, got %v", err)
	}
}

func TestIterator_FailsMidIteration(t *testing.T) {
	var v Version
	items := []int{1, 2, 3}
	it := NewIterator(NewGuard(&v), len(items), func(i int) int { return items[i] })

	if !it.Next() {
		t.Fatal("first Next() failed")
	}
	v.Bump()
	if it.Next() {
		t.Error("expected Next() to fail after owner mutation")
	}
	if err := it.Err(); !errors.Is(err, ErrConcurrentModification) {
		t.Errorf("expected ErrConcurrentModification, got %v", err)
	}
	// Terminal: further calls keep failing, never resume.
	if it.Next() {
		t.Error("expected stale iterator to stay stopped")
	}
	if err := it.Err(); !errors.Is(err, ErrConcurrentModification) {
		t.Errorf("expected error to persist, got %v", err)
	}
}

func TestIterator_ValueHoldsLastElement(t *testing.T) {
	var v Version
	items := []string{"a", "b"}
	it := NewIterator(NewGuard(&v), len(items), func(i int) string { return items[i] })
	it.Next()
	it.Next()
	if it.Value() != "b" {
		t.Errorf("Value() = %q, want \"b\"", it.Value())
	}
	// Exhaustion does not clobber the last value.
	it.Next()
	if it.Value() != "b" {
		t.Errorf("Value() after exhaustion = %q, want \"b\"", it.Value())
	}
}

package coll

import (
	"fmt"
	"strings"
)

// View is a read-only projection over a collection: a sub-range, or the
// whole collection backwards. It holds a reference to, but never owns, the
// backing collection.
//
// A view captures the owner's version at creation. Every observable method
// re-validates it first and fails with ErrConcurrentModification once the
// owner has mutated, so a stale view is entirely unusable rather than
// partially usable. The transition is one-way: a stale view never heals.
type View[T any] struct {
	guard Guard
	count int
	at    func(int) T
}

// NewView builds a checked view over count elements addressed by at.
// Collection implementations call this with a closure over their live
// storage; at(0) is the first element of the projection.
func NewView[T any](guard Guard, count int, at func(int) T) *View[T] {
	return &View[T]{guard: guard, at: at, count: count}
}

// Count returns the number of elements in the projection.
func (v *View[T]) Count() (int, error) {
	if err := v.guard.Check(); err != nil {
		return 0, err
	}
	return v.count, nil
}

// IsEmpty reports whether the projection has no elements.
func (v *View[T]) IsEmpty() (bool, error) {
	if err := v.guard.Check(); err != nil {
		return false, err
	}
	return v.count == 0, nil
}

// At returns the element at index within the projection.
func (v *View[T]) At(index int) (T, error) {
	var zero T
	if err := v.guard.Check(); err != nil {
		return zero, err
	}
	if index < 0 || index >= v.count {
		return zero, ErrIndexOutOfRange
	}
	return v.at(index), nil
}

// Choose returns some element of the projection, ErrEmptyCollection when
// the projection is empty.
func (v *View[T]) Choose() (T, error) {
	var zero T
	if err := v.guard.Check(); err != nil {
		return zero, err
	}
	if v.count == 0 {
		return zero, ErrEmptyCollection
	}
	return v.at(0), nil
}

// CopyTo copies the projection into dst starting at offset.
func (v *View[T]) CopyTo(dst []T, offset int) error {
	if err := v.guard.Check(); err != nil {
		return err
	}
	if offset < 0 || offset+v.count > len(dst) {
		return ErrIndexOutOfRange
	}
	for i := 0; i < v.count; i++ {
		dst[offset+i] = v.at(i)
	}
	return nil
}

// ToSlice returns a fresh snapshot of the projection.
func (v *View[T]) ToSlice() ([]T, error) {
	if err := v.guard.Check(); err != nil {
		return nil, err
	}
	out := make([]T, v.count)
	for i := range out {
		out[i] = v.at(i)
	}
	return out, nil
}

// Iter returns a checked iterator over the projection. The iterator shares
// the view's captured stamp, so it fails exactly when the view does.
func (v *View[T]) Iter() *Iterator[T] {
	return NewIterator(v.guard, v.count, v.at)
}

// Backwards returns the reversed projection. It shares the view's captured
// stamp.
func (v *View[T]) Backwards() *View[T] {
	n := v.count
	at := v.at
	return &View[T]{
		guard: v.guard,
		count: n,
		at:    func(i int) T { return at(n - 1 - i) },
	}
}

// EqualTo reports whether two views hold equal elements in the same order
// under cmp. Both views re-validate their stamps first.
func (v *View[T]) EqualTo(other *View[T], cmp Comparer[T]) (bool, error) {
	if err := v.guard.Check(); err != nil {
		return false, err
	}
	if err := other.guard.Check(); err != nil {
		return false, err
	}
	if v.count != other.count {
		return false, nil
	}
	for i := 0; i < v.count; i++ {
		if !cmp.Equals(v.at(i), other.at(i)) {
			return false, nil
		}
	}
	return true, nil
}

// HashCode returns an order-sensitive hash of the projection under cmp.
func (v *View[T]) HashCode(cmp Comparer[T]) (uint64, error) {
	if err := v.guard.Check(); err != nil {
		return 0, err
	}
	var h uint64 = 17
	for i := 0; i < v.count; i++ {
		h = h*31 + cmp.Hash(v.at(i))
	}
	return h, nil
}

// String formats the projection. A stale view formats as "(stale view)"
// since fmt.Stringer cannot surface the underlying
// ErrConcurrentModification.
func (v *View[T]) String() string {
	if err := v.guard.Check(); err != nil {
		return "(stale view)"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.count; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", v.at(i))
	}
	sb.WriteByte(']')
	return sb.String()
}

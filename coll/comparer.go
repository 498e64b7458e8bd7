package coll

import (
	"hash/maphash"
	"reflect"
)

// Comparer decides element equality and hashing for a collection. It is
// supplied at construction time and drives every lookup (Contains, IndexOf,
// Remove, Update, Find).
type Comparer[T any] interface {
	// Equals reports whether a and b are the same element.
	Equals(a, b T) bool

	// Hash returns a hash consistent with Equals: equal elements must hash
	// equally.
	Hash(x T) uint64
}

// FuncComparer adapts a pair of functions to the Comparer interface.
type FuncComparer[T any] struct {
	EqualsFn func(a, b T) bool
	HashFn   func(x T) uint64
}

// Equals implements Comparer.
func (c FuncComparer[T]) Equals(a, b T) bool {
	return c.EqualsFn(a, b)
}

// Hash implements Comparer.
func (c FuncComparer[T]) Hash(x T) uint64 {
	return c.HashFn(x)
}

var hashSeed = maphash.MakeSeed()

type naturalComparer[T comparable] struct{}

func (naturalComparer[T]) Equals(a, b T) bool {
	return a == b
}

func (naturalComparer[T]) Hash(x T) uint64 {
	return maphash.Comparable(hashSeed, x)
}

// Natural returns the default comparer for comparable element types: ==
// equality and hash/maphash hashing.
func Natural[T comparable]() Comparer[T] {
	return naturalComparer[T]{}
}

// IsNil reports whether x holds a nil value: the nil interface itself, or a
// nil pointer, map, slice, channel or function behind a non-nil interface.
// Collections configured to reject nil use this on every insertion path.
func IsNil(x any) bool {
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

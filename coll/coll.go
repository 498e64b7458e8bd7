package coll

import (
	"math/rand/v2"

	"github.com/watchful-go/watchful/event"
)

// Speed is a declared, not measured, complexity hint for Count. Consumers
// may use it for algorithm selection.
type Speed int

const (
	// Constant means Count is O(1).
	Constant Speed = iota

	// Log means Count is O(log n).
	Log

	// Linear means Count walks the collection.
	Linear

	// PotentiallyInfinite means Count may not terminate.
	PotentiallyInfinite
)

// String returns a human-readable speed name.
func (s Speed) String() string {
	switch s {
	case Constant:
		return "constant"
	case Log:
		return "log"
	case Linear:
		return "linear"
	case PotentiallyInfinite:
		return "potentially-infinite"
	default:
		return "unknown"
	}
}

// Countable is the minimal read-only surface of any collection.
type Countable interface {
	// Count returns the number of elements. Never negative.
	Count() int

	// IsEmpty reports Count() == 0.
	IsEmpty() bool

	// CountSpeed is the declared cost of Count.
	CountSpeed() Speed
}

// Enumerable is a collection whose elements can be observed.
type Enumerable[T any] interface {
	Countable

	// Choose returns some contained element, ErrEmptyCollection when empty.
	Choose() (T, error)

	// CopyTo copies all elements into dst starting at offset.
	CopyTo(dst []T, offset int) error

	// ToSlice returns a fresh snapshot of the elements in order.
	ToSlice() []T

	// Iter returns a checked iterator over the elements.
	Iter() *Iterator[T]
}

// Indexable is a collection addressable by position.
type Indexable[T any] interface {
	// Get returns the element at index.
	Get(index int) (T, error)

	// IndexOf returns the index of the first element equal to item, or the
	// bitwise complement of the insertion point when absent.
	IndexOf(item T) int

	// LastIndexOf is IndexOf scanning from the back.
	LastIndexOf(item T) int
}

// Orderable is a collection whose element order can be rearranged in place.
type Orderable[T any] interface {
	// Reverse flips the element order. No-op, with no events, on fewer than
	// two elements.
	Reverse()

	// Sort orders the elements by cmp.
	Sort(cmp func(a, b T) int)

	// Shuffle randomizes the element order. A nil source uses the shared
	// generator.
	Shuffle(rnd *rand.Rand)
}

// Notifier is a collection that publishes structural changes.
type Notifier[T any] interface {
	// Events returns the collection's event hub.
	Events() *event.Hub[T]
}

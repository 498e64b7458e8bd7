package coll

import "errors"

// Errors returned by collection operations. Precondition violations
// (ErrEmptyCollection, ErrIndexOutOfRange, ErrNilItem, ErrDuplicateItem) are
// always raised before any mutation: a failing operation leaves the
// collection untouched and emits no events. ErrConcurrentModification is
// raised lazily, on the first access to a view or iterator created before a
// mutation; the mutation itself is not an error.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element and the collection has none.
	ErrEmptyCollection = errors.New("collection is empty")

	// ErrIndexOutOfRange is returned when an index or range falls outside
	// the collection's bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNilItem is returned when a nil item is offered to a collection
	// configured to reject nil.
	ErrNilItem = errors.New("nil item not allowed")

	// ErrDuplicateItem is returned when a positional insert would introduce
	// a duplicate into a collection configured to reject duplicates.
	ErrDuplicateItem = errors.New("duplicate item not allowed")

	// ErrConcurrentModification is returned by views and iterators whose
	// owning collection has mutated since they were created.
	ErrConcurrentModification = errors.New("collection was modified; enumeration operation may not execute")

	// ErrNotSupported is returned by operations a collection type does not
	// provide.
	ErrNotSupported = errors.New("operation not supported")
)

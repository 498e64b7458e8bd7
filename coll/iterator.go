package coll

// Iterator walks a collection in a fixed order. It follows the scanner
// idiom:
//
//	it := list.Iter()
//	for it.Next() {
//	    use(it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
//
// The iterator captures the owner's version at creation. Every advance
// re-validates it; once the owner mutates, Next returns false and Err
// reports ErrConcurrentModification. The failure is terminal: the iterator
// never skips, resets, or resumes.
type Iterator[T any] struct {
	guard Guard
	at    func(int) T
	count int
	pos   int
	cur   T
	err   error
}

// NewIterator builds a checked iterator over count elements addressed by at.
// Collection implementations call this; at must read the owner's live
// storage so re-validation stays meaningful.
func NewIterator[T any](guard Guard, count int, at func(int) T) *Iterator[T] {
	return &Iterator[T]{guard: guard, at: at, count: count}
}

// Next advances to the next element. It returns false when the iteration is
// exhausted or the owner has mutated; consult Err to distinguish the two.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if err := it.guard.Check(); err != nil {
		it.err = err
		return false
	}
	if it.pos >= it.count {
		return false
	}
	it.cur = it.at(it.pos)
	it.pos++
	return true
}

// Value returns the element produced by the last successful Next.
func (it *Iterator[T]) Value() T {
	return it.cur
}

// Err returns ErrConcurrentModification if the owner mutated during
// iteration, nil otherwise.
func (it *Iterator[T]) Err() error {
	return it.err
}

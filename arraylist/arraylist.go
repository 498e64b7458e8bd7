package arraylist

import (
	"fmt"
	"strings"

	"github.com/watchful-go/watchful/coll"
	"github.com/watchful-go/watchful/event"
	"github.com/watchful-go/watchful/store"
)

const defaultCapacity = 8

// List is an array-backed list. Duplicates are allowed unless configured
// otherwise; element lookup is driven by the comparer supplied at
// construction.
//
// List follows the module's single-threaded model: no internal locking, and
// event handlers run in-line during the mutating call.
type List[T any] struct {
	items []T
	size  int

	version coll.Version
	hub     *event.Hub[T]
	cmp     coll.Comparer[T]

	noDuplicates bool
	noNil        bool
}

// Compile-time capability checks.
var (
	_ coll.Enumerable[int] = (*List[int])(nil)
	_ coll.Indexable[int]  = (*List[int])(nil)
	_ coll.Orderable[int]  = (*List[int])(nil)
	_ coll.Notifier[int]   = (*List[int])(nil)
)

// New creates a list using natural equality for the element type.
func New[T comparable](opts ...Option) *List[T] {
	return NewComparer[T](coll.Natural[T](), opts...)
}

// NewComparer creates a list using cmp for element lookup.
func NewComparer[T any](cmp coll.Comparer[T], opts ...Option) *List[T] {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	l := &List[T]{
		items:        store.Allocate[T](cfg.capacity),
		cmp:          cmp,
		noDuplicates: cfg.noDuplicates,
		noNil:        cfg.noNil,
	}
	l.hub = event.NewHub[T](l, event.All)
	return l
}

// FromSlice creates a list holding the elements of items in order.
func FromSlice[T comparable](items []T, opts ...Option) (*List[T], error) {
	l := New[T](opts...)
	if _, err := l.AddAll(items...); err != nil {
		return nil, err
	}
	return l, nil
}

// Count returns the number of elements.
func (l *List[T]) Count() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// CountSpeed declares Count as O(1).
func (l *List[T]) CountSpeed() coll.Speed {
	return coll.Constant
}

// AllowsDuplicates reports whether equal items may coexist.
func (l *List[T]) AllowsDuplicates() bool {
	return !l.noDuplicates
}

// AllowsNil reports whether nil items are accepted.
func (l *List[T]) AllowsNil() bool {
	return !l.noNil
}

// Events returns the list's event hub.
func (l *List[T]) Events() *event.Hub[T] {
	return l.hub
}

// Choose returns the last element, ErrEmptyCollection when empty.
func (l *List[T]) Choose() (T, error) {
	var zero T
	if l.size == 0 {
		return zero, coll.ErrEmptyCollection
	}
	return l.items[l.size-1], nil
}

// First returns the element at index 0.
func (l *List[T]) First() (T, error) {
	var zero T
	if l.size == 0 {
		return zero, coll.ErrEmptyCollection
	}
	return l.items[0], nil
}

// Last returns the element at the highest index.
func (l *List[T]) Last() (T, error) {
	var zero T
	if l.size == 0 {
		return zero, coll.ErrEmptyCollection
	}
	return l.items[l.size-1], nil
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= l.size {
		return zero, coll.ErrIndexOutOfRange
	}
	return l.items[index], nil
}

// Contains reports whether the list holds an element equal to item.
func (l *List[T]) Contains(item T) bool {
	return l.search(item) >= 0
}

// Find returns the first stored element equal to item.
func (l *List[T]) Find(item T) (T, bool) {
	var zero T
	i := l.search(item)
	if i < 0 {
		return zero, false
	}
	return l.items[i], true
}

// IndexOf returns the index of the first element equal to item. When absent
// it returns the bitwise complement of the index where the item would be
// inserted, so callers test membership and recover the insertion point from
// one call: idx := l.IndexOf(x); if idx < 0 { insertAt := ^idx }.
func (l *List[T]) IndexOf(item T) int {
	if i := l.search(item); i >= 0 {
		return i
	}
	return ^l.size
}

// LastIndexOf is IndexOf scanning from the back.
func (l *List[T]) LastIndexOf(item T) int {
	for i := l.size - 1; i >= 0; i-- {
		if l.cmp.Equals(l.items[i], item) {
			return i
		}
	}
	return ^l.size
}

// CopyTo copies all elements into dst starting at offset.
func (l *List[T]) CopyTo(dst []T, offset int) error {
	if offset < 0 || offset+l.size > len(dst) {
		return coll.ErrIndexOutOfRange
	}
	store.CopySegment(l.items, 0, dst, offset, l.size)
	return nil
}

// ToSlice returns a fresh snapshot of the elements in order.
func (l *List[T]) ToSlice() []T {
	out := store.Allocate[T](l.size)
	store.CopySegment(l.items, 0, out, 0, l.size)
	return out
}

// IsSorted reports whether the elements are in non-decreasing order under
// cmp. Pure read; never bumps the version.
func (l *List[T]) IsSorted(cmp func(a, b T) int) bool {
	for i := 1; i < l.size; i++ {
		if cmp(l.items[i-1], l.items[i]) > 0 {
			return false
		}
	}
	return true
}

// Iter returns a checked iterator over the elements in index order.
func (l *List[T]) Iter() *coll.Iterator[T] {
	return coll.NewIterator(l.guard(), l.size, func(i int) T { return l.items[i] })
}

// View returns a checked read-only window of count elements starting at
// start. The view is valid until the next mutation.
func (l *List[T]) View(start, count int) (*coll.View[T], error) {
	if start < 0 || count < 0 || start+count > l.size {
		return nil, coll.ErrIndexOutOfRange
	}
	return coll.NewView(l.guard(), count, func(i int) T { return l.items[start+i] }), nil
}

// Backwards returns a checked view of the whole list in reverse order.
func (l *List[T]) Backwards() *coll.View[T] {
	n := l.size
	return coll.NewView(l.guard(), n, func(i int) T { return l.items[n-1-i] })
}

// String formats the list as [e0 e1 ...].
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < l.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", l.items[i])
	}
	sb.WriteByte(']')
	return sb.String()
}

func (l *List[T]) guard() coll.Guard {
	return coll.NewGuard(&l.version)
}

// search returns the index of the first element equal to item, -1 when
// absent.
func (l *List[T]) search(item T) int {
	for i := 0; i < l.size; i++ {
		if l.cmp.Equals(l.items[i], item) {
			return i
		}
	}
	return -1
}

func (l *List[T]) checkItem(item T) error {
	if l.noNil && coll.IsNil(item) {
		return coll.ErrNilItem
	}
	return nil
}

package linkedlist

import (
	"fmt"
	"strings"

	"github.com/watchful-go/watchful/coll"
	"github.com/watchful-go/watchful/event"
)

type node[T any] struct {
	prev, next *node[T]
	item       T
}

// List is a doubly linked list with a sentinel root. root.next is the
// front, root.prev is the back; an empty list links the root to itself.
//
// List follows the module's single-threaded model: no internal locking, and
// event handlers run in-line during the mutating call.
type List[T any] struct {
	root node[T]
	size int

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
	_ coll.Notifier[int]   = (*List[int])(nil)
)

// New creates a list using natural equality for the element type.
func New[T comparable](opts ...Option) *List[T] {
	return NewComparer[T](coll.Natural[T](), opts...)
}

// NewComparer creates a list using cmp for element lookup.
func NewComparer[T any](cmp coll.Comparer[T], opts ...Option) *List[T] {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	l := &List[T]{
		cmp:          cmp,
		noDuplicates: cfg.noDuplicates,
		noNil:        cfg.noNil,
	}
	l.root.next = &l.root
	l.root.prev = &l.root
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

// CountSpeed declares Count as O(1); the size is cached.
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

// Choose returns the front element, ErrEmptyCollection when empty.
func (l *List[T]) Choose() (T, error) {
	return l.First()
}

// First returns the front element.
func (l *List[T]) First() (T, error) {
	var zero T
	if l.size == 0 {
		return zero, coll.ErrEmptyCollection
	}
	return l.root.next.item, nil
}

// Last returns the back element.
func (l *List[T]) Last() (T, error) {
	var zero T
	if l.size == 0 {
		return zero, coll.ErrEmptyCollection
	}
	return l.root.prev.item, nil
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= l.size {
		return zero, coll.ErrIndexOutOfRange
	}
	return l.nodeAt(index).item, nil
}

// Contains reports whether the list holds an element equal to item.
func (l *List[T]) Contains(item T) bool {
	n, _ := l.find(item)
	return n != nil
}

// Find returns the first stored element equal to item.
func (l *List[T]) Find(item T) (T, bool) {
	var zero T
	n, _ := l.find(item)
	if n == nil {
		return zero, false
	}
	return n.item, true
}

// IndexOf returns the index of the first element equal to item, or the
// bitwise complement of the insertion point when absent.
func (l *List[T]) IndexOf(item T) int {
	if _, i := l.find(item); i >= 0 {
		return i
	}
	return ^l.size
}

// LastIndexOf is IndexOf scanning from the back.
func (l *List[T]) LastIndexOf(item T) int {
	i := l.size - 1
	for n := l.root.prev; n != &l.root; n = n.prev {
		if l.cmp.Equals(n.item, item) {
			return i
		}
		i--
	}
	return ^l.size
}

// CopyTo copies all elements into dst starting at offset.
func (l *List[T]) CopyTo(dst []T, offset int) error {
	if offset < 0 || offset+l.size > len(dst) {
		return coll.ErrIndexOutOfRange
	}
	i := offset
	for n := l.root.next; n != &l.root; n = n.next {
		dst[i] = n.item
		i++
	}
	return nil
}

// ToSlice returns a fresh snapshot of the elements in order.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for n := l.root.next; n != &l.root; n = n.next {
		out = append(out, n.item)
	}
	return out
}

// Iter returns a checked iterator over the elements in order.
func (l *List[T]) Iter() *coll.Iterator[T] {
	cursor := l.root.next
	pos := 0
	return coll.NewIterator(l.guard(), l.size, func(i int) T {
		// Sequential access pattern: the iterator asks for consecutive
		// indices, so advance the cursor instead of walking from the root.
		for pos < i {
			cursor = cursor.next
			pos++
		}
		for pos > i {
			cursor = cursor.prev
			pos--
		}
		return cursor.item
	})
}

// View returns a checked read-only window of count elements starting at
// start. The view is valid until the next mutation.
func (l *List[T]) View(start, count int) (*coll.View[T], error) {
	if start < 0 || count < 0 || start+count > l.size {
		return nil, coll.ErrIndexOutOfRange
	}
	return coll.NewView(l.guard(), count, func(i int) T { return l.nodeAt(start + i).item }), nil
}

// Backwards returns a checked view of the whole list in reverse order.
func (l *List[T]) Backwards() *coll.View[T] {
	n := l.size
	return coll.NewView(l.guard(), n, func(i int) T { return l.nodeAt(n - 1 - i).item })
}

// String formats the list as [e0 e1 ...].
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for n := l.root.next; n != &l.root; n = n.next {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v", n.item)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (l *List[T]) guard() coll.Guard {
	return coll.NewGuard(&l.version)
}

// nodeAt walks to index from the nearer end. index must be in [0, size).
func (l *List[T]) nodeAt(index int) *node[T] {
	if index < l.size/2 {
		n := l.root.next
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}
	n := l.root.prev
	for i := l.size - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

// find returns the first node equal to item and its index, or (nil, -1).
func (l *List[T]) find(item T) (*node[T], int) {
	i := 0
	for n := l.root.next; n != &l.root; n = n.next {
		if l.cmp.Equals(n.item, item) {
			return n, i
		}
		i++
	}
	return nil, -1
}

func (l *List[T]) checkItem(item T) error {
	if l.noNil && coll.IsNil(item) {
		return coll.ErrNilItem
	}
	return nil
}

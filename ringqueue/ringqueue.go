package ringqueue

import (
	"fmt"
	"strings"

	"github.com/watchful-go/watchful/coll"
	"github.com/watchful-go/watchful/event"
	"github.com/watchful-go/watchful/store"
)

const defaultCapacity = 8

// Queue is a FIFO queue over a ring buffer. The element at the front is
// index 0; IndexOf and Remove scan front to back.
//
// Queue follows the module's single-threaded model: no internal locking,
// and event handlers run in-line during the mutating call.
type Queue[T any] struct {
	buf  []T
	head int
	size int

	version coll.Version
	hub     *event.Hub[T]
	cmp     coll.Comparer[T]

	noNil bool
}

// Compile-time capability checks.
var (
	_ coll.Enumerable[int] = (*Queue[int])(nil)
	_ coll.Notifier[int]   = (*Queue[int])(nil)
)

// Option configures a Queue at construction time.
type Option func(*config)

type config struct {
	capacity int
	noNil    bool
}

// WithCapacity sets the initial buffer capacity.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// NoNil makes the queue reject nil items with coll.ErrNilItem.
func NoNil() Option {
	return func(c *config) {
		c.noNil = true
	}
}

// New creates a queue using natural equality for the element type.
func New[T comparable](opts ...Option) *Queue[T] {
	return NewComparer[T](coll.Natural[T](), opts...)
}

// NewComparer creates a queue using cmp for element lookup.
func NewComparer[T any](cmp coll.Comparer[T], opts ...Option) *Queue[T] {
	cfg := config{capacity: defaultCapacity}
	for _, o := range opts {
		o(&cfg)
	}
	q := &Queue[T]{
		buf:   store.Allocate[T](cfg.capacity),
		cmp:   cmp,
		noNil: cfg.noNil,
	}
	q.hub = event.NewHub[T](q, event.All&^event.Inserted)
	return q
}

// Count returns the number of queued elements.
func (q *Queue[T]) Count() int {
	return q.size
}

// IsEmpty reports whether the queue has no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// CountSpeed declares Count as O(1).
func (q *Queue[T]) CountSpeed() coll.Speed {
	return coll.Constant
}

// AllowsNil reports whether nil items are accepted.
func (q *Queue[T]) AllowsNil() bool {
	return !q.noNil
}

// Events returns the queue's event hub.
func (q *Queue[T]) Events() *event.Hub[T] {
	return q.hub
}

// Capacity returns the current buffer capacity.
func (q *Queue[T]) Capacity() int {
	return len(q.buf)
}

// at returns the element at queue index i; 0 is the front.
func (q *Queue[T]) at(i int) T {
	return q.buf[(q.head+i)%len(q.buf)]
}

// Choose returns the front element, ErrEmptyCollection when empty.
func (q *Queue[T]) Choose() (T, error) {
	return q.Front()
}

// Front returns the element that Dequeue would remove next.
func (q *Queue[T]) Front() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, coll.ErrEmptyCollection
	}
	return q.at(0), nil
}

// Back returns the most recently enqueued element.
func (q *Queue[T]) Back() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, coll.ErrEmptyCollection
	}
	return q.at(q.size - 1), nil
}

// Contains reports whether the queue holds an element equal to item.
func (q *Queue[T]) Contains(item T) bool {
	return q.search(item) >= 0
}

// Find returns the first stored element equal to item, scanning from the
// front.
func (q *Queue[T]) Find(item T) (T, bool) {
	var zero T
	i := q.search(item)
	if i < 0 {
		return zero, false
	}
	return q.at(i), true
}

// IndexOf returns the front-based index of the first element equal to item,
// or the bitwise complement of the insertion point (the back) when absent.
func (q *Queue[T]) IndexOf(item T) int {
	if i := q.search(item); i >= 0 {
		return i
	}
	return ^q.size
}

// CopyTo copies all elements, front first, into dst starting at offset.
func (q *Queue[T]) CopyTo(dst []T, offset int) error {
	if offset < 0 || offset+q.size > len(dst) {
		return coll.ErrIndexOutOfRange
	}
	for i := 0; i < q.size; i++ {
		dst[offset+i] = q.at(i)
	}
	return nil
}

// ToSlice returns a fresh snapshot of the elements, front first.
func (q *Queue[T]) ToSlice() []T {
	out := make([]T, q.size)
	for i := range out {
		out[i] = q.at(i)
	}
	return out
}

// Iter returns a checked iterator from front to back.
func (q *Queue[T]) Iter() *coll.Iterator[T] {
	return coll.NewIterator(q.guard(), q.size, q.at)
}

// View returns a checked read-only window of count elements starting at the
// front-based index start. The view is valid until the next mutation.
func (q *Queue[T]) View(start, count int) (*coll.View[T], error) {
	if start < 0 || count < 0 || start+count > q.size {
		return nil, coll.ErrIndexOutOfRange
	}
	return coll.NewView(q.guard(), count, func(i int) T { return q.at(start + i) }), nil
}

// Backwards returns a checked view of the whole queue back to front.
func (q *Queue[T]) Backwards() *coll.View[T] {
	n := q.size
	return coll.NewView(q.guard(), n, func(i int) T { return q.at(n - 1 - i) })
}

// String formats the queue front first as [e0 e1 ...].
func (q *Queue[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < q.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", q.at(i))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (q *Queue[T]) guard() coll.Guard {
	return coll.NewGuard(&q.version)
}

func (q *Queue[T]) search(item T) int {
	for i := 0; i < q.size; i++ {
		if q.cmp.Equals(q.at(i), item) {
			return i
		}
	}
	return -1
}

func (q *Queue[T]) checkItem(item T) error {
	if q.noNil && coll.IsNil(item) {
		return coll.ErrNilItem
	}
	return nil
}

package ringqueue

import (
	"github.com/watchful-go/watchful/coll"
	"github.com/watchful-go/watchful/event"
	"github.com/watchful-go/watchful/store"
)

// Enqueue adds item at the back, growing the buffer when full. The queue is
// a pure bag, so the boolean is always true on success; the signature
// mirrors Add across the module.
func (q *Queue[T]) Enqueue(item T) (bool, error) {
	if err := q.checkItem(item); err != nil {
		return false, err
	}
	q.version.Bump()
	q.ensureRoom(1)
	q.buf[(q.head+q.size)%len(q.buf)] = item
	q.size++
	q.hub.EmitAdded(item, 1)
	q.hub.EmitChanged()
	return true, nil
}

// Add is Enqueue under the module-wide name.
func (q *Queue[T]) Add(item T) (bool, error) {
	return q.Enqueue(item)
}

// Dequeue removes and returns the front element. The front leaves from
// queue index 0, so the emission is RemovedAt(item, 0), Removed, Changed.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, coll.ErrEmptyCollection
	}
	item := q.buf[q.head]
	q.version.Bump()
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	q.hub.EmitRemovedAt(item, 0)
	q.hub.EmitRemoved(item, 1)
	q.hub.EmitChanged()
	return item, nil
}

// Remove removes the first element equal to item, scanning from the front.
// Later elements shift toward the front. Absence is a boolean outcome, not
// an error.
func (q *Queue[T]) Remove(item T) bool {
	idx := q.search(item)
	if idx < 0 {
		return false
	}
	stored := q.at(idx)
	q.version.Bump()
	for i := idx; i < q.size-1; i++ {
		q.buf[(q.head+i)%len(q.buf)] = q.at(i + 1)
	}
	var zero T
	q.buf[(q.head+q.size-1)%len(q.buf)] = zero
	q.size--
	q.hub.EmitRemoved(stored, 1)
	q.hub.EmitChanged()
	return true
}

// Clear removes every element, firing Cleared(Full=true) then Changed. An
// already-empty queue is a no-op with no events.
func (q *Queue[T]) Clear() {
	if q.size == 0 {
		return
	}
	n := q.size
	q.version.Bump()
	q.buf = store.Allocate[T](defaultCapacity)
	q.head = 0
	q.size = 0
	q.hub.EmitCleared(event.ClearedInfo{Count: n, Full: true})
	q.hub.EmitChanged()
}

// SetCapacity reallocates the buffer to capacity, the only way the queue
// shrinks. Content and order are unchanged, so the version does not bump
// and no events fire. capacity must hold the current elements.
func (q *Queue[T]) SetCapacity(capacity int) error {
	if capacity < q.size || capacity > store.MaxLength {
		return coll.ErrIndexOutOfRange
	}
	if capacity < defaultCapacity {
		capacity = defaultCapacity
	}
	q.relocate(capacity)
	return nil
}

// ensureRoom grows the buffer so extra more elements fit, doubling up to
// store.MaxLength.
func (q *Queue[T]) ensureRoom(extra int) {
	need := q.size + extra
	if need <= len(q.buf) {
		return
	}
	newCap := len(q.buf) * 2
	if newCap < defaultCapacity {
		newCap = defaultCapacity
	}
	for newCap < need {
		newCap *= 2
	}
	if newCap > store.MaxLength {
		newCap = store.MaxLength
	}
	q.relocate(newCap)
}

// relocate moves the elements into a fresh buffer, linearized so the front
// lands at index 0.
func (q *Queue[T]) relocate(capacity int) {
	grown := store.Allocate[T](capacity)
	if q.size > 0 {
		tail := len(q.buf) - q.head
		if tail >= q.size {
			store.CopySegment(q.buf, q.head, grown, 0, q.size)
		} else {
			store.CopySegment(q.buf, q.head, grown, 0, tail)
			store.CopySegment(q.buf, 0, grown, tail, q.size-tail)
		}
	}
	q.buf = grown
	q.head = 0
}

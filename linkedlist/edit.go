package linkedlist

import (
	"math/rand/v2"
	"sort"

	"github.com/watchful-go/watchful/coll"
	"github.com/watchful-go/watchful/event"
)

// Mutations follow the module-wide shape: validate preconditions, bump the
// version, relink, emit the operation's event sequence ending with Changed.

var _ coll.Orderable[int] = (*List[int])(nil)

// Add appends item at the back. It reports false, without mutating or
// emitting, when a NoDuplicates list already holds an equal item.
func (l *List[T]) Add(item T) (bool, error) {
	if err := l.checkItem(item); err != nil {
		return false, err
	}
	if l.noDuplicates && l.Contains(item) {
		return false, nil
	}
	l.version.Bump()
	l.linkBefore(&l.root, item)
	l.hub.EmitAdded(item, 1)
	l.hub.EmitChanged()
	return true, nil
}

// AddAll appends the accepted elements of items in order and returns how
// many were accepted. One Added fires per accepted item, then exactly one
// Changed; nothing fires when nothing was accepted.
func (l *List[T]) AddAll(items ...T) (int, error) {
	for _, item := range items {
		if err := l.checkItem(item); err != nil {
			return 0, err
		}
	}
	accepted := items
	if l.noDuplicates {
		accepted = make([]T, 0, len(items))
		for _, item := range items {
			if l.Contains(item) || containsUnder(accepted, item, l.cmp) {
				continue
			}
			accepted = append(accepted, item)
		}
	}
	if len(accepted) == 0 {
		return 0, nil
	}
	l.version.Bump()
	wantAdded := l.hub.Active().Has(event.Added)
	for _, item := range accepted {
		l.linkBefore(&l.root, item)
		if wantAdded {
			l.hub.EmitAdded(item, 1)
		}
	}
	l.hub.EmitChanged()
	return len(accepted), nil
}

// InsertFirst inserts item at the front in O(1).
func (l *List[T]) InsertFirst(item T) error {
	return l.InsertAt(0, item)
}

// InsertLast inserts item at the back in O(1).
func (l *List[T]) InsertLast(item T) error {
	return l.InsertAt(l.size, item)
}

// InsertAt inserts item at index. 0 <= index <= Count. Locating the node is
// O(n); the relink itself is O(1).
func (l *List[T]) InsertAt(index int, item T) error {
	if index < 0 || index > l.size {
		return coll.ErrIndexOutOfRange
	}
	if err := l.checkItem(item); err != nil {
		return err
	}
	if l.noDuplicates && l.Contains(item) {
		return coll.ErrDuplicateItem
	}
	at := &l.root
	if index < l.size {
		at = l.nodeAt(index)
	}
	l.version.Bump()
	l.linkBefore(at, item)
	l.hub.EmitInserted(item, index)
	l.hub.EmitAdded(item, 1)
	l.hub.EmitChanged()
	return nil
}

// InsertAllAt inserts items starting at index, preserving their order. The
// whole call is validated first: any nil or duplicate violation rejects it
// without mutating.
func (l *List[T]) InsertAllAt(index int, items ...T) error {
	if index < 0 || index > l.size {
		return coll.ErrIndexOutOfRange
	}
	for i, item := range items {
		if err := l.checkItem(item); err != nil {
			return err
		}
		if l.noDuplicates && (l.Contains(item) || containsUnder(items[:i], item, l.cmp)) {
			return coll.ErrDuplicateItem
		}
	}
	if len(items) == 0 {
		return nil
	}
	at := &l.root
	if index < l.size {
		at = l.nodeAt(index)
	}
	l.version.Bump()
	for i, item := range items {
		l.linkBefore(at, item)
		l.hub.EmitInserted(item, index+i)
		l.hub.EmitAdded(item, 1)
	}
	l.hub.EmitChanged()
	return nil
}

// RemoveAt removes and returns the element at index. 0 <= index < Count.
func (l *List[T]) RemoveAt(index int) (T, error) {
	var zero T
	if index < 0 || index >= l.size {
		return zero, coll.ErrIndexOutOfRange
	}
	n := l.nodeAt(index)
	item := n.item
	l.version.Bump()
	l.unlink(n)
	l.hub.EmitRemovedAt(item, index)
	l.hub.EmitRemoved(item, 1)
	l.hub.EmitChanged()
	return item, nil
}

// RemoveFirst removes and returns the front element.
func (l *List[T]) RemoveFirst() (T, error) {
	var zero T
	if l.size == 0 {
		return zero, coll.ErrEmptyCollection
	}
	return l.RemoveAt(0)
}

// RemoveLast removes and returns the back element.
func (l *List[T]) RemoveLast() (T, error) {
	var zero T
	if l.size == 0 {
		return zero, coll.ErrEmptyCollection
	}
	return l.RemoveAt(l.size - 1)
}

// RemoveRange removes count elements starting at start in one step, firing
// Cleared(Full=false, Start=start) then Changed. A zero count is a no-op
// with no events.
func (l *List[T]) RemoveRange(start, count int) error {
	if start < 0 || count < 0 || start+count > l.size {
		return coll.ErrIndexOutOfRange
	}
	if count == 0 {
		return nil
	}
	n := l.nodeAt(start)
	l.version.Bump()
	for i := 0; i < count; i++ {
		next := n.next
		l.unlink(n)
		n = next
	}
	l.hub.EmitCleared(event.ClearedInfo{Count: count, Start: start, HasStart: true})
	l.hub.EmitChanged()
	return nil
}

// Remove removes the first element equal to item. Absence is a boolean
// outcome, not an error.
func (l *List[T]) Remove(item T) bool {
	n, _ := l.find(item)
	if n == nil {
		return false
	}
	stored := n.item
	l.version.Bump()
	l.unlink(n)
	l.hub.EmitRemoved(stored, 1)
	l.hub.EmitChanged()
	return true
}

// Update replaces the first element equal to item with item itself,
// preserving its position, and returns the replaced element.
func (l *List[T]) Update(item T) (T, bool, error) {
	var zero T
	if err := l.checkItem(item); err != nil {
		return zero, false, err
	}
	n, _ := l.find(item)
	if n == nil {
		return zero, false, nil
	}
	old := n.item
	l.version.Bump()
	n.item = item
	l.hub.EmitRemoved(old, 1)
	l.hub.EmitAdded(item, 1)
	l.hub.EmitChanged()
	return old, true, nil
}

// Set replaces the element at index and returns the old element, emitting
// RemovedAt, Removed, Inserted, Added, Changed.
func (l *List[T]) Set(index int, item T) (T, error) {
	var zero T
	if index < 0 || index >= l.size {
		return zero, coll.ErrIndexOutOfRange
	}
	if err := l.checkItem(item); err != nil {
		return zero, err
	}
	n := l.nodeAt(index)
	if l.noDuplicates {
		if found, i := l.find(item); found != nil && i != index {
			return zero, coll.ErrDuplicateItem
		}
	}
	old := n.item
	l.version.Bump()
	n.item = item
	l.hub.EmitRemovedAt(old, index)
	l.hub.EmitRemoved(old, 1)
	l.hub.EmitInserted(item, index)
	l.hub.EmitAdded(item, 1)
	l.hub.EmitChanged()
	return old, nil
}

// Clear removes every element, firing Cleared(Full=true) then Changed. An
// already-empty list is a no-op with no events.
func (l *List[T]) Clear() {
	if l.size == 0 {
		return
	}
	n := l.size
	l.version.Bump()
	l.root.next = &l.root
	l.root.prev = &l.root
	l.size = 0
	l.hub.EmitCleared(event.ClearedInfo{Count: n, Full: true})
	l.hub.EmitChanged()
}

// Reverse flips the element order by swapping every node's links, firing
// Changed only. Lists with fewer than two elements fire nothing.
func (l *List[T]) Reverse() {
	if l.size <= 1 {
		return
	}
	l.version.Bump()
	n := &l.root
	for {
		n.prev, n.next = n.next, n.prev
		if n.prev == &l.root {
			break
		}
		n = n.prev
	}
	l.hub.EmitChanged()
}

// Sort orders the elements by cmp, firing Changed only. An already-sorted
// list has nothing to change and fires nothing.
func (l *List[T]) Sort(cmp func(a, b T) int) {
	if l.size <= 1 {
		return
	}
	items := l.ToSlice()
	sorted := true
	for i := 1; i < len(items); i++ {
		if cmp(items[i-1], items[i]) > 0 {
			sorted = false
			break
		}
	}
	if sorted {
		return
	}
	l.version.Bump()
	sort.SliceStable(items, func(i, j int) bool { return cmp(items[i], items[j]) < 0 })
	l.writeBack(items)
	l.hub.EmitChanged()
}

// Shuffle randomizes the element order, firing Changed only. A nil source
// uses the shared generator.
func (l *List[T]) Shuffle(rnd *rand.Rand) {
	if l.size <= 1 {
		return
	}
	l.version.Bump()
	items := l.ToSlice()
	swap := func(i, j int) { items[i], items[j] = items[j], items[i] }
	if rnd != nil {
		rnd.Shuffle(len(items), swap)
	} else {
		rand.Shuffle(len(items), swap)
	}
	l.writeBack(items)
	l.hub.EmitChanged()
}

// linkBefore inserts a new node holding item before at.
func (l *List[T]) linkBefore(at *node[T], item T) {
	n := &node[T]{item: item, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	l.size++
}

// unlink removes n from the chain.
func (l *List[T]) unlink(n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
	l.size--
}

// writeBack rewrites node items from a reordered snapshot.
func (l *List[T]) writeBack(items []T) {
	n := l.root.next
	for _, item := range items {
		n.item = item
		n = n.next
	}
}

func containsUnder[T any](items []T, item T, cmp coll.Comparer[T]) bool {
	for _, x := range items {
		if cmp.Equals(x, item) {
			return true
		}
	}
	return false
}

package arraylist

import (
	"math/rand/v2"
	"sort"

	"github.com/watchful-go/watchful/coll"
	"github.com/watchful-go/watchful/event"
	"github.com/watchful-go/watchful/store"
)

// Every mutation in this file follows the same shape: validate
// preconditions, bump the version, perform the structural change, emit the
// operation's event sequence ending with Changed. A failed precondition
// leaves the list untouched and emits nothing.

// Add appends item. It reports false, without mutating or emitting, when a
// NoDuplicates list already holds an equal item.
func (l *List[T]) Add(item T) (bool, error) {
	if err := l.checkItem(item); err != nil {
		return false, err
	}
	if l.noDuplicates && l.search(item) >= 0 {
		return false, nil
	}
	l.version.Bump()
	l.ensureRoom(1)
	l.items[l.size] = item
	l.size++
	l.hub.EmitAdded(item, 1)
	l.hub.EmitChanged()
	return true, nil
}

// AddAll appends the accepted elements of items in order and returns how
// many were accepted. One Added fires per accepted item, then exactly one
// Changed; nothing fires when nothing was accepted. A nil violation is
// detected up front and rejects the whole call.
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
			if l.search(item) >= 0 || containsUnder(accepted, item, l.cmp) {
				continue
			}
			accepted = append(accepted, item)
		}
	}
	if len(accepted) == 0 {
		return 0, nil
	}
	l.version.Bump()
	l.ensureRoom(len(accepted))
	wantAdded := l.hub.Active().Has(event.Added)
	for _, item := range accepted {
		l.items[l.size] = item
		l.size++
		if wantAdded {
			l.hub.EmitAdded(item, 1)
		}
	}
	l.hub.EmitChanged()
	return len(accepted), nil
}

// InsertAt inserts item at index, shifting later elements right.
// 0 <= index <= Count.
func (l *List[T]) InsertAt(index int, item T) error {
	if index < 0 || index > l.size {
		return coll.ErrIndexOutOfRange
	}
	if err := l.checkItem(item); err != nil {
		return err
	}
	if l.noDuplicates && l.search(item) >= 0 {
		return coll.ErrDuplicateItem
	}
	l.version.Bump()
	l.openGap(index, 1)
	l.items[index] = item
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
		if l.noDuplicates && (l.search(item) >= 0 || containsUnder(items[:i], item, l.cmp)) {
			return coll.ErrDuplicateItem
		}
	}
	if len(items) == 0 {
		return nil
	}
	l.version.Bump()
	l.openGap(index, len(items))
	for i, item := range items {
		l.items[index+i] = item
	}
	for i, item := range items {
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
	item := l.items[index]
	l.version.Bump()
	l.closeGap(index, 1)
	l.hub.EmitRemovedAt(item, index)
	l.hub.EmitRemoved(item, 1)
	l.hub.EmitChanged()
	return item, nil
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
	l.version.Bump()
	l.closeGap(start, count)
	l.hub.EmitCleared(event.ClearedInfo{Count: count, Start: start, HasStart: true})
	l.hub.EmitChanged()
	return nil
}

// Remove removes the first element equal to item. Absence is a boolean
// outcome, not an error.
func (l *List[T]) Remove(item T) bool {
	i := l.search(item)
	if i < 0 {
		return false
	}
	stored := l.items[i]
	l.version.Bump()
	l.closeGap(i, 1)
	l.hub.EmitRemoved(stored, 1)
	l.hub.EmitChanged()
	return true
}

// Update replaces the first element equal to item with item itself,
// preserving its position, and returns the replaced element. Count is
// unchanged; the emission is Removed(old), Added(new), Changed — one
// operation, one Changed.
func (l *List[T]) Update(item T) (T, bool, error) {
	var zero T
	if err := l.checkItem(item); err != nil {
		return zero, false, err
	}
	i := l.search(item)
	if i < 0 {
		return zero, false, nil
	}
	old := l.items[i]
	l.version.Bump()
	l.items[i] = item
	l.hub.EmitRemoved(old, 1)
	l.hub.EmitAdded(item, 1)
	l.hub.EmitChanged()
	return old, true, nil
}

// Set replaces the element at index and returns the old element. The
// indexer emission is a removal at the index followed by an insertion at
// the same index: RemovedAt, Removed, Inserted, Added, Changed.
func (l *List[T]) Set(index int, item T) (T, error) {
	var zero T
	if index < 0 || index >= l.size {
		return zero, coll.ErrIndexOutOfRange
	}
	if err := l.checkItem(item); err != nil {
		return zero, err
	}
	if l.noDuplicates {
		if i := l.search(item); i >= 0 && i != index {
			return zero, coll.ErrDuplicateItem
		}
	}
	old := l.items[index]
	l.version.Bump()
	l.items[index] = item
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
	l.items = store.Allocate[T](defaultCapacity)
	l.size = 0
	l.hub.EmitCleared(event.ClearedInfo{Count: n, Full: true})
	l.hub.EmitChanged()
}

// Reverse flips the element order in place, firing Changed only. Lists with
// fewer than two elements are left alone and fire nothing.
func (l *List[T]) Reverse() {
	if l.size <= 1 {
		return
	}
	l.version.Bump()
	for i, j := 0, l.size-1; i < j; i, j = i+1, j-1 {
		l.items[i], l.items[j] = l.items[j], l.items[i]
	}
	l.hub.EmitChanged()
}

// Sort orders the elements by cmp, firing Changed only. A list that is
// already sorted has nothing to change and fires nothing.
func (l *List[T]) Sort(cmp func(a, b T) int) {
	if l.size <= 1 || l.IsSorted(cmp) {
		return
	}
	l.version.Bump()
	seg := l.items[:l.size]
	sort.SliceStable(seg, func(i, j int) bool { return cmp(seg[i], seg[j]) < 0 })
	l.hub.EmitChanged()
}

// Shuffle randomizes the element order, firing Changed only. A nil source
// uses the shared generator. Lists with fewer than two elements fire
// nothing.
func (l *List[T]) Shuffle(rnd *rand.Rand) {
	if l.size <= 1 {
		return
	}
	l.version.Bump()
	swap := func(i, j int) { l.items[i], l.items[j] = l.items[j], l.items[i] }
	if rnd != nil {
		rnd.Shuffle(l.size, swap)
	} else {
		rand.Shuffle(l.size, swap)
	}
	l.hub.EmitChanged()
}

// ensureRoom grows the buffer so extra more elements fit, doubling up to
// store.MaxLength.
func (l *List[T]) ensureRoom(extra int) {
	need := l.size + extra
	if need <= len(l.items) {
		return
	}
	newCap := len(l.items) * 2
	if newCap < defaultCapacity {
		newCap = defaultCapacity
	}
	for newCap < need {
		newCap *= 2
	}
	if newCap > store.MaxLength {
		newCap = store.MaxLength
	}
	grown := store.Allocate[T](newCap)
	store.CopySegment(l.items, 0, grown, 0, l.size)
	l.items = grown
}

// openGap shifts elements right to free width slots at index.
func (l *List[T]) openGap(index, width int) {
	l.ensureRoom(width)
	store.CopySegment(l.items, index, l.items, index+width, l.size-index)
	l.size += width
}

// closeGap removes width slots at index, shifting later elements left and
// zeroing the tail so removed elements are collectable.
func (l *List[T]) closeGap(index, width int) {
	var zero T
	store.CopySegment(l.items, index+width, l.items, index, l.size-index-width)
	for i := l.size - width; i < l.size; i++ {
		l.items[i] = zero
	}
	l.size -= width
}

func containsUnder[T any](items []T, item T, cmp coll.Comparer[T]) bool {
	for _, x := range items {
		if cmp.Equals(x, item) {
			return true
		}
	}
	return false
}

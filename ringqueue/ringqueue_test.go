package ringqueue

import (
	"errors"
	"fmt"
	"testing"

	"github.com/watchful-go/watchful/coll"
	"github.com/watchful-go/watchful/event"
)

type recorder struct {
	trace []string
}

func record(t *testing.T, hub *event.Hub[string]) *recorder {
	t.Helper()
	r := &recorder{}
	hub.OnChanged(func(any) {
		r.trace = append(r.trace, "changed")
	})
	hub.OnCleared(func(_ any, info event.ClearedInfo) {
		r.trace = append(r.trace, fmt.Sprintf("cleared(full=%v,%d)", info.Full, info.Count))
	})
	hub.OnAdded(func(_ any, ev event.ItemCount[string]) {
		r.trace = append(r.trace, fmt.Sprintf("added(%s,%d)", ev.Item, ev.Count))
	})
	hub.OnRemoved(func(_ any, ev event.ItemCount[string]) {
		r.trace = append(r.trace, fmt.Sprintf("removed(%s,%d)", ev.Item, ev.Count))
	})
	hub.OnRemovedAt(func(_ any, ev event.ItemAt[string]) {
		r.trace = append(r.trace, fmt.Sprintf("removedat(%s,%d)", ev.Item, ev.Index))
	})
	return r
}

func (r *recorder) verify(t *testing.T, want ...string) {
	t.Helper()
	if len(r.trace) != len(want) {
		t.Fatalf("trace = %v, want %v", r.trace, want)
	}
	for i := range want {
		if r.trace[i] != want[i] {
			t.Fatalf("trace = %v, want %v", r.trace, want)
		}
	}
}

func (r *recorder) reset() {
	r.trace = nil
}

func sliceEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEnqueueDequeue_FIFO(t *testing.T) {
	q := New[string]()
	r := record(t, q.Events())

	q.Enqueue("a")
	q.Enqueue("b")
	r.verify(t, "added(a,1)", "changed", "added(b,1)", "changed")
	r.reset()

	got, err := q.Dequeue()
	if err != nil || got != "a" {
		t.Fatalf("Dequeue = %q, %v; want \"a\", nil", got, err)
	}
	r.verify(t, "removedat(a,0)", "removed(a,1)", "changed")

	got, _ = q.Dequeue()
	if got != "b" {
		t.Errorf("second Dequeue = %q, want \"b\"", got)
	}
	if _, err := q.Dequeue(); !errors.Is(err, coll.ErrEmptyCollection) {
		t.Errorf("Dequeue on empty: expected ErrEmptyCollection, got %v", err)
	}
}

func TestInsertedIsNotListenable(t *testing.T) {
	q := New[string]()
	if q.Events().Listenable().Has(event.Inserted) {
		t.Error("expected Inserted to be non-listenable on a queue")
	}
	if _, err := q.Events().OnInserted(func(any, event.ItemAt[string]) {}); !errors.Is(err, event.ErrNotListenable) {
		t.Errorf("expected ErrNotListenable, got %v", err)
	}
	// RemovedAt stays listenable: dequeues leave from index 0.
	if _, err := q.Events().OnRemovedAt(func(any, event.ItemAt[string]) {}); err != nil {
		t.Errorf("OnRemovedAt failed: %v", err)
	}
}

func TestFrontBack(t *testing.T) {
	q := New[string]()
	if _, err := q.Front(); !errors.Is(err, coll.ErrEmptyCollection) {
		t.Errorf("Front on empty: %v", err)
	}
	if _, err := q.Back(); !errors.Is(err, coll.ErrEmptyCollection) {
		t.Errorf("Back on empty: %v", err)
	}
	q.Enqueue("a")
	q.Enqueue("b")
	if front, _ := q.Front(); front != "a" {
		t.Errorf("Front = %q, want \"a\"", front)
	}
	if back, _ := q.Back(); back != "b" {
		t.Errorf("Back = %q, want \"b\"", back)
	}
	if chosen, err := q.Choose(); err != nil || chosen != "a" {
		t.Errorf("Choose = %q, %v; want the front", chosen, err)
	}
	// Peeks are pure reads: a live iterator survives them.
	it := q.Iter()
	q.Front()
	q.Back()
	if !it.Next() {
		t.Errorf("expected iterator to survive peeks: %v", it.Err())
	}
}

func TestWraparoundGrowth(t *testing.T) {
	q := New[int](WithCapacity(4))
	// Interleave to walk the head around the ring before growing.
	for i := 0; i < 3; i++ {
		q.Enqueue(i)
	}
	q.Dequeue()
	q.Dequeue()
	for i := 3; i < 20; i++ {
		q.Enqueue(i)
	}
	if q.Count() != 18 {
		t.Fatalf("Count = %d, want 18", q.Count())
	}
	want := 2
	for !q.IsEmpty() {
		got, err := q.Dequeue()
		if err != nil || got != want {
			t.Fatalf("Dequeue = %d, %v; want %d", got, err, want)
		}
		want++
	}
}

func TestRemove_FrontBiased(t *testing.T) {
	q := New[string]()
	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("a")
	r := record(t, q.Events())

	if !q.Remove("a") {
		t.Fatal("Remove(a) = false")
	}
	r.verify(t, "removed(a,1)", "changed")
	// The front occurrence left; the later duplicate survives in order.
	if !sliceEqual(q.ToSlice(), []string{"b", "a"}) {
		t.Errorf("ToSlice = %v, want [b a]", q.ToSlice())
	}

	r.reset()
	if q.Remove("z") {
		t.Error("Remove(z) = true, want false")
	}
	r.verify(t)
}

func TestIndexOfAndContains(t *testing.T) {
	q := New[string]()
	q.Enqueue("a")
	q.Enqueue("b")
	q.Dequeue()
	q.Enqueue("c")

	if got := q.IndexOf("b"); got != 0 {
		t.Errorf("IndexOf(b) = %d, want 0 (front)", got)
	}
	if got := q.IndexOf("c"); got != 1 {
		t.Errorf("IndexOf(c) = %d, want 1", got)
	}
	got := q.IndexOf("z")
	if got >= 0 {
		t.Fatalf("IndexOf(z) = %d, want negative", got)
	}
	if insertAt := ^got; insertAt != q.Count() {
		t.Errorf("insertion point %d, want the back %d", insertAt, q.Count())
	}
	if !q.Contains("b") || q.Contains("z") {
		t.Error("Contains gave wrong answers")
	}
	if found, ok := q.Find("c"); !ok || found != "c" {
		t.Errorf("Find(c) = %q, %v", found, ok)
	}
}

func TestClear(t *testing.T) {
	q := New[string]()
	q.Enqueue("a")
	q.Enqueue("b")
	r := record(t, q.Events())

	q.Clear()
	r.verify(t, "cleared(full=true,2)", "changed")
	if !q.IsEmpty() {
		t.Error("expected empty queue")
	}
	r.reset()
	q.Clear()
	r.verify(t)
}

func TestSetCapacity(t *testing.T) {
	q := New[int](WithCapacity(64))
	for i := 0; i < 10; i++ {
		q.Enqueue(i)
	}
	it := q.Iter()

	if err := q.SetCapacity(5); !errors.Is(err, coll.ErrIndexOutOfRange) {
		t.Errorf("SetCapacity below size: expected ErrIndexOutOfRange, got %v", err)
	}
	if err := q.SetCapacity(16); err != nil {
		t.Fatalf("SetCapacity failed: %v", err)
	}
	if q.Capacity() != 16 {
		t.Errorf("Capacity = %d, want 16", q.Capacity())
	}
	// Content and order unchanged, so live iterators stay valid.
	if !it.Next() {
		t.Errorf("expected iterator to survive SetCapacity: %v", it.Err())
	}
	for i := 0; i < 10; i++ {
		got, err := q.Dequeue()
		if err != nil || got != i {
			t.Fatalf("Dequeue = %d, %v; want %d", got, err, i)
		}
	}
}

func TestViewsAndIterator(t *testing.T) {
	q := New[string]()
	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")

	view, err := q.View(1, 2)
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if got, err := view.ToSlice(); err != nil || !sliceEqual(got, []string{"b", "c"}) {
		t.Errorf("View(1,2) = %v, %v", got, err)
	}
	back, err := q.Backwards().ToSlice()
	if err != nil || !sliceEqual(back, []string{"c", "b", "a"}) {
		t.Errorf("Backwards = %v, %v", back, err)
	}

	q.Dequeue()
	if _, err := view.Count(); !errors.Is(err, coll.ErrConcurrentModification) {
		t.Errorf("expected ErrConcurrentModification, got %v", err)
	}
}

func TestCopyToAndSnapshot(t *testing.T) {
	q := New[string]()
	q.Enqueue("a")
	q.Enqueue("b")

	dst := make([]string, 2)
	if err := q.CopyTo(dst, 0); err != nil {
		t.Fatalf("CopyTo failed: %v", err)
	}
	if !sliceEqual(dst, []string{"a", "b"}) {
		t.Errorf("dst = %v", dst)
	}
	if err := q.CopyTo(make([]string, 1), 0); !errors.Is(err, coll.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}

	snap := q.ToSlice()
	q.Enqueue("c")
	if len(snap) != 2 {
		t.Errorf("snapshot grew with the queue: %v", snap)
	}
}

func TestNilPolicyAndFlags(t *testing.T) {
	q := New[*int](NoNil())
	if _, err := q.Enqueue(nil); !errors.Is(err, coll.ErrNilItem) {
		t.Errorf("expected ErrNilItem, got %v", err)
	}
	if q.Count() != 0 {
		t.Error("expected failed enqueue to leave queue empty")
	}
	if q.AllowsNil() {
		t.Error("AllowsNil = true on a NoNil queue")
	}
	if q.CountSpeed() != coll.Constant {
		t.Errorf("CountSpeed = %v", q.CountSpeed())
	}
}

func TestAddAlias(t *testing.T) {
	q := New[string]()
	ok, err := q.Add("a")
	if err != nil || !ok {
		t.Fatalf("Add = %v, %v", ok, err)
	}
	if front, _ := q.Front(); front != "a" {
		t.Errorf("Front = %q", front)
	}
	if got := q.String(); got != "[a]" {
		t.Errorf("String = %q", got)
	}
}

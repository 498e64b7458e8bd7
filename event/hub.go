package event

import "github.com/google/uuid"

// Hub dispatches change notifications for a single collection. Each channel
// keeps its own subscriber list; a channel is active exactly when its list
// is non-empty, so there is no separate bitset to keep in sync.
//
// Hubs follow the module's single-threaded model: no locking, and handlers
// run in-line in the mutating call's goroutine. A handler that re-enters the
// collection observes the post-mutation state and invalidates outstanding
// views and iterators like any other mutation would.
type Hub[T any] struct {
	sender     any
	listenable Kind

	changed   []entry[ChangedHandler]
	cleared   []entry[ClearedHandler]
	added     []entry[ItemCountHandler[T]]
	removed   []entry[ItemCountHandler[T]]
	inserted  []entry[ItemAtHandler[T]]
	removedAt []entry[ItemAtHandler[T]]
}

type entry[H any] struct {
	id string
	fn H
}

// NewHub creates a hub for sender. listenable fixes the set of channels the
// collection can ever raise; subscriptions outside it are rejected.
func NewHub[T any](sender any, listenable Kind) *Hub[T] {
	return &Hub[T]{sender: sender, listenable: listenable}
}

// Listenable returns the channels this collection can raise.
func (h *Hub[T]) Listenable() Kind {
	return h.listenable
}

// Active returns the union of channels with at least one live subscriber.
// Producers use it to skip building payloads nobody will receive.
func (h *Hub[T]) Active() Kind {
	var k Kind
	if len(h.changed) > 0 {
		k |= Changed
	}
	if len(h.cleared) > 0 {
		k |= Cleared
	}
	if len(h.added) > 0 {
		k |= Added
	}
	if len(h.removed) > 0 {
		k |= Removed
	}
	if len(h.inserted) > 0 {
		k |= Inserted
	}
	if len(h.removedAt) > 0 {
		k |= RemovedAt
	}
	return k
}

// OnChanged subscribes to the Changed channel.
func (h *Hub[T]) OnChanged(fn ChangedHandler) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return attach(&h.changed, Changed, h.listenable, fn)
}

// OnCleared subscribes to the Cleared channel.
func (h *Hub[T]) OnCleared(fn ClearedHandler) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return attach(&h.cleared, Cleared, h.listenable, fn)
}

// OnAdded subscribes to the Added channel.
func (h *Hub[T]) OnAdded(fn ItemCountHandler[T]) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return attach(&h.added, Added, h.listenable, fn)
}

// OnRemoved subscribes to the Removed channel.
func (h *Hub[T]) OnRemoved(fn ItemCountHandler[T]) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return attach(&h.removed, Removed, h.listenable, fn)
}

// OnInserted subscribes to the Inserted channel.
func (h *Hub[T]) OnInserted(fn ItemAtHandler[T]) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return attach(&h.inserted, Inserted, h.listenable, fn)
}

// OnRemovedAt subscribes to the RemovedAt channel.
func (h *Hub[T]) OnRemovedAt(fn ItemAtHandler[T]) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return attach(&h.removedAt, RemovedAt, h.listenable, fn)
}

// attach appends a handler entry and builds its subscription. Detaching
// filters into a fresh slice, so emission ranging over the old slice header
// is unaffected by a handler cancelling mid-dispatch.
func attach[H any](list *[]entry[H], kind, listenable Kind, fn H) (*Subscription, error) {
	if !listenable.Has(kind) {
		return nil, ErrNotListenable
	}
	id := uuid.New().String()
	*list = append(*list, entry[H]{id: id, fn: fn})
	sub := &Subscription{id: id, kind: kind, active: true}
	sub.detach = func() {
		*list = detach(*list, id)
	}
	return sub, nil
}

func detach[H any](list []entry[H], id string) []entry[H] {
	out := make([]entry[H], 0, len(list))
	for _, e := range list {
		if e.id != id {
			out = append(out, e)
		}
	}
	return out
}

// EmitChanged notifies Changed subscribers. Collections call this last,
// once per operation that altered content or order.
func (h *Hub[T]) EmitChanged() {
	for _, e := range h.changed {
		e.fn(h.sender)
	}
}

// EmitCleared notifies Cleared subscribers.
func (h *Hub[T]) EmitCleared(info ClearedInfo) {
	for _, e := range h.cleared {
		e.fn(h.sender, info)
	}
}

// EmitAdded notifies Added subscribers of item entering with multiplicity
// count.
func (h *Hub[T]) EmitAdded(item T, count int) {
	if len(h.added) == 0 {
		return
	}
	ev := ItemCount[T]{Item: item, Count: count}
	for _, e := range h.added {
		e.fn(h.sender, ev)
	}
}

// EmitRemoved notifies Removed subscribers of item leaving with
// multiplicity count.
func (h *Hub[T]) EmitRemoved(item T, count int) {
	if len(h.removed) == 0 {
		return
	}
	ev := ItemCount[T]{Item: item, Count: count}
	for _, e := range h.removed {
		e.fn(h.sender, ev)
	}
}

// EmitInserted notifies Inserted subscribers of item entering at index.
func (h *Hub[T]) EmitInserted(item T, index int) {
	if len(h.inserted) == 0 {
		return
	}
	ev := ItemAt[T]{Item: item, Index: index}
	for _, e := range h.inserted {
		e.fn(h.sender, ev)
	}
}

// EmitRemovedAt notifies RemovedAt subscribers of item leaving from index.
func (h *Hub[T]) EmitRemovedAt(item T, index int) {
	if len(h.removedAt) == 0 {
		return
	}
	ev := ItemAt[T]{Item: item, Index: index}
	for _, e := range h.removedAt {
		e.fn(h.sender, ev)
	}
}

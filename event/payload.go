package event

// ClearedInfo is the payload for the Cleared channel.
type ClearedInfo struct {
	// Count is the number of elements removed.
	Count int

	// Full reports whether the whole collection was emptied, as opposed to
	// an index range.
	Full bool

	// Start is the first index of a range clear. Meaningful only when
	// HasStart is true; full clears have no start index.
	Start int

	// HasStart reports whether Start is meaningful.
	HasStart bool
}

// ItemCount is the payload for the Added and Removed channels: an element
// and its multiplicity.
type ItemCount[T any] struct {
	Item  T
	Count int
}

// ItemAt is the payload for the Inserted and RemovedAt channels: an element
// and the index it entered or left.
type ItemAt[T any] struct {
	Item  T
	Index int
}

// ChangedHandler receives Changed notifications. sender is the collection
// that mutated.
type ChangedHandler func(sender any)

// ClearedHandler receives Cleared notifications.
type ClearedHandler func(sender any, info ClearedInfo)

// ItemCountHandler receives Added or Removed notifications.
type ItemCountHandler[T any] func(sender any, ev ItemCount[T])

// ItemAtHandler receives Inserted or RemovedAt notifications.
type ItemAtHandler[T any] func(sender any, ev ItemAt[T])

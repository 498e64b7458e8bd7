package event

// Subscription represents one attached handler on one channel.
type Subscription struct {
	id     string
	kind   Kind
	active bool
	detach func()
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Kind returns the channel the handler is attached to.
func (s *Subscription) Kind() Kind {
	return s.kind
}

// IsActive reports whether the handler can still receive events.
func (s *Subscription) IsActive() bool {
	return s.active
}

// Cancel permanently detaches the handler. Cancelling the last subscription
// on a channel clears that channel's bit in the hub's Active set. Cancel is
// idempotent.
func (s *Subscription) Cancel() {
	if !s.active {
		return
	}
	s.active = false
	s.detach()
}

package event

import "errors"

// Sentinel errors for subscription management. Emission never fails.
var (
	// ErrNotListenable is returned when subscribing to a channel the
	// collection never raises.
	ErrNotListenable = errors.New("event kind is not listenable on this collection")

	// ErrNilHandler is returned when a nil handler is provided.
	ErrNilHandler = errors.New("handler cannot be nil")
)

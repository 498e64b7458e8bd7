// Package ringqueue implements a FIFO queue over a circular buffer with
// front and back cursors, wired into the module's version-stamp and
// event-notification protocol. Enqueue and dequeue are amortized O(1); the
// buffer doubles when full and shrinks only through an explicit SetCapacity.
//
// A queue has no positional insert or removal, so its hub never raises
// Inserted; subscribing to that channel fails with event.ErrNotListenable.
package ringqueue

// Package event implements the change-notification protocol shared by every
// collection in the module.
//
// Each collection owns a Hub with six channels: Changed, Cleared, Added,
// Removed, Inserted and RemovedAt. Subscribers attach per channel and
// receive synchronous, in-line callbacks during the mutating call, after the
// version bump and the structural change, so a handler that inspects the
// collection sees the new content.
//
// # Listenable vs active
//
// Listenable is the fixed set of channels a collection can ever raise
// (queues, for example, never raise Inserted). Active is the subset with at
// least one live subscriber, derived from the per-channel subscriber lists.
// Producers consult Active to skip building per-item payloads nobody will
// receive: a bulk add with no Added subscriber fires no Added events but
// still ends with exactly one Changed.
//
// # Emission order
//
// Every mutating operation emits a fixed sequence, each event conditional on
// its channel being active, always ending with Changed when anything
// changed. A single add emits Added then Changed; a positional insert emits
// Inserted, Added, Changed; an indexer set emits RemovedAt, Removed,
// Inserted, Added, Changed. Operations that change nothing emit nothing.
//
// Emission itself cannot fail; an empty channel is the normal quiet path,
// not an error.
package event

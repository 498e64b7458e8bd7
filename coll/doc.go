// Package coll defines the contracts shared by every collection in the
// module: the capability interfaces concrete types compose, the equality
// comparer, the mutation version counter with its guard, and the checked
// read-only views and iterators that the version counter invalidates.
//
// # Versioning
//
// Every collection owns a Version. Mutating operations bump it exactly once,
// after precondition checks and before event emission. Views and iterators
// capture a Stamp through a Guard at creation time; every subsequent access
// re-validates the stamp and fails with ErrConcurrentModification once the
// owner has mutated. Invalidation is terminal: a stale guard never becomes
// valid again.
//
// # Capability interfaces
//
// Rather than a deep inheritance ladder, concrete collections compose small
// orthogonal interfaces: Countable, Enumerable, Indexable, Orderable and
// Notifier. Consumers depend on the capability they need.
package coll

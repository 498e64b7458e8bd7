// Package arraylist implements an array-backed list with bag semantics,
// positional access, and the module's version-stamp and event-notification
// protocol. Appends are amortized O(1) through a doubling growth policy;
// positional inserts and removals shift elements and cost O(n).
package arraylist

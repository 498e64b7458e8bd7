// Package linkedlist implements a doubly linked list with a sentinel root
// node, bag semantics, and the module's version-stamp and
// event-notification protocol. Front and back operations are O(1);
// positional access walks from the nearer end.
package linkedlist

package event

import "strings"

// Kind identifies event channels. Kinds are bit flags so a set of channels
// is a plain union, matching the Listenable and Active queries on a Hub.
type Kind uint8

const (
	// Changed fires once at the end of every operation that altered the
	// collection's content or order. It carries no payload.
	Changed Kind = 1 << iota

	// Cleared fires when the collection, or an index range of it, is
	// emptied in one step.
	Cleared

	// Added fires for each element that entered the collection.
	Added

	// Removed fires for each element that left the collection.
	Removed

	// Inserted fires when an element entered at a specific index.
	Inserted

	// RemovedAt fires when an element left from a specific index.
	RemovedAt
)

// All is the union of every channel.
const All = Changed | Cleared | Added | Removed | Inserted | RemovedAt

// None is the empty channel set.
const None Kind = 0

var kindNames = []struct {
	kind Kind
	name string
}{
	{Changed, "changed"},
	{Cleared, "cleared"},
	{Added, "added"},
	{Removed, "removed"},
	{Inserted, "inserted"},
	{RemovedAt, "removed-at"},
}

// Has reports whether k contains every channel in other.
func (k Kind) Has(other Kind) bool {
	return k&other == other
}

// String returns a "|"-joined list of channel names.
func (k Kind) String() string {
	if k == None {
		return "none"
	}
	var parts []string
	for _, kn := range kindNames {
		if k.Has(kn.kind) {
			parts = append(parts, kn.name)
		}
	}
	return strings.Join(parts, "|")
}

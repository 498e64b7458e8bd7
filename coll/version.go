package coll

// Stamp is a point-in-time snapshot of a collection's Version.
type Stamp uint32

// Version is a per-collection mutation counter. Mutating operations bump it
// exactly once; pure reads never touch it. Wraparound is tolerated (a
// collection would need 2^32 mutations between a capture and a check to slip
// past a guard).
//
// The zero value is ready to use.
type Version struct {
	n uint32
}

// Bump records a structural mutation.
func (v *Version) Bump() {
	v.n++
}

// Current returns the stamp for the present state.
func (v *Version) Current() Stamp {
	return Stamp(v.n)
}

// Guard pairs a collection's version counter with the stamp captured when a
// view or iterator was created. All staleness checks in the module go
// through Guard.Check so the comparison lives in exactly one place.
type Guard struct {
	owner *Version
	stamp Stamp
}

// NewGuard captures the owner's current stamp.
func NewGuard(owner *Version) Guard {
	return Guard{owner: owner, stamp: owner.Current()}
}

// Check reports whether the owner has mutated since the guard was created.
// Once the owner mutates, Check fails on every subsequent call; a guard
// never revalidates.
func (g Guard) Check() error {
	if g.owner.Current() != g.stamp {
		return ErrConcurrentModification
	}
	return nil
}

package linkedlist

// Option configures a List at construction time.
type Option func(*config)

type config struct {
	noDuplicates bool
	noNil        bool
}

// NoDuplicates makes the list reject items equal to one it already holds:
// Add reports false, positional inserts fail with coll.ErrDuplicateItem.
func NoDuplicates() Option {
	return func(c *config) {
		c.noDuplicates = true
	}
}

// NoNil makes the list reject nil items on every insertion path with
// coll.ErrNilItem.
func NoNil() Option {
	return func(c *config) {
		c.noNil = true
	}
}

package coll

import (
	"errors"
	"testing"
)

// viewOver builds a view over a plain slice with its own version counter,
// standing in for a collection.
func viewOver(items []string) (*View[string], *Version) {
	var v Version
	view := NewView(NewGuard(&v), len(items), func(i int) string { return items[i] })
	return view, &v
}

func TestView_Reads(t *testing.T) {
	view, _ := viewOver([]string{"a", "b", "c"})

	if n, err := view.Count(); err != nil || n != 3 {
		t.Errorf("Count() = %d, %v; want 3, nil", n, err)
	}
	if empty, err := view.IsEmpty(); err != nil || empty {
		t.Errorf("IsEmpty() = %v, %v; want false, nil", empty, err)
	}
	if x, err := view.At(1); err != nil || x != "b" {
		t.Errorf("At(1) = %q, %v; want \"b\", nil", x, err)
	}
	if got, err := view.ToSlice(); err != nil || len(got) != 3 || got[0] != "a" {
		t.Errorf("ToSlice() = %v, %v", got, err)
	}
	if s := view.String(); s != "[a b c]" {
		t.Errorf("String() = %q, want \"[a b c]\"", s)
	}
}

func TestView_AtOutOfRange(t *testing.T) {
	view, _ := viewOver([]string{"a"})
	if _, err := view.At(1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := view.At(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestView_ChooseEmpty(t *testing.T) {
	view, _ := viewOver(nil)
	if _, err := view.Choose(); !errors.Is(err, ErrEmptyCollection) {
		t.Errorf("expected ErrEmptyCollection, got %v", err)
	}
}

func TestView_CopyTo(t *testing.T) {
	view, _ := viewOver([]string{"a", "b"})

	dst := make([]string, 4)
	if err := view.CopyTo(dst, 1); err != nil {
		t.Fatalf("CopyTo failed: %v", err)
	}
	if dst[1] != "a" || dst[2] != "b" {
		t.Errorf("CopyTo wrote %v", dst)
	}

	small := make([]string, 1)
	if err := view.CopyTo(small, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange for short buffer, got %v", err)
	}
}

func TestView_Backwards(t *testing.T) {
	view, _ := viewOver([]string{"a", "b", "c"})
	back := view.Backwards()
	got, err := back.ToSlice()
	if err != nil {
		t.Fatalf("ToSlice failed: %v", err)
	}
	want := []string{"c", "b", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Backwards()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestView_EveryAccessorFailsWhenStale(t *testing.T) {
	view, ver := viewOver([]string{"a", "b"})
	other, _ := viewOver([]string{"a", "b"})
	ver.Bump()

	if _, err := view.Count(); !errors.Is(err, ErrConcurrentModification) {
		t.Errorf("Count: expected ErrConcurrentModification, got %v", err)
	}
	if _, err := view.IsEmpty(); !errors.Is(err, ErrConcurrentModification) {
		t.Errorf("IsEmpty: expected ErrConcurrentModification, got %v", err)
	}
	if _, err := view.At(0); !errors.Is(err, ErrConcurrentModification) {
		t.Errorf("At: expected ErrConcurrentModification, got %v", err)
	}
	if _, err := view.Choose(); !errors.Is(err, ErrConcurrentModification) {
		t.Errorf("Choose: expected ErrConcurrentModification, got %v", err)
	}
	if err := view.CopyTo(make([]string, 4), 0); !errors.Is(err, ErrConcurrentModification) {
		t.Errorf("CopyTo: expected ErrConcurrentModification, got %v", err)
	}
	if _, err := view.ToSlice(); !errors.Is(err, ErrConcurrentModification) {
		t.Errorf("ToSlice: expected ErrConcurrentModification, got %v", err)
	}
	cmp := Natural[string]()
	if _, err := view.EqualTo(other, cmp); !errors.Is(err, ErrConcurrentModification) {
		t.Errorf("EqualTo: expected ErrConcurrentModification, got %v", err)
	}
	if _, err := view.HashCode(cmp); !errors.Is(err, ErrConcurrentModification) {
		t.Errorf("HashCode: expected ErrConcurrentModification, got %v", err)
	}
	if s := view.String(); s != "(stale view)" {
		t.Errorf("String: expected stale marker, got %q", s)
	}

	it := view.Iter()
	if it.Next() {
		t.Error("expected stale iterator to refuse to advance")
	}
	if err := it.Err(); !errors.Is(err, ErrConcurrentModification) {
		t.Errorf("Iter: expected ErrConcurrentModification, got %v", err)
	}
}

func TestView_EqualToAndHashCode(t *testing.T) {
	a, _ := viewOver([]string{"x", "y"})
	b, _ := viewOver([]string{"x", "y"})
	c, _ := viewOver([]string{"y", "x"})
	cmp := Natural[string]()

	if eq, err := a.EqualTo(b, cmp); err != nil || !eq {
		t.Errorf("EqualTo same content = %v, %v; want true", eq, err)
	}
	if eq, err := a.EqualTo(c, cmp); err != nil || eq {
		t.Errorf("EqualTo reordered content = %v, %v; want false", eq, err)
	}

	ha, err := a.HashCode(cmp)
	if err != nil {
		t.Fatalf("HashCode failed: %v", err)
	}
	hb, _ := b.HashCode(cmp)
	hc, _ := c.HashCode(cmp)
	if ha != hb {
		t.Error("expected equal views to hash equally")
	}
	if ha == hc {
		t.Error("expected order-sensitive hash to differ for reordered content")
	}
}

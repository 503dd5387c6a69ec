// Package nav holds the cursor state shared by every list in twig: an
// optional index into a flattened list that wraps at both ends.
package nav

// Selection is either empty or an index into a list. The zero value is empty.
type Selection struct {
	index int
	set   bool
}

// None returns the empty selection.
func None() Selection { return Selection{} }

// At selects index i directly, as a mouse click does.
func At(i int) Selection { return Selection{index: i, set: true} }

// Index returns the selected index and whether anything is selected.
func (s Selection) Index() (int, bool) { return s.index, s.set }

// IsNone reports whether nothing is selected.
func (s Selection) IsNone() bool { return !s.set }

// Is reports whether i is the selected index.
func (s Selection) Is(i int) bool { return s.set && s.index == i }

// MovePrev steps backwards through a list of length n. From nothing or the
// first entry it lands on the last one. For n <= 0 the selection is returned
// unchanged.
func MovePrev(s Selection, n int) Selection {
	if n <= 0 {
		return s
	}
	if !s.set || s.index <= 0 {
		return At(n - 1)
	}
	return At(s.index - 1)
}

// MoveNext steps forwards through a list of length n. From nothing or the
// last entry it lands on the first one. For n <= 0 the selection is returned
// unchanged.
func MoveNext(s Selection, n int) Selection {
	if n <= 0 {
		return s
	}
	if !s.set || s.index >= n-1 {
		return At(0)
	}
	return At(s.index + 1)
}

// Clamp keeps s inside a list of length n after the list has been rebuilt
// from the same source.
func Clamp(s Selection, n int) Selection {
	switch {
	case !s.set:
		return s
	case n <= 0:
		return None()
	case s.index >= n:
		return At(n - 1)
	case s.index < 0:
		return At(0)
	}
	return s
}

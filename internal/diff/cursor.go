package diff

// Cursor selects what the diff panel shows: 0 is every hunk, 1..N is hunk N
// on its own. The zero value shows every hunk.
type Cursor struct {
	index int
}

// CursorAt returns a cursor on hunk i (0 for all hunks).
func CursorAt(i int) Cursor { return Cursor{index: i} }

// Index returns 0 for all hunks or the 1-based hunk number.
func (c Cursor) Index() int { return c.index }

// All reports whether every hunk is shown.
func (c Cursor) All() bool { return c.index == 0 }

// Next moves forward through {0..hunks}, wrapping from the last hunk back to
// all. With one hunk or none there is nothing to page and c is unchanged.
func (c Cursor) Next(hunks int) Cursor {
	if hunks <= 1 {
		return c
	}
	if c.index >= hunks {
		return Cursor{}
	}
	return Cursor{index: c.index + 1}
}

// Prev moves backward through {0..hunks}, wrapping from all to the last hunk.
func (c Cursor) Prev(hunks int) Cursor {
	if hunks <= 1 {
		return c
	}
	if c.index <= 0 || c.index > hunks {
		return Cursor{index: hunks}
	}
	return Cursor{index: c.index - 1}
}

// Fit resets the cursor when a new patch has fewer hunks than it points at.
func (c Cursor) Fit(hunks int) Cursor {
	if c.index > hunks {
		return Cursor{}
	}
	return c
}

package diff

// LineKind tags a displayed diff line.
type LineKind int

const (
	LineContext LineKind = iota
	LineAdded
	LineRemoved
)

// Line is a hunk line with its prefix stripped.
type Line struct {
	Kind LineKind
	Text string
}

// DisplayLines returns the hunk's lines tagged by prefix, with the prefix
// removed and the no-newline marker dropped.
func (h Hunk) DisplayLines() []Line {
	out := make([]Line, 0, len(h.Lines))
	for _, raw := range h.Lines {
		if raw == NoNewlineMarker {
			continue
		}
		out = append(out, parseLine(raw))
	}
	return out
}

func parseLine(raw string) Line {
	if raw == "" {
		return Line{Kind: LineContext}
	}
	switch raw[0] {
	case '+':
		return Line{Kind: LineAdded, Text: raw[1:]}
	case '-':
		return Line{Kind: LineRemoved, Text: raw[1:]}
	case ' ':
		return Line{Kind: LineContext, Text: raw[1:]}
	}
	return Line{Kind: LineContext, Text: raw}
}

// Visible returns the hunks the cursor selects: all of them at 0, otherwise
// the single hunk it points at. A cursor past the end selects nothing.
func (p Patch) Visible(c Cursor) []Hunk {
	if c.All() {
		return p.Hunks
	}
	i := c.Index() - 1
	if i < 0 || i >= len(p.Hunks) {
		return nil
	}
	return p.Hunks[i : i+1]
}

package diff

import (
	"strings"
	"unicode"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// maxWordDiffLine skips word emphasis on very long lines.
const maxWordDiffLine = 400

// Segment is part of a changed line. Changed segments are the words that
// differ from the paired line.
type Segment struct {
	Text    string
	Changed bool
}

// WordDiff compares a removed line with the added line that replaced it and
// returns the segments of each. ok is false when the lines are too long or
// share nothing, in which case callers render them whole.
func WordDiff(removed, added string) (old, updated []Segment, ok bool) {
	if removed == "" || added == "" || len(removed) > maxWordDiffLine || len(added) > maxWordDiffLine {
		return nil, nil, false
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(strings.Join(tokens(removed), "\x00"), strings.Join(tokens(added), "\x00"), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	shared := false
	for _, d := range diffs {
		text := strings.ReplaceAll(d.Text, "\x00", "")
		if text == "" {
			continue
		}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			shared = true
			old = append(old, Segment{Text: text})
			updated = append(updated, Segment{Text: text})
		case diffmatchpatch.DiffDelete:
			old = append(old, Segment{Text: text, Changed: true})
		case diffmatchpatch.DiffInsert:
			updated = append(updated, Segment{Text: text, Changed: true})
		}
	}
	if !shared {
		return nil, nil, false
	}
	return old, updated, true
}

// tokens splits a line into words, single punctuation runes and single
// whitespace runes.
func tokens(line string) []string {
	var out []string
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			out = append(out, word.String())
			word.Reset()
		}
	}
	for _, r := range line {
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			flush()
			out = append(out, string(r))
			continue
		}
		word.WriteRune(r)
	}
	flush()
	return out
}

// Pairs maps the index of each removed line to the added line directly after
// it, for lines returned by DisplayLines.
func Pairs(lines []Line) map[int]int {
	pairs := make(map[int]int)
	for i := 0; i+1 < len(lines); i++ {
		if lines[i].Kind == LineRemoved && lines[i+1].Kind == LineAdded {
			pairs[i] = i + 1
			i++
		}
	}
	return pairs
}

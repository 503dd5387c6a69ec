package git

import (
	"fmt"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"

	"github.com/zjrosen/twig/internal/diff"
)

const devNull = "/dev/null"

// ParsePatches parses unified diff text into per-file patches. Binary files
// come back without hunks.
func ParsePatches(text string) ([]diff.Patch, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	files, _, err := gitdiff.Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parsing diff: %w", err)
	}

	patches := make([]diff.Patch, 0, len(files))
	for _, f := range files {
		p := diff.Patch{OldName: f.OldName, NewName: f.NewName}
		if f.IsNew {
			p.OldName = devNull
		}
		if f.IsDelete {
			p.NewName = devNull
		}
		for _, frag := range f.TextFragments {
			p.Hunks = append(p.Hunks, toHunk(frag))
		}
		patches = append(patches, p)
	}
	return patches, nil
}

func toHunk(frag *gitdiff.TextFragment) diff.Hunk {
	h := diff.Hunk{
		Header: strings.TrimSpace(frag.Header()),
		Lines:  make([]string, 0, len(frag.Lines)),
	}
	for _, l := range frag.Lines {
		text, hadNewline := strings.CutSuffix(l.Line, "\n")
		h.Lines = append(h.Lines, l.Op.String()+text)
		if !hadNewline {
			h.Lines = append(h.Lines, diff.NoNewlineMarker)
		}
	}
	return h
}

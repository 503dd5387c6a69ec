package records

import (
	"slices"

	"github.com/zjrosen/twig/internal/git"
)

// FromStatus sorts changed files into unstaged, untracked, staged and merge
// conflict sections. A file lands in the first section whose rule it meets:
// modified but not staged, deleted but not staged, not added, staged,
// conflicted. Ids run across sections in that section order.
func FromStatus(snap *git.StatusSnapshot) View {
	if snap == nil {
		return NewView(nil)
	}

	groups := map[string][]git.FileStatus{}
	for _, f := range snap.Files {
		if key, ok := classify(snap, f.Path); ok {
			groups[key] = append(groups[key], f)
		}
	}

	b := newBuilder()
	for _, key := range []string{SectionUnstaged, SectionUntracked, SectionStaged, SectionConflicts} {
		b.ensure(key)
		for _, f := range groups[key] {
			b.add(Record{Section: key, Name: f.Path, Ref: f.Path, Status: f.Code()})
		}
	}
	return b.view()
}

func classify(snap *git.StatusSnapshot, path string) (string, bool) {
	staged := slices.Contains(snap.Staged, path)
	switch {
	case slices.Contains(snap.Modified, path) && !staged:
		return SectionUnstaged, true
	case slices.Contains(snap.Deleted, path) && !staged:
		return SectionUnstaged, true
	case slices.Contains(snap.NotAdded, path):
		return SectionUntracked, true
	case staged:
		return SectionStaged, true
	case slices.Contains(snap.Conflicted, path):
		return SectionConflicts, true
	}
	return "", false
}

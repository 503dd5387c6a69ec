// Package diff models parsed unified patches and the hunk cursor the diff
// panel pages through. Parsing itself lives in internal/git.
package diff

import "strings"

// NoNewlineMarker is the line git emits after a final line that lacks a
// trailing newline. It is never rendered.
const NoNewlineMarker = `\ No newline at end of file`

// Patch is one file's diff.
type Patch struct {
	OldName string
	NewName string
	Hunks   []Hunk
}

// Hunk is a contiguous block of changes. Every line keeps its '+', '-' or
// ' ' prefix.
type Hunk struct {
	Header string
	Lines  []string
}

// Set holds the patches of a working tree: tracked files diffed against HEAD
// and untracked files diffed against nothing.
type Set struct {
	Tracked   []Patch
	Untracked []Patch
}

const devNull = "/dev/null"

// UntrackedStatus is the porcelain status code of a file git does not track.
const UntrackedStatus = "?"

// Resolve finds the patch for path. Untracked files are looked up by their
// new name in the untracked set, everything else by the old name in the
// tracked set, where a file added in the index has no old name and is
// matched by its new one. The first match wins. A rename is listed under its
// new name, so tracked patches are tried by new name when no old name
// matches.
func (s Set) Resolve(path, status string) (Patch, bool) {
	if status == UntrackedStatus {
		for _, p := range s.Untracked {
			if strings.TrimPrefix(p.NewName, "b/") == path {
				return p, true
			}
		}
		return Patch{}, false
	}
	for _, p := range s.Tracked {
		name := strings.TrimPrefix(p.OldName, "a/")
		if name == devNull {
			name = strings.TrimPrefix(p.NewName, "b/")
		}
		if name == path {
			return p, true
		}
	}
	for _, p := range s.Tracked {
		if strings.TrimPrefix(p.NewName, "b/") == path {
			return p, true
		}
	}
	return Patch{}, false
}

// Path returns the name the patch is best known by.
func (p Patch) Path() string {
	if name := strings.TrimPrefix(p.NewName, "b/"); name != "" && name != devNull {
		return name
	}
	return strings.TrimPrefix(p.OldName, "a/")
}

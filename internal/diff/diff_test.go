package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func threeHunks() Patch {
	return Patch{
		OldName: "a/main.go",
		NewName: "b/main.go",
		Hunks: []Hunk{
			{Header: "@@ -1,2 +1,2 @@", Lines: []string{" package main", "-var a = 1", "+var a = 2"}},
			{Header: "@@ -10,1 +10,2 @@", Lines: []string{" func f() {}", "+func g() {}"}},
			{Header: "@@ -20,2 +21,1 @@", Lines: []string{"-// gone", " // kept"}},
		},
	}
}

func TestCursor_NextVisitsEveryHunkThenAll(t *testing.T) {
	c := Cursor{}
	var visited []int
	for range 4 {
		c = c.Next(3)
		visited = append(visited, c.Index())
	}
	require.Equal(t, []int{1, 2, 3, 0}, visited)
}

func TestCursor_PrevFromAllGoesToLast(t *testing.T) {
	require.Equal(t, 3, Cursor{}.Prev(3).Index())
	require.Equal(t, 0, CursorAt(1).Prev(3).Index())
	require.Equal(t, 1, CursorAt(2).Prev(3).Index())
}

func TestCursor_InactiveForSingleHunk(t *testing.T) {
	require.Equal(t, 0, Cursor{}.Next(1).Index())
	require.Equal(t, 0, Cursor{}.Prev(1).Index())
	require.Equal(t, 0, Cursor{}.Next(0).Index())
}

func TestCursor_FitResetsOnShorterPatch(t *testing.T) {
	require.Equal(t, 0, CursorAt(2).Fit(1).Index())
	require.Equal(t, 2, CursorAt(2).Fit(2).Index())
	require.Equal(t, 0, CursorAt(0).Fit(0).Index())
}

func TestCursor_CycleReturnsHome(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		hunks := rapid.IntRange(2, 30).Draw(rt, "hunks")
		start := CursorAt(rapid.IntRange(0, hunks).Draw(rt, "start"))

		fwd, back := start, start
		for range hunks + 1 {
			fwd = fwd.Next(hunks)
			back = back.Prev(hunks)
		}
		if fwd != start || back != start {
			rt.Fatalf("cycle of %d from %d ended at %d/%d", hunks+1, start.Index(), fwd.Index(), back.Index())
		}
	})
}

func TestPatch_Visible(t *testing.T) {
	p := threeHunks()

	assert.Len(t, p.Visible(Cursor{}), 3)
	single := p.Visible(CursorAt(2))
	require.Len(t, single, 1)
	assert.Equal(t, "@@ -10,1 +10,2 @@", single[0].Header)
	assert.Empty(t, p.Visible(CursorAt(9)))
}

func TestHunk_DisplayLines(t *testing.T) {
	h := Hunk{Lines: []string{" ctx", "-old", "+new", NoNewlineMarker, ""}}

	lines := h.DisplayLines()

	require.Equal(t, []Line{
		{Kind: LineContext, Text: "ctx"},
		{Kind: LineRemoved, Text: "old"},
		{Kind: LineAdded, Text: "new"},
		{Kind: LineContext, Text: ""},
	}, lines)
}

func TestSet_Resolve(t *testing.T) {
	set := Set{
		Tracked: []Patch{
			{OldName: "a/readme.md", NewName: "b/readme.md"},
			{OldName: "main.go", NewName: "main.go", Hunks: []Hunk{{Header: "first"}}},
			{OldName: "main.go", NewName: "main.go", Hunks: []Hunk{{Header: "second"}}},
		},
		Untracked: []Patch{
			{OldName: "/dev/null", NewName: "b/new.txt"},
		},
	}

	p, ok := set.Resolve("readme.md", "M")
	require.True(t, ok)
	assert.Equal(t, "b/readme.md", p.NewName)

	p, ok = set.Resolve("main.go", "M")
	require.True(t, ok)
	assert.Equal(t, "first", p.Hunks[0].Header)

	p, ok = set.Resolve("new.txt", UntrackedStatus)
	require.True(t, ok)
	assert.Equal(t, "new.txt", p.Path())

	_, ok = set.Resolve("new.txt", "M")
	assert.False(t, ok)
	_, ok = set.Resolve("readme.md", UntrackedStatus)
	assert.False(t, ok)
}

func TestWordDiff(t *testing.T) {
	old, updated, ok := WordDiff("var count = 1", "var count = 2")
	require.True(t, ok)

	assert.Equal(t, []Segment{{Text: "var count = "}, {Text: "1", Changed: true}}, old)
	assert.Equal(t, []Segment{{Text: "var count = "}, {Text: "2", Changed: true}}, updated)

	_, _, ok = WordDiff("alpha", "")
	assert.False(t, ok)
	_, _, ok = WordDiff("abc", "xyz")
	assert.False(t, ok)
}

func TestPairs(t *testing.T) {
	lines := threeHunks().Hunks[0].DisplayLines()
	assert.Equal(t, map[int]int{1: 2}, Pairs(lines))
}

func TestSet_ResolveStagedNewFile(t *testing.T) {
	set := Set{Tracked: []Patch{{OldName: "/dev/null", NewName: "added.go"}}}

	p, ok := set.Resolve("added.go", "A")
	require.True(t, ok)
	assert.Equal(t, "added.go", p.Path())
}

func TestSet_ResolveStagedRename(t *testing.T) {
	set := Set{Tracked: []Patch{
		{OldName: "a/old.go", NewName: "b/new.go", Hunks: []Hunk{{Header: "renamed"}}},
		{OldName: "a/other.go", NewName: "b/other.go"},
	}}

	p, ok := set.Resolve("new.go", "R")
	require.True(t, ok)
	assert.Equal(t, "renamed", p.Hunks[0].Header)
	assert.Equal(t, "new.go", p.Path())

	p, ok = set.Resolve("old.go", "R")
	require.True(t, ok, "the old name still matches first")
	assert.Equal(t, "renamed", p.Hunks[0].Header)
}

package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/twig/internal/git"
)

func branchSnap(names ...string) *git.BranchSnapshot {
	snap := &git.BranchSnapshot{Branches: map[string]git.BranchInfo{}}
	for _, n := range names {
		snap.All = append(snap.All, n)
		snap.Branches[n] = git.BranchInfo{Name: n, Commit: "c-" + n}
	}
	return snap
}

func names(s Section) []string {
	var out []string
	for _, r := range s.Records {
		out = append(out, r.Name)
	}
	return out
}

func ids(s Section) []int {
	var out []int
	for _, r := range s.Records {
		out = append(out, r.ID)
	}
	return out
}

func TestFromBranches_LocalAndRemote(t *testing.T) {
	v := FromBranches(branchSnap("main", "remotes/origin/main", "remotes/origin/dev"))

	require.Len(t, v.Sections(), 2)
	local, origin := v.Sections()[0], v.Sections()[1]

	assert.Equal(t, SectionLocal, local.Key)
	assert.Equal(t, []string{"main"}, names(local))
	assert.Equal(t, []int{0}, ids(local))

	assert.Equal(t, "origin", origin.Key)
	assert.Equal(t, []string{"main", "dev"}, names(origin))
	assert.Equal(t, []int{1, 2}, ids(origin))
	assert.Equal(t, "remotes/origin/dev", origin.Records[1].Ref)
	assert.Equal(t, "origin", origin.Records[1].Remote)
	assert.Equal(t, 3, v.Len())
}

func TestFromBranches_IdsFollowInputOrder(t *testing.T) {
	v := FromBranches(branchSnap("remotes/upstream/x", "main", "remotes/origin/y", "dev", "remotes/upstream/z"))

	var keys []string
	for _, s := range v.Sections() {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{SectionLocal, "upstream", "origin"}, keys)

	local, _ := v.Section(SectionLocal)
	assert.Equal(t, []int{1, 3}, ids(local))
	upstream, _ := v.Section("upstream")
	assert.Equal(t, []int{0, 4}, ids(upstream))

	r, ok := v.Lookup(4)
	require.True(t, ok)
	assert.Equal(t, "z", r.Name)
}

func TestFromBranches_OnlyRemotesOmitsLocal(t *testing.T) {
	v := FromBranches(branchSnap("remotes/origin/main"))

	_, ok := v.Section(SectionLocal)
	assert.False(t, ok)
	require.Len(t, v.Sections(), 1)
}

func TestFromBranches_SkipsNamesWithoutDetails(t *testing.T) {
	snap := branchSnap("main", "dev")
	snap.All = append([]string{"ghost"}, snap.All...)

	v := FromBranches(snap)
	local, _ := v.Section(SectionLocal)
	assert.Equal(t, []string{"main", "dev"}, names(local))
	assert.Equal(t, []int{0, 1}, ids(local))
}

func TestFromStatus_StagedWinsOverModified(t *testing.T) {
	snap := &git.StatusSnapshot{
		Files:    []git.FileStatus{{Path: "a.go", Index: 'M', WorkingDir: 'M'}},
		Modified: []string{"a.go"},
		Staged:   []string{"a.go"},
	}

	v := FromStatus(snap)

	require.Len(t, v.Sections(), 1)
	assert.Equal(t, SectionStaged, v.Sections()[0].Key)
	assert.Equal(t, 1, v.Len())
}

func TestFromStatus_SectionOrderAndIds(t *testing.T) {
	snap := &git.StatusSnapshot{
		Files: []git.FileStatus{
			{Path: "staged.go", Index: 'A', WorkingDir: ' '},
			{Path: "conflict.go", Index: 'U', WorkingDir: 'U'},
			{Path: "new.txt", Index: '?', WorkingDir: '?'},
			{Path: "edit.go", Index: ' ', WorkingDir: 'M'},
			{Path: "gone.go", Index: ' ', WorkingDir: 'D'},
		},
		Modified:   []string{"edit.go"},
		Deleted:    []string{"gone.go"},
		Staged:     []string{"staged.go"},
		NotAdded:   []string{"new.txt"},
		Conflicted: []string{"conflict.go"},
	}

	v := FromStatus(snap)

	var keys []string
	for _, s := range v.Sections() {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{SectionUnstaged, SectionUntracked, SectionStaged, SectionConflicts}, keys)

	unstaged, _ := v.Section(SectionUnstaged)
	assert.Equal(t, []string{"edit.go", "gone.go"}, names(unstaged))
	assert.Equal(t, []int{0, 1}, ids(unstaged))
	assert.Equal(t, "D", unstaged.Records[1].Status)

	untracked, _ := v.Section(SectionUntracked)
	assert.Equal(t, []int{2}, ids(untracked))
	assert.Equal(t, "?", untracked.Records[0].Status)

	staged, _ := v.Section(SectionStaged)
	assert.Equal(t, []int{3}, ids(staged))
	assert.Equal(t, "A", staged.Records[0].Status)

	conflicts, _ := v.Section(SectionConflicts)
	assert.Equal(t, []int{4}, ids(conflicts))

	for i, r := range v.Flatten() {
		assert.Equal(t, i, r.ID)
	}
}

func TestEmptyInputsHaveNoSections(t *testing.T) {
	for _, v := range []View{
		FromStatus(nil),
		FromStatus(&git.StatusSnapshot{}),
		FromBranches(nil),
		FromBranches(&git.BranchSnapshot{}),
		FromLog(nil),
	} {
		assert.Empty(t, v.Sections())
		assert.True(t, v.Empty())
		_, ok := v.Lookup(0)
		assert.False(t, ok)
	}
}

func TestFromLog(t *testing.T) {
	v := FromLog([]git.LogEntry{
		{Graph: "* ", Hash: "aaa", ShortHash: "a", Message: "first"},
		{Graph: "|\\"},
	})

	require.Equal(t, 2, v.Len())
	r, _ := v.Lookup(0)
	assert.Equal(t, "aaa", r.Commit)
	assert.Equal(t, "first", r.Label)
}

func TestList(t *testing.T) {
	v := List("repos", []Record{{Name: "a", ID: 99}, {Name: "b"}})

	flat := v.Flatten()
	require.Len(t, flat, 2)
	assert.Equal(t, 0, flat[0].ID)
	assert.Equal(t, 1, flat[1].ID)
	assert.Equal(t, "repos", flat[1].Section)
	assert.True(t, List("repos", nil).Empty())
}

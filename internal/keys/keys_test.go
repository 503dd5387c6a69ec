package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestNav_ArrowPairs(t *testing.T) {
	require.Equal(t, []string{"up", "left"}, Nav.Up.Keys())
	require.Equal(t, []string{"down", "right"}, Nav.Down.Keys())
	require.Equal(t, []string{"?"}, Nav.Menu.Keys())
	require.Equal(t, []string{"esc"}, Nav.Exit.Keys())
}

func TestBranches_CaseSensitiveLetters(t *testing.T) {
	require.Equal(t, []string{"p"}, Branches.Pull.Keys())
	require.Equal(t, []string{"P"}, Branches.Push.Keys())
	require.Equal(t, []string{"b"}, Branches.NewBranch.Keys())
	require.Equal(t, []string{"B"}, Branches.NewRemoteBranch.Keys())
}

func TestStatus_Bindings(t *testing.T) {
	require.Equal(t, []string{" "}, Status.ViewDiff.Keys())
	require.Equal(t, "space", Status.ViewDiff.Help().Key)
	require.Equal(t, []string{"A"}, Status.StageAllAndUntracked.Keys())
	require.Equal(t, []string{"U"}, Status.UnstageAll.Keys())
}

func TestStatus_NoDuplicateKeys(t *testing.T) {
	all := []key.Binding{
		Status.Stage, Status.Unstage, Status.StageAll, Status.StageAllAndUntracked,
		Status.UnstageAll, Status.Commit, Status.CommitAll, Status.Discard,
		Status.DiscardAll, Status.ViewDiff, Status.Open, Status.Yank,
	}
	seen := map[string]bool{}
	for _, b := range all {
		for _, k := range b.Keys() {
			require.False(t, seen[k], "key %q bound twice", k)
			seen[k] = true
		}
	}
}

func TestDiff_HunkKeys(t *testing.T) {
	require.Equal(t, []string{","}, Diff.PrevHunk.Keys())
	require.Equal(t, []string{"."}, Diff.NextHunk.Keys())
}

func TestHelpLine_SkipsDisabled(t *testing.T) {
	disabled := key.NewBinding(key.WithKeys("x"), key.WithDisabled())
	require.Len(t, HelpLine(Nav.Up, disabled, Nav.Down), 2)
}

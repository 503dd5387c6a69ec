package git

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus_ClassifiesEntries(t *testing.T) {
	out := "## main...origin/main [ahead 2, behind 1]\x00" +
		" M edited.go\x00" +
		"MM both.go\x00" +
		"A  added.go\x00" +
		" D removed.go\x00" +
		"D  staged_delete.go\x00" +
		"?? new.txt\x00" +
		"UU conflict.go\x00" +
		"R  renamed.go\x00original.go\x00" +
		"!! ignored.log\x00"

	snap := parseStatus(out)

	assert.Equal(t, "main", snap.Current)
	assert.Equal(t, "origin/main", snap.Tracking)
	assert.Equal(t, 2, snap.Ahead)
	assert.Equal(t, 1, snap.Behind)

	assert.Equal(t, []string{"edited.go", "both.go"}, snap.Modified)
	assert.Equal(t, []string{"removed.go", "staged_delete.go"}, snap.Deleted)
	assert.Equal(t, []string{"both.go", "added.go", "staged_delete.go", "renamed.go"}, snap.Staged)
	assert.Equal(t, []string{"new.txt"}, snap.NotAdded)
	assert.Equal(t, []string{"conflict.go"}, snap.Conflicted)

	require.Len(t, snap.Files, 8)
	renamed := snap.Files[7]
	assert.Equal(t, "renamed.go", renamed.Path)
	assert.Equal(t, "original.go", renamed.From)
	assert.Equal(t, "R", renamed.Code())
	assert.Equal(t, "M", snap.Files[0].Code())
	assert.Equal(t, "?", snap.Files[5].Code())
}

func TestParseStatus_Headers(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		current  string
		tracking string
		detached bool
	}{
		{"plain", "## main", "main", "", false},
		{"unborn", "## No commits yet on trunk", "trunk", "", false},
		{"detached", "## HEAD (no branch)", "HEAD", "", true},
		{"gone upstream", "## dev...origin/dev [gone]", "dev", "origin/dev", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := parseStatus(tt.header + "\x00")
			assert.Equal(t, tt.current, snap.Current)
			assert.Equal(t, tt.tracking, snap.Tracking)
			assert.Equal(t, tt.detached, snap.Detached)
			assert.True(t, snap.Clean())
		})
	}
}

func TestParseBranches(t *testing.T) {
	out := "*\x00refs/heads/main\x00abc1234\x00Initial commit\n" +
		" \x00refs/heads/feature/login\x00def5678\x00Add login\n" +
		" \x00refs/remotes/origin/HEAD\x00abc1234\x00Initial commit\n" +
		" \x00refs/remotes/origin/main\x00abc1234\x00Initial commit\n" +
		" \x00refs/remotes/upstream/dev\x00fff0000\x00Dev work\n"

	snap := parseBranches(out)

	assert.Equal(t, []string{"main", "feature/login", "remotes/origin/main", "remotes/upstream/dev"}, snap.All)
	assert.Equal(t, "main", snap.Current)
	assert.True(t, snap.Branches["main"].Current)
	assert.Equal(t, "def5678", snap.Branches["feature/login"].Commit)
	assert.Equal(t, "Dev work", snap.Branches["remotes/upstream/dev"].Label)
	assert.NotContains(t, snap.Branches, "remotes/origin/HEAD")
}

func TestParseLog(t *testing.T) {
	out := "* \x00" + "aaaa\x00aa\x00Merge dev\x00Ada\x001700000000\n" +
		"|\\\n" +
		"| * \x00bbbb\x00bb\x00Dev change\x00Linus\x001699990000\n"

	entries := parseLog(out)

	require.Len(t, entries, 3)
	assert.Equal(t, "* ", entries[0].Graph)
	assert.Equal(t, "aaaa", entries[0].Hash)
	assert.Equal(t, "Merge dev", entries[0].Message)
	assert.Equal(t, time.Unix(1700000000, 0), entries[0].Time)
	assert.Equal(t, LogEntry{Graph: "|\\"}, entries[1])
	assert.Equal(t, "Linus", entries[2].Author)
}

func TestParseLines(t *testing.T) {
	assert.Equal(t, []string{"origin", "upstream"}, parseLines("origin\n\n upstream \n"))
	assert.Nil(t, parseLines(""))
}

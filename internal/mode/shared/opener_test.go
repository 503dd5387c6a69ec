package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenCommand(t *testing.T) {
	name, args := openCommand("darwin", "/a.txt")
	require.Equal(t, "open", name)
	require.Equal(t, []string{"/a.txt"}, args)

	name, args = openCommand("linux", "/a.txt")
	require.Equal(t, "xdg-open", name)
	require.Equal(t, []string{"/a.txt"}, args)

	name, args = openCommand("windows", `C:\a.txt`)
	require.Equal(t, "cmd", name)
	require.Equal(t, []string{"/c", "start", "", `C:\a.txt`}, args)
}

func TestRemoteSession(t *testing.T) {
	for _, v := range []string{"SSH_TTY", "SSH_CONNECTION", "SSH_CLIENT", "TMUX", "STY"} {
		t.Setenv(v, "")
	}
	require.False(t, remoteSession())

	t.Setenv("TMUX", "/tmp/tmux-1000/default,1,0")
	require.True(t, remoteSession())
}

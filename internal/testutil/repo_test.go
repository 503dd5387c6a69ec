package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepo_Builder(t *testing.T) {
	r := NewRepo(t).
		WithFile("README.md", "hello\n").
		Commit("initial").
		Branch("feature")

	require.Equal(t, "hello\n", r.Read("README.md"))
	require.Contains(t, r.Git("branch", "--list"), "feature")
	require.Equal(t, "initial", r.Git("log", "-1", "--format=%s"))
}

func TestNewTestDB(t *testing.T) {
	db := NewTestDB(t)

	var n int
	require.NoError(t, db.QueryRow("SELECT 1").Scan(&n))
	require.Equal(t, 1, n)
}

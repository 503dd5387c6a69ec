// Package testutil builds throwaway git repositories and databases for tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireGit skips the test when no git binary is on PATH.
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// Repo is a temporary git repository with a fluent setup API.
type Repo struct {
	t   *testing.T
	Dir string
}

// NewRepo initialises an empty repository on branch main.
func NewRepo(t *testing.T) *Repo {
	t.Helper()
	RequireGit(t)

	r := &Repo{t: t, Dir: t.TempDir()}
	r.Git("init", "-q", "-b", "main")
	r.Git("config", "user.email", "test@example.com")
	r.Git("config", "user.name", "Test User")
	r.Git("config", "commit.gpgsign", "false")
	return r
}

// Git runs a git command in the repository and returns trimmed stdout.
func (r *Repo) Git(args ...string) string {
	r.t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0", "LC_ALL=C")
	out, err := cmd.CombinedOutput()
	require.NoError(r.t, err, "git %s: %s", strings.Join(args, " "), out)
	return strings.TrimSpace(string(out))
}

// WithFile writes content to path, creating parent directories.
func (r *Repo) WithFile(path, content string) *Repo {
	r.t.Helper()
	full := filepath.Join(r.Dir, path)
	require.NoError(r.t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(r.t, os.WriteFile(full, []byte(content), 0o644))
	return r
}

// Remove deletes path from the work tree.
func (r *Repo) Remove(path string) *Repo {
	r.t.Helper()
	require.NoError(r.t, os.Remove(filepath.Join(r.Dir, path)))
	return r
}

// Stage adds paths to the index.
func (r *Repo) Stage(paths ...string) *Repo {
	r.t.Helper()
	r.Git(append([]string{"add", "--"}, paths...)...)
	return r
}

// Commit stages everything and commits it.
func (r *Repo) Commit(message string) *Repo {
	r.t.Helper()
	r.Git("add", "-A")
	r.Git("commit", "-q", "--allow-empty", "-m", message)
	return r
}

// Branch creates a branch at HEAD without checking it out.
func (r *Repo) Branch(name string) *Repo {
	r.t.Helper()
	r.Git("branch", name)
	return r
}

// Checkout switches to an existing branch.
func (r *Repo) Checkout(name string) *Repo {
	r.t.Helper()
	r.Git("checkout", "-q", name)
	return r
}

// Read returns the content of path in the work tree.
func (r *Repo) Read(path string) string {
	r.t.Helper()
	b, err := os.ReadFile(filepath.Join(r.Dir, path))
	require.NoError(r.t, err)
	return string(b)
}

// Bare creates a bare repository to act as a remote and registers it under
// name.
func (r *Repo) Bare(name string) string {
	r.t.Helper()
	dir := filepath.Join(r.t.TempDir(), name+".git")
	cmd := exec.Command("git", "init", "-q", "--bare", dir)
	out, err := cmd.CombinedOutput()
	require.NoError(r.t, err, "%s", out)
	r.Git("remote", "add", name, dir)
	return dir
}

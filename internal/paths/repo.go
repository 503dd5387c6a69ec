// Package paths provides path resolution utilities.
package paths

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotRepo is returned when no enclosing work tree is found.
var ErrNotRepo = errors.New("not inside a git work tree")

// ResolveRepo turns user input into the root of the enclosing work tree.
//
// Input normalization:
//   - "" -> the current directory
//   - "~/src/app" -> "$HOME/src/app"
//   - "/path/to/repo/sub/dir" -> "/path/to/repo"
//
// A directory counts as a work tree root when it contains a .git entry,
// either the git directory itself or a worktree's "gitdir:" file.
func ResolveRepo(path string) (string, error) {
	if path == "" {
		path = "."
	}
	path = ExpandHome(path)
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	for dir := abs; ; dir = filepath.Dir(dir) {
		if _, err := os.Lstat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		if filepath.Dir(dir) == dir {
			return "", ErrNotRepo
		}
	}
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// GitDir returns the git directory of the work tree at root, following the
// "gitdir:" redirect a linked worktree keeps in place of a .git directory.
func GitDir(root string) string {
	gitPath := filepath.Join(root, ".git")

	info, err := os.Stat(gitPath)
	if err != nil || info.IsDir() {
		return gitPath
	}
	content, err := os.ReadFile(gitPath) //nolint:gosec // .git file inside the work tree
	if err != nil {
		return gitPath
	}

	target, ok := strings.CutPrefix(strings.TrimSpace(string(content)), "gitdir:")
	target = strings.TrimSpace(target)
	if !ok || target == "" {
		return gitPath
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(root, target)
	}
	return filepath.Clean(target)
}

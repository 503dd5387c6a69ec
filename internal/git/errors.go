package git

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotGitRepo indicates the directory is not inside a work tree.
	ErrNotGitRepo = errors.New("not a git repository")

	// ErrNoRemotes indicates an operation needed a remote and none is configured.
	ErrNoRemotes = errors.New("no remotes configured")

	// ErrNothingToCommit indicates commit found no staged changes.
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrEmptyName indicates a branch or commit message was blank.
	ErrEmptyName = errors.New("name must not be empty")
)

// CommandError is a failed git invocation.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	sub := "git"
	if len(e.Args) > 0 {
		sub = "git " + e.Args[0]
	}
	detail := e.Stderr
	if detail == "" && e.Err != nil {
		detail = e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", sub, detail)
}

func (e *CommandError) Unwrap() error { return e.Err }

// MergeConflictError is returned by Merge when the merge stopped on conflicts.
type MergeConflictError struct {
	Output string
	Files  []string
}

func (e *MergeConflictError) Error() string {
	return fmt.Sprintf("merge: conflicts in %d file(s)", len(e.Files))
}

// classify maps well known stderr text onto sentinel errors.
func classify(args []string, stderr string, err error) error {
	lower := strings.ToLower(stderr)
	switch {
	case strings.Contains(lower, "not a git repository"):
		return fmt.Errorf("%w: %s", ErrNotGitRepo, stderr)
	case strings.Contains(lower, "nothing to commit"), strings.Contains(lower, "no changes added to commit"):
		return fmt.Errorf("%w: %s", ErrNothingToCommit, firstLine(stderr))
	}
	return &CommandError{Args: args, Stderr: stderr, Err: err}
}

// Message is the user facing text of err: everything after the first
// "source:" segment, trimmed. Messages without a colon are returned whole.
func Message(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if _, rest, ok := strings.Cut(msg, ":"); ok {
		if rest = strings.TrimSpace(rest); rest != "" {
			return rest
		}
	}
	return strings.TrimSpace(msg)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}

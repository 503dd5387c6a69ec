package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/zjrosen/twig/internal/diff"
	"github.com/zjrosen/twig/internal/log"
)

var _ Executor = (*RealExecutor)(nil)

// RealExecutor runs the git binary inside one work tree.
type RealExecutor struct {
	workDir string
	binary  string
}

// NewRealExecutor creates an executor rooted at workDir.
func NewRealExecutor(workDir string) *RealExecutor {
	return &RealExecutor{workDir: workDir, binary: "git"}
}

// Root returns the work tree the executor runs in.
func (e *RealExecutor) Root() string { return e.workDir }

// output runs git and returns stdout untouched. Exit codes listed in allowed
// are treated as success.
func (e *RealExecutor) output(ctx context.Context, allowed []int, args ...string) (string, error) {
	cmd := e.command(ctx, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	log.Debug(log.CatGit, "git", "args", strings.Join(args, " "), "ok", err == nil)
	if err == nil {
		return stdout.String(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		for _, code := range allowed {
			if exitErr.ExitCode() == code {
				return stdout.String(), nil
			}
		}
	}

	detail := strings.TrimSpace(stderr.String())
	if detail == "" {
		detail = strings.TrimSpace(stdout.String())
	}
	return stdout.String(), classify(args, detail, err)
}

// command builds a git invocation in the work tree. GIT_OPTIONAL_LOCKS=0
// keeps status and diff from refreshing .git/index, a write the watcher
// would report as a change.
func (e *RealExecutor) command(ctx context.Context, args ...string) *exec.Cmd {
	//nolint:gosec // G204: args are built by this package
	cmd := exec.CommandContext(ctx, e.binary, args...)
	cmd.Dir = e.workDir
	cmd.Env = append(cmd.Environ(), "GIT_TERMINAL_PROMPT=0", "GIT_OPTIONAL_LOCKS=0", "LC_ALL=C")
	return cmd
}

func (e *RealExecutor) run(ctx context.Context, args ...string) error {
	_, err := e.output(ctx, nil, args...)
	return err
}

// Status reads the porcelain status and the patches of every changed file.
func (e *RealExecutor) Status(ctx context.Context) (*StatusSnapshot, error) {
	out, err := e.output(ctx, nil, "status", "--porcelain=v1", "--branch", "-z", "--untracked-files=all")
	if err != nil {
		return nil, fmt.Errorf("failed to read status: %w", err)
	}
	snap := parseStatus(out)

	tracked, err := e.trackedPatches(ctx)
	if err != nil {
		return nil, err
	}
	snap.Diffs.Tracked = tracked

	for _, path := range snap.NotAdded {
		patches, err := e.untrackedPatch(ctx, path)
		if err != nil {
			log.Warn(log.CatGit, "Skipping untracked diff", "path", path, "error", err)
			continue
		}
		snap.Diffs.Untracked = append(snap.Diffs.Untracked, patches...)
	}
	return snap, nil
}

// trackedPatches diffs the index and work tree against HEAD. Before the
// first commit there is no HEAD, so the staged and unstaged diffs are
// concatenated instead.
func (e *RealExecutor) trackedPatches(ctx context.Context) ([]diff.Patch, error) {
	text, err := e.output(ctx, nil, "diff", "HEAD", "-M", "--no-color", "--no-ext-diff")
	if err != nil {
		staged, serr := e.output(ctx, nil, "diff", "--cached", "-M", "--no-color", "--no-ext-diff")
		if serr != nil {
			return nil, fmt.Errorf("failed to diff work tree: %w", serr)
		}
		unstaged, uerr := e.output(ctx, nil, "diff", "-M", "--no-color", "--no-ext-diff")
		if uerr != nil {
			return nil, fmt.Errorf("failed to diff work tree: %w", uerr)
		}
		text = staged + unstaged
	}
	return ParsePatches(text)
}

func (e *RealExecutor) untrackedPatch(ctx context.Context, path string) ([]diff.Patch, error) {
	text, err := e.output(ctx, []int{1}, "diff", "--no-index", "--no-color", "--", devNull, path)
	if err != nil {
		return nil, err
	}
	return ParsePatches(text)
}

// Branches lists local branches followed by remote-tracking branches.
func (e *RealExecutor) Branches(ctx context.Context) (*BranchSnapshot, error) {
	out, err := e.output(ctx, nil, "for-each-ref", "--format="+branchFormat, "refs/heads", "refs/remotes")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return parseBranches(out), nil
}

// Log returns up to limit commits of every ref, drawn as a graph. An empty
// repository has no log and returns nothing.
func (e *RealExecutor) Log(ctx context.Context, limit int) ([]LogEntry, error) {
	args := []string{"log", "--graph", "--all", "--date-order", "--no-color", "--format=" + logFormat}
	if limit > 0 {
		args = append(args, "-n", strconv.Itoa(limit))
	}
	out, err := e.output(ctx, nil, args...)
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) && strings.Contains(cmdErr.Stderr, "does not have any commits") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read log: %w", err)
	}
	return parseLog(out), nil
}

// Remotes returns the configured remote names.
func (e *RealExecutor) Remotes(ctx context.Context) ([]string, error) {
	out, err := e.output(ctx, nil, "remote")
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	return parseLines(out), nil
}

func (e *RealExecutor) Checkout(ctx context.Context, name string) error {
	return e.run(ctx, "checkout", name)
}

// CreateBranch creates name off from (HEAD when from is empty) and checks it out.
func (e *RealExecutor) CreateBranch(ctx context.Context, name, from string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	args := []string{"checkout", "-b", name}
	if from != "" {
		args = append(args, from)
	}
	return e.run(ctx, args...)
}

// CreateRemoteTrackingBranch creates name locally and publishes it to remote
// with upstream tracking.
func (e *RealExecutor) CreateRemoteTrackingBranch(ctx context.Context, remote, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if remote == "" {
		return ErrNoRemotes
	}
	if err := e.run(ctx, "checkout", "-b", name); err != nil {
		return err
	}
	return e.run(ctx, "push", "--set-upstream", remote, name)
}

func (e *RealExecutor) DeleteBranch(ctx context.Context, name string) error {
	return e.run(ctx, "branch", "-d", name)
}

// DeleteRemoteTrackingBranch removes the local remote-tracking ref
// remote/name. The branch on the remote itself is left alone.
func (e *RealExecutor) DeleteRemoteTrackingBranch(ctx context.Context, remote, name string) error {
	return e.run(ctx, "branch", "-d", "-r", remote+"/"+name)
}

// Merge merges from into into, checking into out first when needed. A merge
// that stops on conflicts returns *MergeConflictError.
func (e *RealExecutor) Merge(ctx context.Context, from, into string) error {
	if into != "" {
		current, err := e.output(ctx, nil, "rev-parse", "--abbrev-ref", "HEAD")
		if err != nil {
			return err
		}
		if strings.TrimSpace(current) != into {
			if err := e.run(ctx, "checkout", into); err != nil {
				return err
			}
		}
	}

	out, err := e.output(ctx, nil, "merge", "--no-edit", from)
	if err == nil {
		return nil
	}

	conflicts, cerr := e.output(ctx, nil, "diff", "--name-only", "--diff-filter=U")
	if cerr == nil {
		if files := parseLines(conflicts); len(files) > 0 {
			return &MergeConflictError{Output: strings.TrimSpace(out), Files: files}
		}
	}
	return err
}

func (e *RealExecutor) Pull(ctx context.Context, remote, branch string) error {
	if remote == "" {
		return ErrNoRemotes
	}
	return e.run(ctx, "pull", "--no-edit", remote, branch)
}

func (e *RealExecutor) Push(ctx context.Context, remote, branch string) error {
	if remote == "" {
		return ErrNoRemotes
	}
	return e.run(ctx, "push", remote, branch)
}

func (e *RealExecutor) Fetch(ctx context.Context) error {
	return e.run(ctx, "fetch", "--all", "--prune")
}

func (e *RealExecutor) Stage(ctx context.Context, path string) error {
	return e.run(ctx, "add", "--", path)
}

// Unstage removes path from the index. Before the first commit there is no
// HEAD to reset to, so the path is dropped from the index instead.
func (e *RealExecutor) Unstage(ctx context.Context, path string) error {
	if e.hasHead(ctx) {
		return e.run(ctx, "reset", "-q", "HEAD", "--", path)
	}
	return e.run(ctx, "rm", "--cached", "-q", "--", path)
}

// Discard throws away work tree changes to path. Untracked files are deleted.
func (e *RealExecutor) Discard(ctx context.Context, path string) error {
	if err := e.run(ctx, "ls-files", "--error-unmatch", "--", path); err != nil {
		return e.run(ctx, "clean", "-f", "--", path)
	}
	return e.run(ctx, "checkout", "--", path)
}

// DiscardAll throws away unstaged changes to tracked files.
func (e *RealExecutor) DiscardAll(ctx context.Context) error {
	return e.run(ctx, "checkout", "--", ".")
}

func (e *RealExecutor) StageAll(ctx context.Context) error {
	return e.run(ctx, "add", "-u")
}

func (e *RealExecutor) StageAllIncludingUntracked(ctx context.Context) error {
	return e.run(ctx, "add", "-A")
}

func (e *RealExecutor) UnstageAll(ctx context.Context) error {
	if e.hasHead(ctx) {
		return e.run(ctx, "reset", "-q")
	}
	return e.run(ctx, "rm", "-r", "--cached", "-q", ".")
}

func (e *RealExecutor) Commit(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyName
	}
	return e.run(ctx, "commit", "-m", message)
}

func (e *RealExecutor) CommitIncludingUnstaged(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyName
	}
	return e.run(ctx, "commit", "-a", "-m", message)
}

func (e *RealExecutor) hasHead(ctx context.Context) bool {
	return e.run(ctx, "rev-parse", "--verify", "-q", "HEAD") == nil
}

// IsRepo reports whether dir is inside a git work tree.
func IsRepo(ctx context.Context, dir string) bool {
	out, err := NewRealExecutor(dir).output(ctx, nil, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

// TopLevel returns the root of the work tree containing dir.
func TopLevel(ctx context.Context, dir string) (string, error) {
	out, err := NewRealExecutor(dir).output(ctx, nil, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

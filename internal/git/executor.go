// Package git runs the git executable on behalf of the views and turns its
// output into snapshots.
package git

import (
	"context"
	"time"

	"github.com/zjrosen/twig/internal/diff"
)

// BranchInfo describes one ref in a BranchSnapshot.
type BranchInfo struct {
	Name    string // "main", or "remotes/origin/main" for remote refs
	Current bool
	Commit  string // abbreviated object name
	Label   string // subject of the tip commit
}

// BranchSnapshot lists every branch in enumeration order with per-name details.
type BranchSnapshot struct {
	All      []string
	Branches map[string]BranchInfo
	Current  string
}

// FileStatus is one porcelain entry. Index and WorkingDir are the two status
// columns ('M', 'A', 'D', 'R', 'C', 'U', '?' or ' ').
type FileStatus struct {
	Path       string
	From       string // original path of a rename or copy
	Index      byte
	WorkingDir byte
}

// Code is the status shown for the file: the index column unless it is
// blank, otherwise the working tree column.
func (f FileStatus) Code() string {
	if f.Index != ' ' {
		return string(f.Index)
	}
	return string(f.WorkingDir)
}

// StatusSnapshot is the working tree state of a repository.
type StatusSnapshot struct {
	Current  string
	Tracking string
	Detached bool
	Ahead    int
	Behind   int

	Files      []FileStatus
	Modified   []string
	Deleted    []string
	Staged     []string
	NotAdded   []string
	Conflicted []string

	Diffs diff.Set
}

// Clean reports whether nothing in the tree differs from HEAD.
func (s *StatusSnapshot) Clean() bool {
	return s == nil || len(s.Files) == 0
}

// LogEntry is one row of `git log --graph`. Rows that only continue the graph
// have an empty Hash.
type LogEntry struct {
	Graph     string
	Hash      string
	ShortHash string
	Message   string
	Author    string
	Time      time.Time
}

// Executor is everything twig asks of git. Mutations return only an error;
// callers refetch the snapshots they display.
type Executor interface {
	Root() string

	Status(ctx context.Context) (*StatusSnapshot, error)
	Branches(ctx context.Context) (*BranchSnapshot, error)
	Log(ctx context.Context, limit int) ([]LogEntry, error)
	Remotes(ctx context.Context) ([]string, error)

	Checkout(ctx context.Context, name string) error
	CreateBranch(ctx context.Context, name, from string) error
	CreateRemoteTrackingBranch(ctx context.Context, remote, name string) error
	DeleteBranch(ctx context.Context, name string) error
	DeleteRemoteTrackingBranch(ctx context.Context, remote, name string) error
	Merge(ctx context.Context, from, into string) error
	Pull(ctx context.Context, remote, branch string) error
	Push(ctx context.Context, remote, branch string) error
	Fetch(ctx context.Context) error

	Stage(ctx context.Context, path string) error
	Unstage(ctx context.Context, path string) error
	Discard(ctx context.Context, path string) error
	DiscardAll(ctx context.Context) error
	StageAll(ctx context.Context) error
	StageAllIncludingUntracked(ctx context.Context) error
	UnstageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	CommitIncludingUnstaged(ctx context.Context, message string) error
}

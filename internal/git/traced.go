package git

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ Executor = (*TracedExecutor)(nil)

// TracedExecutor records a span named "git.<operation>" around every call of
// the wrapped executor.
type TracedExecutor struct {
	next   Executor
	tracer trace.Tracer
}

// NewTracedExecutor wraps next. A nil tracer returns next unchanged.
func NewTracedExecutor(next Executor, tracer trace.Tracer) Executor {
	if tracer == nil {
		return next
	}
	return &TracedExecutor{next: next, tracer: tracer}
}

func (t *TracedExecutor) span(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("git.repo", t.next.Root()))
	return t.tracer.Start(ctx, "git."+op, trace.WithAttributes(attrs...))
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

func (t *TracedExecutor) Root() string { return t.next.Root() }

func (t *TracedExecutor) Status(ctx context.Context) (*StatusSnapshot, error) {
	ctx, span := t.span(ctx, "status")
	snap, err := t.next.Status(ctx)
	if snap != nil {
		span.SetAttributes(attribute.Int("git.files", len(snap.Files)))
	}
	finish(span, err)
	return snap, err
}

func (t *TracedExecutor) Branches(ctx context.Context) (*BranchSnapshot, error) {
	ctx, span := t.span(ctx, "branches")
	snap, err := t.next.Branches(ctx)
	if snap != nil {
		span.SetAttributes(attribute.Int("git.branches", len(snap.All)))
	}
	finish(span, err)
	return snap, err
}

func (t *TracedExecutor) Log(ctx context.Context, limit int) ([]LogEntry, error) {
	ctx, span := t.span(ctx, "log", attribute.Int("git.limit", limit))
	entries, err := t.next.Log(ctx, limit)
	finish(span, err)
	return entries, err
}

func (t *TracedExecutor) Remotes(ctx context.Context) ([]string, error) {
	ctx, span := t.span(ctx, "remotes")
	remotes, err := t.next.Remotes(ctx)
	finish(span, err)
	return remotes, err
}

func (t *TracedExecutor) Checkout(ctx context.Context, name string) error {
	ctx, span := t.span(ctx, "checkout", attribute.String("git.branch", name))
	err := t.next.Checkout(ctx, name)
	finish(span, err)
	return err
}

func (t *TracedExecutor) CreateBranch(ctx context.Context, name, from string) error {
	ctx, span := t.span(ctx, "create_branch", attribute.String("git.branch", name), attribute.String("git.from", from))
	err := t.next.CreateBranch(ctx, name, from)
	finish(span, err)
	return err
}

func (t *TracedExecutor) CreateRemoteTrackingBranch(ctx context.Context, remote, name string) error {
	ctx, span := t.span(ctx, "create_remote_tracking_branch", attribute.String("git.remote", remote), attribute.String("git.branch", name))
	err := t.next.CreateRemoteTrackingBranch(ctx, remote, name)
	finish(span, err)
	return err
}

func (t *TracedExecutor) DeleteBranch(ctx context.Context, name string) error {
	ctx, span := t.span(ctx, "delete_branch", attribute.String("git.branch", name))
	err := t.next.DeleteBranch(ctx, name)
	finish(span, err)
	return err
}

func (t *TracedExecutor) DeleteRemoteTrackingBranch(ctx context.Context, remote, name string) error {
	ctx, span := t.span(ctx, "delete_remote_tracking_branch", attribute.String("git.remote", remote), attribute.String("git.branch", name))
	err := t.next.DeleteRemoteTrackingBranch(ctx, remote, name)
	finish(span, err)
	return err
}

func (t *TracedExecutor) Merge(ctx context.Context, from, into string) error {
	ctx, span := t.span(ctx, "merge", attribute.String("git.from", from), attribute.String("git.into", into))
	err := t.next.Merge(ctx, from, into)
	finish(span, err)
	return err
}

func (t *TracedExecutor) Pull(ctx context.Context, remote, branch string) error {
	ctx, span := t.span(ctx, "pull", attribute.String("git.remote", remote), attribute.String("git.branch", branch))
	err := t.next.Pull(ctx, remote, branch)
	finish(span, err)
	return err
}

func (t *TracedExecutor) Push(ctx context.Context, remote, branch string) error {
	ctx, span := t.span(ctx, "push", attribute.String("git.remote", remote), attribute.String("git.branch", branch))
	err := t.next.Push(ctx, remote, branch)
	finish(span, err)
	return err
}

func (t *TracedExecutor) Fetch(ctx context.Context) error {
	ctx, span := t.span(ctx, "fetch")
	err := t.next.Fetch(ctx)
	finish(span, err)
	return err
}

func (t *TracedExecutor) Stage(ctx context.Context, path string) error {
	ctx, span := t.span(ctx, "stage", attribute.String("git.path", path))
	err := t.next.Stage(ctx, path)
	finish(span, err)
	return err
}

func (t *TracedExecutor) Unstage(ctx context.Context, path string) error {
	ctx, span := t.span(ctx, "unstage", attribute.String("git.path", path))
	err := t.next.Unstage(ctx, path)
	finish(span, err)
	return err
}

func (t *TracedExecutor) Discard(ctx context.Context, path string) error {
	ctx, span := t.span(ctx, "discard", attribute.String("git.path", path))
	err := t.next.Discard(ctx, path)
	finish(span, err)
	return err
}

func (t *TracedExecutor) DiscardAll(ctx context.Context) error {
	ctx, span := t.span(ctx, "discard_all")
	err := t.next.DiscardAll(ctx)
	finish(span, err)
	return err
}

func (t *TracedExecutor) StageAll(ctx context.Context) error {
	ctx, span := t.span(ctx, "stage_all")
	err := t.next.StageAll(ctx)
	finish(span, err)
	return err
}

func (t *TracedExecutor) StageAllIncludingUntracked(ctx context.Context) error {
	ctx, span := t.span(ctx, "stage_all_including_untracked")
	err := t.next.StageAllIncludingUntracked(ctx)
	finish(span, err)
	return err
}

func (t *TracedExecutor) UnstageAll(ctx context.Context) error {
	ctx, span := t.span(ctx, "unstage_all")
	err := t.next.UnstageAll(ctx)
	finish(span, err)
	return err
}

func (t *TracedExecutor) Commit(ctx context.Context, message string) error {
	ctx, span := t.span(ctx, "commit")
	err := t.next.Commit(ctx, message)
	finish(span, err)
	return err
}

func (t *TracedExecutor) CommitIncludingUnstaged(ctx context.Context, message string) error {
	ctx, span := t.span(ctx, "commit_including_unstaged")
	err := t.next.CommitIncludingUnstaged(ctx, message)
	finish(span, err)
	return err
}

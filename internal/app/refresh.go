package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/zjrosen/twig/internal/git"
	"github.com/zjrosen/twig/internal/log"
	"github.com/zjrosen/twig/internal/mode"
)

// refreshedMsg carries a snapshot loaded for root. Results for a root that
// is no longer open are dropped.
type refreshedMsg struct {
	root string
	snap mode.SnapshotMsg
	err  error
}

// refreshCmd loads status, branches and the log concurrently. The log goes
// through the cache, so an unchanged repository costs no `git log`.
func refreshCmd(exec git.Executor, cache *mode.LogCache, limit int) tea.Cmd {
	root := exec.Root()
	return func() tea.Msg {
		var snap mode.SnapshotMsg
		g, ctx := errgroup.WithContext(context.Background())
		g.Go(func() error {
			s, err := exec.Status(ctx)
			snap.Status = s
			return err
		})
		g.Go(func() error {
			b, err := exec.Branches(ctx)
			snap.Branches = b
			return err
		})
		g.Go(func() error {
			entries, err := cache.Get(ctx, root, limit)
			snap.Log = entries
			return err
		})
		if err := g.Wait(); err != nil {
			log.ErrorErr(log.CatGit, "Refresh failed", err, "root", root)
			return refreshedMsg{root: root, err: err}
		}
		snap.HasLog = true
		return refreshedMsg{root: root, snap: snap}
	}
}

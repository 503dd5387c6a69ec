package status

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/twig/internal/dispatch"
	"github.com/zjrosen/twig/internal/log"
	"github.com/zjrosen/twig/internal/mode"
	"github.com/zjrosen/twig/internal/ui/diffpanel"
	"github.com/zjrosen/twig/internal/ui/modal"
)

func (m Model) handleKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	if m.Modals.Is(mode.DiffModal()) {
		var res diffpanel.Result
		m.diff, res = m.diff.Update(msg)
		if res.Closed {
			m.CloseModal(mode.DiffModal())
		}
		return m, nil
	}
	if !m.Modals.Navigating() {
		res, cmd := m.UpdateModal(msg)
		if res.Done {
			return m.handleModalResult(res)
		}
		return m, cmd
	}

	act := m.Resolve(msg, commands, "Status")
	switch act.Kind {
	case dispatch.Run:
		return m.run(act.Command)
	case dispatch.Exit:
		return m, m.Exit()
	}
	return m, nil
}

func (m Model) handleModalResult(res mode.ModalResult) (mode.Controller, tea.Cmd) {
	if !res.Submitted {
		m.pending = ""
		return m, nil
	}
	switch res.Modal {
	case mode.MenuModal():
		return m.run(res.Command)
	case mode.DialogModal(mode.PurposeCommit):
		message := res.Value
		return m, m.operation("commit", func(ctx context.Context) error {
			return m.services.Git.Commit(ctx, message)
		})
	case mode.DialogModal(mode.PurposeCommitUnstaged):
		message := res.Value
		return m, m.operation("commit all", func(ctx context.Context) error {
			return m.services.Git.CommitIncludingUnstaged(ctx, message)
		})
	case mode.ConfirmModal(mode.PurposeDiscardFile):
		path := m.pending
		m.pending = ""
		return m, m.operation("discard "+path, func(ctx context.Context) error {
			return m.services.Git.Discard(ctx, path)
		})
	case mode.ConfirmModal(mode.PurposeDiscardAll):
		return m, m.operation("discard all", m.services.Git.DiscardAll)
	}
	return m, nil
}

// run executes a status command. Commands that need a file only reach here
// with one selected.
func (m Model) run(id string) (mode.Controller, tea.Cmd) {
	r, selected := m.Selected()
	path := r.Name
	exec := m.services.Git
	log.Debug(log.CatMode, "status command", "cmd", id, "path", path)

	switch id {
	case cmdStage:
		if selected {
			return m, m.operation("stage "+path, func(ctx context.Context) error { return exec.Stage(ctx, path) })
		}
	case cmdUnstage:
		if selected {
			return m, m.operation("unstage "+path, func(ctx context.Context) error { return exec.Unstage(ctx, path) })
		}
	case cmdDiscard:
		if selected && m.OpenConfirm(mode.PurposeDiscardFile, modal.Config{
			Title:   "Discard changes?",
			Message: fmt.Sprintf("Changes to %s will be lost.", path),
			Danger:  true,
		}) {
			m.pending = path
		}
	case cmdViewDiff:
		if selected && m.OpenDiff() {
			name, p, found := m.patchFor()
			m.diff = m.diff.SetSize(m.diffWidth(), m.listHeight()).Open(name, p, found)
		}
	case cmdOpen:
		if selected {
			return m, m.openFile(path)
		}
	case cmdYank:
		if selected {
			return m, m.yank(path)
		}
	case cmdStageAll:
		return m, m.operation("stage all", exec.StageAll)
	case cmdStageAllAndUntracked:
		return m, m.operation("stage all", exec.StageAllIncludingUntracked)
	case cmdUnstageAll:
		return m, m.operation("unstage all", exec.UnstageAll)
	case cmdCommit:
		return m, m.OpenDialog(mode.PurposeCommit, modal.Config{
			Title:       "Commit staged changes",
			Placeholder: "commit message",
		})
	case cmdCommitAll:
		return m, m.OpenDialog(mode.PurposeCommitUnstaged, modal.Config{
			Title:       "Commit all tracked changes",
			Placeholder: "commit message",
		})
	case cmdDiscardAll:
		m.OpenConfirm(mode.PurposeDiscardAll, modal.Config{
			Title:   "Discard all changes?",
			Message: "Every unstaged change to a tracked file will be lost.",
			Danger:  true,
		})
	}
	return m, nil
}

func (m Model) operation(label string, fn func(context.Context) error) tea.Cmd {
	return mode.RunOperation(mode.Operation{
		Label: label,
		Run:   func() error { return fn(context.Background()) },
	})
}

func (m Model) openFile(path string) tea.Cmd {
	opener := m.services.Opener
	full := filepath.Join(m.services.Git.Root(), path)
	return func() tea.Msg {
		if err := opener.Open(context.Background(), full); err != nil {
			log.ErrorErr(log.CatMode, "open file", err, "path", full)
			return mode.ShowToastMsg{Message: fmt.Sprintf("could not open %s: %v", path, err)}
		}
		return nil
	}
}

func (m Model) yank(path string) tea.Cmd {
	clip := m.services.Clipboard
	return func() tea.Msg {
		if err := clip.Copy(path); err != nil {
			return mode.ShowToastMsg{Message: "copy failed: " + err.Error()}
		}
		return mode.ShowToastMsg{Message: "copied " + path, Info: true}
	}
}

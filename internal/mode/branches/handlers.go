package branches

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/twig/internal/dispatch"
	"github.com/zjrosen/twig/internal/git"
	"github.com/zjrosen/twig/internal/log"
	"github.com/zjrosen/twig/internal/mode"
	"github.com/zjrosen/twig/internal/ui/modal"
	"github.com/zjrosen/twig/internal/ui/picker"
)

func (m Model) handleKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	if !m.Modals.Navigating() {
		res, cmd := m.UpdateModal(msg)
		if res.Done {
			return m.handleModalResult(res)
		}
		return m, cmd
	}

	act := m.Resolve(msg, commands, "Branches")
	switch act.Kind {
	case dispatch.Run:
		return m.run(act.Command)
	case dispatch.Exit:
		return m, m.Exit()
	}
	return m, nil
}

func (m Model) run(id string) (mode.Controller, tea.Cmd) {
	exec := m.services.Git
	if id == cmdFetch {
		return m, mode.RunOperation(mode.Operation{
			Label:  "fetch",
			Long:   true,
			Notify: true,
			Run:    func() error { return exec.Fetch(context.Background()) },
		})
	}

	r, ok := m.Selected()
	if !ok {
		return m, nil
	}
	log.Debug(log.CatMode, "branch command", "cmd", id, "branch", r.Name, "remote", r.Remote)

	switch id {
	case cmdCheckout:
		// A remote record checks out by its short name: git switches to the
		// local branch of that name, or creates one tracking the remote.
		name := r.Name
		return m, mode.RunOperation(mode.Operation{
			Label:    "checkout " + name,
			ToOutput: true,
			Run:      func() error { return exec.Checkout(context.Background(), name) },
		})
	case cmdNewBranch:
		return m, m.OpenDialog(mode.PurposeNewBranch, modal.Config{
			Title:       "New branch",
			Message:     "Branches off " + r.Ref,
			Placeholder: "branch name",
		})
	case cmdNewRemoteBranch:
		return m, m.OpenDialog(mode.PurposeNewRemoteBranch, modal.Config{
			Title:       "New remote-tracking branch",
			Message:     "Created from HEAD and pushed to a remote",
			Placeholder: "branch name",
		})
	case cmdDelete:
		if r.Remote != "" {
			remote, name := r.Remote, r.Name
			return m, mode.RunOperation(mode.Operation{
				Label: "delete " + remote + "/" + name,
				Run: func() error {
					return exec.DeleteRemoteTrackingBranch(context.Background(), remote, name)
				},
			})
		}
		name := r.Name
		return m, mode.RunOperation(mode.Operation{
			Label: "delete " + name,
			Run:   func() error { return exec.DeleteBranch(context.Background(), name) },
		})
	case cmdPull, cmdPush:
		return m, m.listRemotes(remoteAction{command: id, branch: r.Name})
	case cmdMerge:
		from, into := r.Ref, m.current()
		return m, mode.RunOperation(mode.Operation{
			Label:    fmt.Sprintf("merge %s into %s", from, into),
			Long:     true,
			ToOutput: true,
			Run:      func() error { return exec.Merge(context.Background(), from, into) },
		})
	}
	return m, nil
}

// listRemotes loads the remotes in the background before the select opens.
func (m Model) listRemotes(action remoteAction) tea.Cmd {
	exec := m.services.Git
	return func() tea.Msg {
		remotes, err := exec.Remotes(context.Background())
		return remotesMsg{action: action, remotes: remotes, err: err}
	}
}

func (m Model) handleRemotes(msg remotesMsg) (mode.Controller, tea.Cmd) {
	if msg.err != nil {
		return m, mode.ToastCmd(git.Message(msg.err))
	}
	if len(msg.remotes) == 0 {
		return m, mode.ToastCmd(git.ErrNoRemotes.Error())
	}

	opts := make([]picker.Option, len(msg.remotes))
	for i, r := range msg.remotes {
		opts[i] = picker.Option{Label: r, Value: r}
	}
	if m.OpenSelect(mode.PurposeRemoteSelect, "Select remote", opts) {
		m.pending = msg.action
	}
	return m, nil
}

func (m Model) handleModalResult(res mode.ModalResult) (mode.Controller, tea.Cmd) {
	if !res.Submitted {
		m.pending = remoteAction{}
		return m, nil
	}
	exec := m.services.Git

	switch res.Modal {
	case mode.MenuModal():
		return m.run(res.Command)
	case mode.DialogModal(mode.PurposeNewBranch):
		from := ""
		if r, ok := m.Selected(); ok {
			from = r.Ref
		}
		name := res.Value
		return m, mode.RunOperation(mode.Operation{
			Label: "new branch " + name,
			Run:   func() error { return exec.CreateBranch(context.Background(), name, from) },
		})
	case mode.DialogModal(mode.PurposeNewRemoteBranch):
		return m, m.listRemotes(remoteAction{command: cmdNewRemoteBranch, name: res.Value})
	case mode.SelectModal(mode.PurposeRemoteSelect):
		action := m.pending
		m.pending = remoteAction{}
		return m, remoteOperation(exec, action, res.Value)
	}
	return m, nil
}

func remoteOperation(exec git.Executor, action remoteAction, remote string) tea.Cmd {
	switch action.command {
	case cmdPull:
		return mode.RunOperation(mode.Operation{
			Label:    fmt.Sprintf("pull %s/%s", remote, action.branch),
			Long:     true,
			ToOutput: true,
			Notify:   true,
			Run:      func() error { return exec.Pull(context.Background(), remote, action.branch) },
		})
	case cmdPush:
		return mode.RunOperation(mode.Operation{
			Label:    fmt.Sprintf("push %s/%s", remote, action.branch),
			Long:     true,
			ToOutput: true,
			Notify:   true,
			Run:      func() error { return exec.Push(context.Background(), remote, action.branch) },
		})
	case cmdNewRemoteBranch:
		return mode.RunOperation(mode.Operation{
			Label: fmt.Sprintf("new branch %s on %s", action.name, remote),
			Long:  true,
			Run:   func() error { return exec.CreateRemoteTrackingBranch(context.Background(), remote, action.name) },
		})
	}
	return nil
}

// Package branches implements the branch view: local and remote branches
// grouped by remote, with checkout, create, delete, merge and sync commands.
package branches

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/twig/internal/dispatch"
	"github.com/zjrosen/twig/internal/git"
	"github.com/zjrosen/twig/internal/keys"
	"github.com/zjrosen/twig/internal/mode"
	"github.com/zjrosen/twig/internal/mode/shared"
	"github.com/zjrosen/twig/internal/records"
	"github.com/zjrosen/twig/internal/ui/styles"
)

const (
	cmdCheckout        = "checkout"
	cmdNewBranch       = "new-branch"
	cmdNewRemoteBranch = "new-remote-branch"
	cmdDelete          = "delete"
	cmdPull            = "pull"
	cmdPush            = "push"
	cmdMerge           = "merge"
	cmdFetch           = "fetch"
)

var commands = dispatch.Table{
	{ID: cmdCheckout, Binding: keys.Branches.Checkout, NeedsSelection: true},
	{ID: cmdNewBranch, Binding: keys.Branches.NewBranch, NeedsSelection: true},
	{ID: cmdNewRemoteBranch, Binding: keys.Branches.NewRemoteBranch, NeedsSelection: true},
	{ID: cmdDelete, Binding: keys.Branches.Delete, NeedsSelection: true},
	{ID: cmdPull, Binding: keys.Branches.Pull, NeedsSelection: true},
	{ID: cmdPush, Binding: keys.Branches.Push, NeedsSelection: true},
	{ID: cmdMerge, Binding: keys.Branches.Merge, NeedsSelection: true},
	{ID: cmdFetch, Binding: keys.Branches.Fetch},
}

// Commands returns the branch view's command table.
func Commands() dispatch.Table { return commands }

// commitWidth is the column the abbreviated tip hash is padded to.
const commitWidth = 8

// remoteAction is what to do once the user picked a remote.
type remoteAction struct {
	command string
	branch  string // branch to pull or push
	name    string // new branch name for cmdNewRemoteBranch
}

// remotesMsg carries the remotes listed for a pending remote action.
type remotesMsg struct {
	action  remoteAction
	remotes []string
	err     error
}

// Model is the branch view controller.
type Model struct {
	mode.Base

	services mode.Services
	snap     *git.BranchSnapshot
	list     shared.List

	pending remoteAction
}

var _ mode.Controller = Model{}

// New creates the branch view.
func New(services mode.Services) Model {
	return Model{
		services: services,
		list:     shared.List{Prefix: "branches", Row: row},
	}
}

func row(r records.Record, _ bool, width int) string {
	commit := styles.MutedStyle.Render(runewidth.FillRight(r.Commit, commitWidth))
	name := r.Name
	if r.Current {
		name = styles.CurrentBranchStyle.Render("* " + name)
	}
	line := commit + " " + name
	if r.Label != "" {
		line += "  " + styles.MutedStyle.Render(r.Label)
	}
	return styles.Truncate(line, width)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Navigating() bool { return m.Modals.Navigating() }

func (m Model) SetSize(width, height int) mode.Controller {
	m.Base.SetSize(width, height)
	return m
}

// current is the checked out branch name.
func (m Model) current() string {
	if m.snap == nil {
		return ""
	}
	return m.snap.Current
}

func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case mode.SnapshotMsg:
		if msg.Branches != nil {
			m.snap = msg.Branches
			m.SetRecords(records.FromBranches(msg.Branches))
		}
		return m, nil
	case remotesMsg:
		return m.handleRemotes(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.Click(msg, m.list) {
			return m, nil
		}
	}
	if !m.Modals.Navigating() {
		res, cmd := m.UpdateModal(msg)
		if res.Done {
			return m.handleModalResult(res)
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	height := m.Height
	showHelp := m.services.Config.UI.ShowHelpBar
	if showHelp {
		height = max(height-1, 1)
	}
	list := m.list.Render(m.Records, m.Selection, m.Width, height)
	body := lipgloss.NewStyle().Width(m.Width).Height(height).Render(list)
	if showHelp {
		body += "\n" + mode.HelpBar(m.Width, keys.Nav.Menu, keys.Branches.Checkout,
			keys.Branches.NewBranch, keys.Branches.Pull, keys.Branches.Push, keys.Branches.Merge, keys.Nav.Exit)
	}
	return m.Overlay(body)
}

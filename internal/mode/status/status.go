// Package status implements the working tree view: changed files grouped by
// state, staging and commit commands, and the diff panel.
package status

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/twig/internal/diff"
	"github.com/zjrosen/twig/internal/dispatch"
	"github.com/zjrosen/twig/internal/git"
	"github.com/zjrosen/twig/internal/keys"
	"github.com/zjrosen/twig/internal/mode"
	"github.com/zjrosen/twig/internal/mode/shared"
	"github.com/zjrosen/twig/internal/records"
	"github.com/zjrosen/twig/internal/ui/diffpanel"
	"github.com/zjrosen/twig/internal/ui/styles"
)

// Command ids of the status view.
const (
	cmdStage                = "stage"
	cmdUnstage              = "unstage"
	cmdDiscard              = "discard"
	cmdViewDiff             = "view-diff"
	cmdOpen                 = "open"
	cmdYank                 = "yank"
	cmdStageAll             = "stage-all"
	cmdStageAllAndUntracked = "stage-all-untracked"
	cmdUnstageAll           = "unstage-all"
	cmdCommit               = "commit"
	cmdCommitAll            = "commit-all"
	cmdDiscardAll           = "discard-all"
)

// commands lists file commands first; they need a selected file. The rest
// act on the whole tree.
var commands = dispatch.Table{
	{ID: cmdStage, Binding: keys.Status.Stage, NeedsSelection: true},
	{ID: cmdUnstage, Binding: keys.Status.Unstage, NeedsSelection: true},
	{ID: cmdDiscard, Binding: keys.Status.Discard, NeedsSelection: true},
	{ID: cmdViewDiff, Binding: keys.Status.ViewDiff, NeedsSelection: true},
	{ID: cmdOpen, Binding: keys.Status.Open, NeedsSelection: true},
	{ID: cmdYank, Binding: keys.Status.Yank, NeedsSelection: true},
	{ID: cmdStageAll, Binding: keys.Status.StageAll},
	{ID: cmdStageAllAndUntracked, Binding: keys.Status.StageAllAndUntracked},
	{ID: cmdUnstageAll, Binding: keys.Status.UnstageAll},
	{ID: cmdCommit, Binding: keys.Status.Commit},
	{ID: cmdCommitAll, Binding: keys.Status.CommitAll},
	{ID: cmdDiscardAll, Binding: keys.Status.DiscardAll},
}

// Commands returns the status view's command table.
func Commands() dispatch.Table { return commands }

// Model is the status view controller.
type Model struct {
	mode.Base

	services mode.Services
	snap     *git.StatusSnapshot
	list     shared.List
	diff     diffpanel.Model

	// pending is the path a discard confirm is asking about.
	pending string
}

var _ mode.Controller = Model{}

// New creates the status view.
func New(services mode.Services) Model {
	return Model{
		services: services,
		list:     shared.List{Prefix: "status", Row: row},
		diff:     diffpanel.New(),
	}
}

func row(r records.Record, _ bool, _ int) string {
	code := r.Status
	if code == "" {
		code = " "
	}
	return styles.MutedStyle.Render(code) + " " + r.Name
}

func (m Model) Init() tea.Cmd { return nil }

// Navigating reports whether no modal is open.
func (m Model) Navigating() bool { return m.Modals.Navigating() }

// SetSize resizes the view and its panels.
func (m Model) SetSize(width, height int) mode.Controller {
	m.Base.SetSize(width, height)
	m.diff = m.diff.SetSize(m.diffWidth(), m.listHeight())
	return m
}

func (m Model) showHelp() bool { return m.services.Config.UI.ShowHelpBar }

func (m Model) listHeight() int {
	if m.showHelp() {
		return max(m.Height-1, 1)
	}
	return m.Height
}

func (m Model) listWidth() int {
	if m.Modals.Is(mode.DiffModal()) {
		return max(m.Width*2/5, 20)
	}
	return m.Width
}

func (m Model) diffWidth() int { return max(m.Width-max(m.Width*2/5, 20), 10) }

// Update handles snapshots, keys and clicks.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case mode.SnapshotMsg:
		if msg.Status != nil {
			m.snap = msg.Status
			m.SetRecords(records.FromStatus(msg.Status))
			m = m.syncDiff()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.Click(msg, m.list) {
			return m.syncDiff(), nil
		}
		if m.Modals.Is(mode.DiffModal()) {
			m.diff, _ = m.diff.Update(msg)
			return m, nil
		}
		res, cmd := m.UpdateModal(msg)
		if res.Done {
			return m.handleModalResult(res)
		}
		return m, cmd
	}
	if !m.Modals.Navigating() {
		_, cmd := m.UpdateModal(msg)
		return m, cmd
	}
	return m, nil
}

// patchFor resolves the patch of the selected file.
func (m Model) patchFor() (string, diff.Patch, bool) {
	r, ok := m.Selected()
	if !ok || m.snap == nil {
		return "", diff.Patch{}, false
	}
	p, found := m.snap.Diffs.Resolve(r.Name, r.Status)
	return r.Name, p, found
}

// syncDiff re-resolves the open diff panel after the selection or the
// snapshot changed.
func (m Model) syncDiff() Model {
	if !m.Modals.Is(mode.DiffModal()) {
		return m
	}
	path, p, found := m.patchFor()
	m.diff = m.diff.SetPatch(path, p, found)
	return m
}

// View renders the file list, the diff panel when open, and any modal.
func (m Model) View() string {
	list := m.list.Render(m.Records, m.Selection, m.listWidth(), m.listHeight())
	body := lipgloss.NewStyle().Width(m.listWidth()).Height(m.listHeight()).Render(list)
	if m.Modals.Is(mode.DiffModal()) {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.diff.View())
	}
	if m.showHelp() {
		body += "\n" + m.helpBar()
	}
	return m.Overlay(body)
}

func (m Model) helpBar() string {
	if m.Modals.Is(mode.DiffModal()) {
		return mode.HelpBar(m.Width, keys.Diff.PrevHunk, keys.Diff.NextHunk, keys.Diff.ScrollDown, keys.Diff.Close)
	}
	return mode.HelpBar(m.Width, keys.Nav.Menu, keys.Status.Stage, keys.Status.Unstage,
		keys.Status.Commit, keys.Status.ViewDiff, keys.Nav.Exit)
}

// Package repos implements the repository picker shown at startup and
// whenever a repository view is left.
package repos

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/twig/internal/config"
	"github.com/zjrosen/twig/internal/dispatch"
	"github.com/zjrosen/twig/internal/keys"
	"github.com/zjrosen/twig/internal/log"
	"github.com/zjrosen/twig/internal/mode"
	"github.com/zjrosen/twig/internal/mode/shared"
	"github.com/zjrosen/twig/internal/paths"
	"github.com/zjrosen/twig/internal/records"
	"github.com/zjrosen/twig/internal/store"
	"github.com/zjrosen/twig/internal/ui/modal"
	"github.com/zjrosen/twig/internal/ui/styles"
)

// Registry is the part of the store the picker needs.
type Registry interface {
	List(ctx context.Context) ([]store.Repo, error)
	Add(ctx context.Context, path string) (store.Repo, error)
	Remove(ctx context.Context, path string) error
	Current(ctx context.Context) (string, error)
}

var _ Registry = (*store.Store)(nil)

// SectionRepos holds every registered repository.
const SectionRepos = "repositories"

const (
	cmdOpen   = "open"
	cmdAdd    = "add"
	cmdRemove = "remove"
	cmdQuit   = "quit"
)

var commands = dispatch.Table{
	{ID: cmdOpen, Binding: keys.Repos.Open, NeedsSelection: true},
	{ID: cmdAdd, Binding: keys.Repos.Add},
	{ID: cmdRemove, Binding: keys.Repos.Remove, NeedsSelection: true},
	{ID: cmdQuit, Binding: keys.Repos.Quit},
}

// Commands returns the picker's command table.
func Commands() dispatch.Table { return commands }

// reposMsg carries a reloaded registry. notice is an info toast to show
// once it is installed.
type reposMsg struct {
	repos   []store.Repo
	current string
	notice  string
	err     error
}

// Model is the repository picker controller.
type Model struct {
	mode.Base

	registry Registry
	config   config.Config
	list     shared.List
	pending  string // path awaiting removal
}

var _ mode.Controller = Model{}

// New creates the picker over registry.
func New(registry Registry, cfg config.Config) Model {
	return Model{
		registry: registry,
		config:   cfg,
		list:     shared.List{Prefix: "repos", HideTitles: true, Row: row},
	}
}

func row(r records.Record, _ bool, width int) string {
	name := r.Name
	if r.Current {
		name = styles.CurrentBranchStyle.Render(name)
	}
	return styles.Truncate(name+"  "+styles.MutedStyle.Render(r.Label), width)
}

// Init loads the registry.
func (m Model) Init() tea.Cmd { return m.reload("") }

func (m Model) Navigating() bool { return m.Modals.Navigating() }

func (m Model) SetSize(width, height int) mode.Controller {
	m.Base.SetSize(width, height)
	return m
}

func (m Model) reload(notice string) tea.Cmd {
	reg := m.registry
	return func() tea.Msg { return load(reg, notice) }
}

func load(reg Registry, notice string) reposMsg {
	ctx := context.Background()
	list, err := reg.List(ctx)
	if err != nil {
		return reposMsg{err: err}
	}
	current, err := reg.Current(ctx)
	if err != nil {
		return reposMsg{err: err}
	}
	return reposMsg{repos: list, current: current, notice: notice}
}

func fromRepos(list []store.Repo, current string) records.View {
	recs := make([]records.Record, len(list))
	for i, r := range list {
		recs[i] = records.Record{Name: r.Name, Label: r.Path, Current: r.Path == current}
	}
	return records.List(SectionRepos, recs)
}

func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case reposMsg:
		if msg.err != nil {
			return m, mode.ToastCmd(msg.err.Error())
		}
		m.SetRecords(fromRepos(msg.repos, msg.current))
		if msg.notice != "" {
			return m, mode.InfoCmd(msg.notice)
		}
		return m, nil
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

func (m Model) handleKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	if !m.Modals.Navigating() {
		res, cmd := m.UpdateModal(msg)
		if res.Done {
			return m.handleModalResult(res)
		}
		return m, cmd
	}

	act := m.Resolve(msg, commands, "Repositories")
	switch act.Kind {
	case dispatch.Run:
		return m.run(act.Command)
	case dispatch.Exit:
		// There is nothing behind the picker.
		return m, quit
	}
	return m, nil
}

func quit() tea.Msg { return mode.QuitMsg{} }

func (m Model) run(id string) (mode.Controller, tea.Cmd) {
	switch id {
	case cmdAdd:
		return m, m.OpenDialog(mode.PurposeAddRepo, modal.Config{
			Title:       "Add repository",
			Message:     "Path to a git work tree",
			Placeholder: "~/src/project",
		})
	case cmdQuit:
		return m, quit
	}

	r, ok := m.Selected()
	if !ok {
		return m, nil
	}
	switch id {
	case cmdOpen:
		path := r.Label
		log.Debug(log.CatMode, "open repository", "path", path)
		return m, func() tea.Msg { return mode.OpenRepoMsg{Path: path} }
	case cmdRemove:
		if m.OpenConfirm(mode.PurposeRemoveRepo, modal.Config{
			Title:   "Remove " + r.Name + "?",
			Message: "The repository stays on disk; only the entry is removed.",
			Confirm: true,
			Danger:  true,
		}) {
			m.pending = r.Label
		}
	}
	return m, nil
}

func (m Model) handleModalResult(res mode.ModalResult) (mode.Controller, tea.Cmd) {
	pending := m.pending
	m.pending = ""
	if !res.Submitted {
		return m, nil
	}

	reg := m.registry
	switch res.Modal {
	case mode.MenuModal():
		return m.run(res.Command)
	case mode.DialogModal(mode.PurposeAddRepo):
		input := res.Value
		return m, func() tea.Msg {
			root, err := paths.ResolveRepo(input)
			if err != nil {
				return reposMsg{err: err}
			}
			repo, err := reg.Add(context.Background(), root)
			if err != nil {
				return reposMsg{err: err}
			}
			return load(reg, "added "+repo.Name)
		}
	case mode.ConfirmModal(mode.PurposeRemoveRepo):
		return m, func() tea.Msg {
			if err := reg.Remove(context.Background(), pending); err != nil {
				return reposMsg{err: err}
			}
			return load(reg, "")
		}
	}
	return m, nil
}

func (m Model) View() string {
	height := m.Height - 1
	if m.config.UI.ShowHelpBar {
		height--
	}
	height = max(height, 1)

	title := styles.HeaderStyle.Render("twig")
	list := m.list.Render(m.Records, m.Selection, m.Width, height)
	body := title + "\n" + lipgloss.NewStyle().Width(m.Width).Height(height).Render(list)
	if m.config.UI.ShowHelpBar {
		body += "\n" + mode.HelpBar(m.Width, keys.Nav.Menu, keys.Repos.Open, keys.Repos.Add, keys.Repos.Remove, keys.Repos.Quit)
	}
	return m.Overlay(body)
}

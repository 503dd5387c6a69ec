// Package graph implements the commit graph view.
package graph

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/twig/internal/dispatch"
	"github.com/zjrosen/twig/internal/git"
	"github.com/zjrosen/twig/internal/keys"
	"github.com/zjrosen/twig/internal/log"
	"github.com/zjrosen/twig/internal/mode"
	"github.com/zjrosen/twig/internal/mode/shared"
	"github.com/zjrosen/twig/internal/records"
	"github.com/zjrosen/twig/internal/ui/styles"
)

const cmdYank = "yank"

var commands = dispatch.Table{
	{ID: cmdYank, Binding: keys.Graph.Yank, NeedsSelection: true},
}

// Commands returns the graph view's command table.
func Commands() dispatch.Table { return commands }

// Model is the graph view controller. entries is indexed by record id.
type Model struct {
	mode.Base

	services mode.Services
	entries  []git.LogEntry
}

var _ mode.Controller = Model{}

// New creates the graph view.
func New(services mode.Services) Model {
	return Model{services: services}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Navigating() bool { return m.Modals.Navigating() }

func (m Model) SetSize(width, height int) mode.Controller {
	m.Base.SetSize(width, height)
	return m
}

func (m Model) list() shared.List {
	now := m.services.Clock.Now()
	return shared.List{
		Prefix:     "graph",
		HideTitles: true,
		Row: func(r records.Record, _ bool, width int) string {
			if r.ID >= len(m.entries) {
				return r.Name
			}
			return styles.Truncate(row(m.entries[r.ID], now), width)
		},
	}
}

// row renders the graph glyphs, then hash, subject, author and age for
// rows that carry a commit.
func row(e git.LogEntry, now time.Time) string {
	graph := strings.TrimRight(e.Graph, " ")
	if e.Hash == "" {
		return styles.MutedStyle.Render(graph)
	}
	parts := []string{
		styles.CurrentBranchStyle.Render(graph),
		styles.HelpKeyStyle.Render(e.ShortHash),
		e.Message,
		styles.MutedStyle.Render(e.Author),
	}
	if !e.Time.IsZero() {
		parts = append(parts, styles.MutedStyle.Render(shared.RelativeTime(e.Time, now)))
	}
	return strings.Join(parts, " ")
}

func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case mode.SnapshotMsg:
		if msg.HasLog {
			m.entries = msg.Log
			m.SetRecords(records.FromLog(msg.Log))
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.Click(msg, m.list()) {
			return m, nil
		}
	}
	if !m.Modals.Navigating() {
		res, cmd := m.UpdateModal(msg)
		if res.Done && res.Submitted {
			return m.run(res.Command)
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	if !m.Modals.Navigating() {
		res, cmd := m.UpdateModal(msg)
		if res.Done && res.Submitted {
			return m.run(res.Command)
		}
		return m, cmd
	}

	act := m.Resolve(msg, commands, "Graph")
	switch act.Kind {
	case dispatch.Run:
		return m.run(act.Command)
	case dispatch.Exit:
		return m, m.Exit()
	}
	return m, nil
}

func (m Model) run(id string) (mode.Controller, tea.Cmd) {
	r, ok := m.Selected()
	if !ok || id != cmdYank {
		return m, nil
	}
	// Continuation rows have nothing to copy.
	if r.Commit == "" {
		log.Debug(log.CatMode, "yank on graph-only row", "row", r.ID)
		return m, nil
	}
	clip := m.services.Clipboard
	hash := r.Commit
	return m, func() tea.Msg {
		if err := clip.Copy(hash); err != nil {
			return mode.ShowToastMsg{Message: "copy failed: " + err.Error()}
		}
		return mode.ShowToastMsg{Message: "copied " + r.Ref, Info: true}
	}
}

func (m Model) View() string {
	height := m.Height
	showHelp := m.services.Config.UI.ShowHelpBar
	if showHelp {
		height = max(height-1, 1)
	}
	list := m.list().Render(m.Records, m.Selection, m.Width, height)
	body := lipgloss.NewStyle().Width(m.Width).Height(height).Render(list)
	if showHelp {
		body += "\n" + mode.HelpBar(m.Width, keys.Nav.Menu, keys.Graph.Yank, keys.Nav.Exit)
	}
	return m.Overlay(body)
}

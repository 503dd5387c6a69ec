// Package loading is the in-progress indicator for long git operations. It
// tracks every running operation by id and labels itself with the oldest.
package loading

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/twig/internal/ui/styles"
)

type operation struct {
	id    string
	label string
}

// Model is the indicator state. The zero value is idle but has no spinner;
// use New.
type Model struct {
	spinner spinner.Model
	ops     []operation
}

// New creates an idle indicator.
func New() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.SpinnerColor)
	return Model{spinner: s}
}

// Start registers a running operation. The spinner only needs a tick when
// it was idle.
func (m Model) Start(id, label string) (Model, tea.Cmd) {
	idle := len(m.ops) == 0
	m.ops = append(m.ops, operation{id: id, label: label})
	if idle {
		return m, m.spinner.Tick
	}
	return m, nil
}

// Finish clears operation id whatever its outcome. Unknown ids are ignored.
func (m Model) Finish(id string) Model {
	for i, op := range m.ops {
		if op.id == id {
			m.ops = append(m.ops[:i:i], m.ops[i+1:]...)
			break
		}
	}
	return m
}

// Active reports whether any operation is running.
func (m Model) Active() bool { return len(m.ops) > 0 }

// Label is the label of the oldest running operation.
func (m Model) Label() string {
	if len(m.ops) == 0 {
		return ""
	}
	return m.ops[0].label
}

// Update advances the spinner while active and lets it stop when idle.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || !m.Active() {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(tick)
	return m, cmd
}

// View renders the spinner and label, or nothing while idle.
func (m Model) View() string {
	if !m.Active() {
		return ""
	}
	label := m.Label()
	if n := len(m.ops); n > 1 {
		label += styles.MutedStyle.Render(fmt.Sprintf(" (+%d)", n-1))
	}
	return m.spinner.View() + " " + label + "…"
}

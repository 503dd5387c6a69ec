// Package menu is the quick menu opened with "?". It lists a view's
// commands and reports the chosen command id.
package menu

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/twig/internal/dispatch"
	"github.com/zjrosen/twig/internal/ui/picker"
)

// Result is returned by Update. Command is set when Chosen is true.
type Result struct {
	Chosen    bool
	Cancelled bool
	Command   string
}

// Model wraps a picker over the command table.
type Model struct {
	picker picker.Model
}

// New lists the commands of table. Commands that need a selection are left
// out while nothing is selected, matching what the keys would do.
func New(title string, table dispatch.Table, selected bool) Model {
	var opts []picker.Option
	for _, c := range table {
		if c.NeedsSelection && !selected {
			continue
		}
		h := c.Binding.Help()
		opts = append(opts, picker.Option{Hint: h.Key, Label: h.Desc, Value: c.ID})
	}
	return Model{picker: picker.New(title, opts)}
}

// SetSize sets the viewport dimensions for overlay rendering.
func (m Model) SetSize(width, height int) Model {
	m.picker = m.picker.SetSize(width, height)
	return m
}

// Update forwards the message to the picker.
func (m Model) Update(msg tea.Msg) (Model, Result) {
	var res picker.Result
	m.picker, res = m.picker.Update(msg)
	switch res.Outcome {
	case picker.Chosen:
		return m, Result{Chosen: true, Command: res.Option.Value}
	case picker.Cancelled:
		return m, Result{Cancelled: true}
	}
	return m, Result{}
}

func (m Model) View() string { return m.picker.View() }

// Overlay centers the menu over background.
func (m Model) Overlay(background string) string { return m.picker.Overlay(background) }

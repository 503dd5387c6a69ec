// Package picker is the boxed option list behind the quick menu and the
// remote select. The cursor wraps at both ends.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/twig/internal/keys"
	"github.com/zjrosen/twig/internal/nav"
	"github.com/zjrosen/twig/internal/ui/overlay"
	"github.com/zjrosen/twig/internal/ui/styles"
)

// Option is one entry. Hint is drawn dimmed before the label, as the key of
// a menu entry.
type Option struct {
	Hint  string
	Label string
	Value string
}

// Outcome says whether an Update finished the picker.
type Outcome int

const (
	Pending Outcome = iota
	Chosen
	Cancelled
)

// Result is returned by Update. Option is set when Outcome is Chosen.
type Result struct {
	Outcome Outcome
	Option  Option
}

// Model holds the picker state.
type Model struct {
	title    string
	options  []Option
	cursor   nav.Selection
	boxWidth int
	width    int
	height   int
}

// New creates a picker with the first option highlighted.
func New(title string, options []Option) Model {
	m := Model{title: title, options: options, boxWidth: 32}
	if len(options) > 0 {
		m.cursor = nav.At(0)
	}
	return m
}

// SetSize sets the viewport dimensions for overlay rendering.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Cursor returns the highlighted index, or -1 when there are no options.
func (m Model) Cursor() int {
	if i, ok := m.cursor.Index(); ok {
		return i
	}
	return -1
}

// Selected returns the highlighted option.
func (m Model) Selected() (Option, bool) {
	i, ok := m.cursor.Index()
	if !ok || i >= len(m.options) {
		return Option{}, false
	}
	return m.options[i], true
}

func (m Model) zoneID(i int) string { return fmt.Sprintf("picker-%s-%d", m.title, i) }

// Update moves the cursor and reports Enter and Escape.
func (m Model) Update(msg tea.Msg) (Model, Result) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Component.Up):
			m.cursor = nav.MovePrev(m.cursor, len(m.options))
		case key.Matches(msg, keys.Component.Down):
			m.cursor = nav.MoveNext(m.cursor, len(m.options))
		case key.Matches(msg, keys.Component.Confirm):
			if opt, ok := m.Selected(); ok {
				return m, Result{Outcome: Chosen, Option: opt}
			}
		case key.Matches(msg, keys.Component.Close):
			return m, Result{Outcome: Cancelled}
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			break
		}
		for i := range m.options {
			if z := zone.Get(m.zoneID(i)); z != nil && z.InBounds(msg) {
				m.cursor = nav.At(i)
			}
		}
	}
	return m, Result{}
}

// View renders the picker box.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor).PaddingLeft(1)
	hintStyle := styles.MutedStyle

	var rows []string
	for i, opt := range m.options {
		label := opt.Label
		if opt.Hint != "" {
			label = hintStyle.Render(opt.Hint) + " " + label
		}
		var line string
		if m.cursor.Is(i) {
			line = styles.SelectionIndicatorStyle.Render(">") + lipgloss.NewStyle().Bold(true).Render(label)
		} else {
			line = " " + label
		}
		rows = append(rows, zone.Mark(m.zoneID(i), line))
	}
	if len(rows) == 0 {
		rows = append(rows, hintStyle.Render(" nothing to choose"))
	}

	divider := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor).Render(strings.Repeat("─", m.boxWidth))
	content := titleStyle.Render(m.title) + "\n" + divider + "\n" + strings.Join(rows, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(m.boxWidth).
		Render(content)
}

// Overlay centers the picker over background.
func (m Model) Overlay(background string) string {
	return overlay.Place(m.View(), background, m.width, m.height, overlay.Center, 0)
}

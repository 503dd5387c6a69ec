// Package output is the persistent panel at the bottom of the screen that
// shows operation output and merge conflicts rendered as markdown.
package output

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/twig/internal/config"
	"github.com/zjrosen/twig/internal/keys"
	"github.com/zjrosen/twig/internal/log"
	"github.com/zjrosen/twig/internal/ui/markdown"
	"github.com/zjrosen/twig/internal/ui/styles"
)

// Result reports what an Update did to the panel.
type Result struct {
	Closed bool
	// Resized is true when the height changed. The new height is Height().
	Resized bool
}

// Model is the output panel state. The zero value is hidden.
type Model struct {
	title    string
	markdown string
	style    string
	visible  bool
	width    int
	height   int
	viewport viewport.Model
}

// New creates a hidden panel of height rows using the glamour style.
func New(height int, style string) Model {
	return Model{height: clampHeight(height), style: style}
}

func clampHeight(h int) int {
	return min(max(h, config.MinOutputHeight), config.MaxOutputHeight)
}

// Show replaces the panel content and makes it visible.
func (m Model) Show(title, md string) Model {
	m.title = title
	m.markdown = md
	m.visible = true
	m.rebuild()
	return m
}

// Hide closes the panel.
func (m Model) Hide() Model {
	m.visible = false
	return m
}

func (m Model) Visible() bool { return m.visible }

// Height is the panel height in rows, borders included.
func (m Model) Height() int { return m.height }

// Title is the heading of the current content.
func (m Model) Title() string { return m.title }

// SetWidth sets the panel width and rewraps the content.
func (m Model) SetWidth(width int) Model {
	m.width = width
	m.rebuild()
	return m
}

// Update handles the panel keys: escape closes, + and - resize, and the
// scroll keys move through long output. Other keys are ignored.
func (m Model) Update(msg tea.Msg) (Model, Result) {
	if !m.visible {
		return m, Result{}
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, Result{}
	}

	switch {
	case key.Matches(keyMsg, keys.Component.Close):
		m.visible = false
		return m, Result{Closed: true}
	case key.Matches(keyMsg, keys.Component.Grow):
		return m.resize(m.height + 1)
	case key.Matches(keyMsg, keys.Component.Shrink):
		return m.resize(m.height - 1)
	case key.Matches(keyMsg, keys.Diff.ScrollUp):
		m.viewport.HalfPageUp()
	case key.Matches(keyMsg, keys.Diff.ScrollDown):
		m.viewport.HalfPageDown()
	}
	return m, Result{}
}

func (m Model) resize(h int) (Model, Result) {
	h = clampHeight(h)
	if h == m.height {
		return m, Result{}
	}
	m.height = h
	m.rebuild()
	return m, Result{Resized: true}
}

func (m *Model) rebuild() {
	inner := max(m.width-2, 1)
	m.viewport = viewport.New(inner, max(m.height-2, 1))
	m.viewport.SetContent(m.render(inner))
}

func (m Model) render(width int) string {
	if m.markdown == "" {
		return ""
	}
	r, err := markdown.New(width, m.style)
	if err != nil {
		log.ErrorErr(log.CatUI, "markdown renderer", err)
		return m.markdown
	}
	out, err := r.Render(m.markdown)
	if err != nil {
		log.ErrorErr(log.CatUI, "render output", err)
		return m.markdown
	}
	return out
}

// View draws the panel, or nothing while hidden.
func (m Model) View() string {
	if !m.visible {
		return ""
	}
	title := "Output"
	if m.title != "" {
		title += ": " + m.title
	}
	return styles.RenderPanel(m.viewport.View(), title, m.width, m.height, false)
}

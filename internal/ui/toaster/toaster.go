// Package toaster shows one transient notification at the bottom of the
// screen. A newer toast replaces the current one, and each toast fades for
// its last half second before it is dismissed.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/twig/internal/ui/overlay"
	"github.com/zjrosen/twig/internal/ui/styles"
)

// DefaultTimeout is how long a toast stays on screen.
const DefaultTimeout = 4500 * time.Millisecond

const fadeDuration = 500 * time.Millisecond

// Style determines the visual appearance of the toast.
type Style int

const (
	StyleError Style = iota
	StyleInfo
)

// FadeMsg starts the fade of toast ID.
type FadeMsg struct{ ID int }

// DismissMsg hides toast ID. Messages for a replaced toast are ignored.
type DismissMsg struct{ ID int }

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
	fading  bool
	id      int
	timeout time.Duration
}

// New creates a toaster with the given visible window. A
// non-positive timeout uses DefaultTimeout.
func New(timeout time.Duration) Model {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return Model{timeout: timeout}
}

// Show displays message and returns the commands that fade and dismiss it.
func (m Model) Show(message string, style Style) (Model, tea.Cmd) {
	m.id++
	m.message = message
	m.style = style
	m.visible = true
	m.fading = false

	id := m.id
	fadeAt := max(m.timeout-fadeDuration, 0)
	return m, tea.Batch(
		tea.Tick(fadeAt, func(time.Time) tea.Msg { return FadeMsg{ID: id} }),
		tea.Tick(m.timeout, func(time.Time) tea.Msg { return DismissMsg{ID: id} }),
	)
}

// Update applies fade and dismiss messages addressed to the current toast.
func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case FadeMsg:
		if msg.ID == m.id && m.visible {
			m.fading = true
		}
	case DismissMsg:
		if msg.ID == m.id {
			m = m.Hide()
		}
	}
	return m
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.fading = false
	m.message = ""
	return m
}

func (m Model) Visible() bool   { return m.visible }
func (m Model) Fading() bool    { return m.fading }
func (m Model) Message() string { return m.message }

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	var border lipgloss.TerminalColor = styles.ToastBorderErrorColor
	prefix := "✗ "
	if m.style == StyleInfo {
		border = styles.ToastBorderInfoColor
		prefix = "• "
	}
	if m.fading {
		border = styles.TextMutedColor
		style = style.Foreground(styles.TextMutedColor)
	}
	return style.BorderForeground(border).Render(prefix + m.message)
}

// Overlay renders the toast one row above the bottom of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}
	return overlay.Place(m.View(), bg, width, height, overlay.Bottom, 1)
}

// Package modal provides the single-input dialog and the yes/no confirm used
// for branch names, commit messages and destructive actions.
package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/twig/internal/keys"
	"github.com/zjrosen/twig/internal/ui/overlay"
	"github.com/zjrosen/twig/internal/ui/styles"
)

// Outcome says whether an Update finished the modal.
type Outcome int

const (
	Pending Outcome = iota
	Submitted
	Cancelled
)

// Result is returned by Update. Value holds the trimmed input on submit.
type Result struct {
	Outcome Outcome
	Value   string
}

// Config controls modal appearance and behavior.
type Config struct {
	Title       string
	Message     string
	Placeholder string
	Value       string
	// Confirm makes the modal a yes/no question with no input.
	Confirm bool
	// Danger paints the border in the error color.
	Danger   bool
	MinWidth int
}

// Model is the modal component state.
type Model struct {
	config Config
	input  textinput.Model
	width  int
	height int
}

// New creates a modal. Input modals get a focused text field.
func New(cfg Config) Model {
	if cfg.MinWidth == 0 {
		cfg.MinWidth = 44
	}
	m := Model{config: cfg}
	if !cfg.Confirm {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 0
		ti.Placeholder = cfg.Placeholder
		ti.Width = cfg.MinWidth - 6
		ti.SetValue(cfg.Value)
		ti.Focus()
		m.input = ti
	}
	return m
}

// Init starts the cursor blink for input modals.
func (m Model) Init() tea.Cmd {
	if m.config.Confirm {
		return nil
	}
	return textinput.Blink
}

// SetSize sets the viewport dimensions for overlay rendering.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Value returns the current input text.
func (m Model) Value() string { return m.input.Value() }

// Update handles a message. Enter submits a non-blank input (or confirms),
// Escape cancels, and in confirm mode y and n answer directly.
func (m Model) Update(msg tea.Msg) (Model, Result, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Component.Close):
			return m, Result{Outcome: Cancelled}, nil
		case key.Matches(keyMsg, keys.Component.Confirm):
			if m.config.Confirm {
				return m, Result{Outcome: Submitted}, nil
			}
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				return m, Result{}, nil
			}
			return m, Result{Outcome: Submitted, Value: value}, nil
		}
		if m.config.Confirm {
			switch {
			case key.Matches(keyMsg, keys.Component.Yes):
				return m, Result{Outcome: Submitted}, nil
			case key.Matches(keyMsg, keys.Component.No):
				return m, Result{Outcome: Cancelled}, nil
			}
			return m, Result{}, nil
		}
	}

	if m.config.Confirm {
		return m, Result{}, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, Result{}, cmd
}

// View renders the modal box.
func (m Model) View() string {
	width := m.config.MinWidth
	var border lipgloss.TerminalColor = styles.OverlayBorderColor
	if m.config.Danger {
		border = styles.StatusErrorColor
	}

	title := lipgloss.NewStyle().Bold(true).Render(m.config.Title)
	parts := []string{title}
	if m.config.Message != "" {
		parts = append(parts, lipgloss.NewStyle().Width(width-4).Foreground(styles.TextSecondaryColor).Render(m.config.Message))
	}

	var hint string
	if m.config.Confirm {
		hint = "y/enter confirm · n/esc cancel"
	} else {
		field := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(styles.AccentColor).
			Width(width - 6).
			Render(m.input.View())
		parts = append(parts, field)
		hint = "enter submit · esc cancel"
	}
	parts = append(parts, styles.MutedStyle.Render(hint))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(parts, "\n\n"))
}

// Overlay centers the modal over background.
func (m Model) Overlay(background string) string {
	return overlay.Place(m.View(), background, m.width, m.height, overlay.Center, 0)
}

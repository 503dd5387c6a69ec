// Package dispatch resolves a key event into exactly one action for a list
// view. It knows nothing about git; views register their commands in a Table
// and act on the returned Action.
package dispatch

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/twig/internal/keys"
)

// Kind identifies what a resolved key should do.
type Kind int

const (
	None Kind = iota
	MovePrev
	MoveNext
	OpenMenu
	Run
	Exit
)

func (k Kind) String() string {
	switch k {
	case MovePrev:
		return "move-prev"
	case MoveNext:
		return "move-next"
	case OpenMenu:
		return "open-menu"
	case Run:
		return "run"
	case Exit:
		return "exit"
	default:
		return "none"
	}
}

// Command is a single-letter view command.
type Command struct {
	ID      string
	Binding key.Binding
	// NeedsSelection commands are ignored while nothing is selected.
	NeedsSelection bool
}

// Table is a view's registered commands in match order.
type Table []Command

// Find returns the command registered under id.
func (t Table) Find(id string) (Command, bool) {
	for _, c := range t {
		if c.ID == id {
			return c, true
		}
	}
	return Command{}, false
}

// Bindings returns the key bindings of every command, for help rendering.
func (t Table) Bindings() []key.Binding {
	out := make([]key.Binding, 0, len(t))
	for _, c := range t {
		out = append(out, c.Binding)
	}
	return out
}

// State is the part of a view the dispatcher reads.
type State struct {
	Navigating bool
	Selected   bool
	Length     int
}

// Action is the outcome of Resolve. Command is set only for Run.
type Action struct {
	Kind    Kind
	Command string
}

// Resolve applies the precedence rules: navigation keys, the menu key, the
// view's commands, then escape. Everything else resolves to None, as does every
// key while a modal owns the keyboard.
func Resolve(msg tea.KeyMsg, table Table, st State) Action {
	if !st.Navigating {
		return Action{}
	}

	switch {
	case key.Matches(msg, keys.Nav.Up):
		if st.Length <= 0 {
			return Action{}
		}
		return Action{Kind: MovePrev}
	case key.Matches(msg, keys.Nav.Down):
		if st.Length <= 0 {
			return Action{}
		}
		return Action{Kind: MoveNext}
	case key.Matches(msg, keys.Nav.Menu):
		return Action{Kind: OpenMenu}
	}

	for _, c := range table {
		if !key.Matches(msg, c.Binding) {
			continue
		}
		if c.NeedsSelection && !st.Selected {
			return Action{}
		}
		return Action{Kind: Run, Command: c.ID}
	}

	if key.Matches(msg, keys.Nav.Exit) {
		return Action{Kind: Exit}
	}
	return Action{}
}

// Package keys contains every key binding twig responds to, grouped by the
// view or component that owns them.
package keys

import "github.com/charmbracelet/bubbles/key"

// NavKeys drive the Selection Model in every list view.
type NavKeys struct {
	Up   key.Binding
	Down key.Binding
	Menu key.Binding
	Exit key.Binding
}

// Nav is shared by the status, branches, graph and repository views.
var Nav = NavKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "left"),
		key.WithHelp("↑/←", "previous"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "right"),
		key.WithHelp("↓/→", "next"),
	),
	Menu: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "commands"),
	),
	Exit: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// GlobalKeys are handled by the root model before any view sees them.
type GlobalKeys struct {
	NextView key.Binding
	PrevView key.Binding
	Quit     key.Binding
	ShowLog  key.Binding
}

var Global = GlobalKeys{
	NextView: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	PrevView: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous view"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	ShowLog: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "debug log"),
	),
}

// BranchKeys are the single-letter commands of the branches view.
type BranchKeys struct {
	Checkout        key.Binding
	NewBranch       key.Binding
	NewRemoteBranch key.Binding
	Delete          key.Binding
	Pull            key.Binding
	Push            key.Binding
	Merge           key.Binding
	Fetch           key.Binding
}

var Branches = BranchKeys{
	Checkout: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "checkout"),
	),
	NewBranch: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "new branch"),
	),
	NewRemoteBranch: key.NewBinding(
		key.WithKeys("B"),
		key.WithHelp("B", "new remote-tracking branch"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete branch"),
	),
	Pull: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pull"),
	),
	Push: key.NewBinding(
		key.WithKeys("P"),
		key.WithHelp("P", "push"),
	),
	Merge: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "merge into current"),
	),
	Fetch: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "fetch all"),
	),
}

// StatusKeys are the single-letter commands of the status view.
type StatusKeys struct {
	Stage                key.Binding
	Unstage              key.Binding
	StageAll             key.Binding
	StageAllAndUntracked key.Binding
	UnstageAll           key.Binding
	Commit               key.Binding
	CommitAll            key.Binding
	Discard              key.Binding
	DiscardAll           key.Binding
	ViewDiff             key.Binding
	Open                 key.Binding
	Yank                 key.Binding
}

var Status = StatusKeys{
	Stage: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stage file"),
	),
	Unstage: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "unstage file"),
	),
	StageAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "stage all tracked"),
	),
	StageAllAndUntracked: key.NewBinding(
		key.WithKeys("A"),
		key.WithHelp("A", "stage all including untracked"),
	),
	UnstageAll: key.NewBinding(
		key.WithKeys("U"),
		key.WithHelp("U", "unstage all"),
	),
	Commit: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "commit staged"),
	),
	CommitAll: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "commit including unstaged"),
	),
	Discard: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "discard file"),
	),
	DiscardAll: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "discard all"),
	),
	ViewDiff: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "view diff"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open file"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
}

// GraphKeys are the commands of the log graph view.
type GraphKeys struct {
	Yank key.Binding
}

var Graph = GraphKeys{
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy commit hash"),
	),
}

// RepoKeys are the commands of the repository picker.
type RepoKeys struct {
	Open   key.Binding
	Add    key.Binding
	Remove key.Binding
	Quit   key.Binding
}

var Repos = RepoKeys{
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open repository"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add repository"),
	),
	Remove: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "remove repository"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

// DiffKeys page through hunks in the diff panel.
type DiffKeys struct {
	PrevHunk   key.Binding
	NextHunk   key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Close      key.Binding
}

var Diff = DiffKeys{
	PrevHunk: key.NewBinding(
		key.WithKeys(","),
		key.WithHelp(",", "previous hunk"),
	),
	NextHunk: key.NewBinding(
		key.WithKeys("."),
		key.WithHelp(".", "next hunk"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "scroll down"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close diff"),
	),
}

// ComponentKeys are used inside menus, dialogs, selects and panels.
type ComponentKeys struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Yes     key.Binding
	No      key.Binding
	Close   key.Binding
	Grow    key.Binding
	Shrink  key.Binding
}

var Component = ComponentKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "left"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "right"),
		key.WithHelp("↓", "down"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "no"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Grow: key.NewBinding(
		key.WithKeys("+"),
		key.WithHelp("+", "taller"),
	),
	Shrink: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "shorter"),
	),
}

// HelpLine lists bindings as "key desc" pairs for a footer.
func HelpLine(bindings ...key.Binding) []key.Binding {
	out := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		if b.Enabled() {
			out = append(out, b)
		}
	}
	return out
}

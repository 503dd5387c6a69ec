package mode

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/zjrosen/twig/internal/git"
)

// ExitMsg asks the app to leave the repository views for the picker.
type ExitMsg struct{}

// OpenRepoMsg asks the app to open the repository at Path.
type OpenRepoMsg struct{ Path string }

// QuitMsg asks the app to exit.
type QuitMsg struct{}

// ShowToastMsg shows a transient notification. Info toasts confirm an
// action; everything else is an error.
type ShowToastMsg struct {
	Message string
	Info    bool
}

// ShowOutputMsg writes markdown to the persistent output panel.
type ShowOutputMsg struct {
	Title    string
	Markdown string
}

// RefreshMsg asks the app to reload status, branches and the log.
type RefreshMsg struct{}

// SnapshotMsg delivers freshly loaded repository state to the views. A nil
// snapshot was not reloaded and leaves the view as it is; HasLog says
// whether Log was.
type SnapshotMsg struct {
	Status   *git.StatusSnapshot
	Branches *git.BranchSnapshot
	Log      []git.LogEntry
	HasLog   bool
}

// ToastCmd returns a command that shows message as an error toast.
func ToastCmd(message string) tea.Cmd {
	return func() tea.Msg { return ShowToastMsg{Message: message} }
}

// InfoCmd returns a command that shows message as an info toast.
func InfoCmd(message string) tea.Cmd {
	return func() tea.Msg { return ShowToastMsg{Message: message, Info: true} }
}

// OperationStartedMsg marks a long git operation as running.
type OperationStartedMsg struct {
	ID    string
	Label string
}

// OperationFinishedMsg reports the outcome of a git operation. Err is nil on
// success. ToOutput routes a failure to the output panel instead of a toast.
type OperationFinishedMsg struct {
	ID       string
	Label    string
	Err      error
	ToOutput bool
	Notify   bool
}

// Operation describes a git call made on behalf of a command.
type Operation struct {
	Label string
	// Long operations show the in-progress indicator while they run.
	Long bool
	// ToOutput routes failures to the output panel.
	ToOutput bool
	// Notify sends a desktop notification on success when enabled.
	Notify bool
	Run    func() error
}

// RunOperation returns the commands that run op in the background and report
// its completion. Long operations are announced first so the indicator shows.
func RunOperation(op Operation) tea.Cmd {
	id := uuid.NewString()
	run := func() tea.Msg {
		err := op.Run()
		return OperationFinishedMsg{
			ID:       id,
			Label:    op.Label,
			Err:      err,
			ToOutput: op.ToOutput,
			Notify:   op.Notify,
		}
	}
	if !op.Long {
		return run
	}
	started := func() tea.Msg { return OperationStartedMsg{ID: id, Label: op.Label} }
	return tea.Sequence(started, run)
}

// FailureCmd converts a finished operation's error into the message that
// presents it: merge conflicts and ToOutput failures go to the output panel,
// everything else to a toast.
func FailureCmd(msg OperationFinishedMsg) tea.Cmd {
	if msg.Err == nil {
		return nil
	}
	var conflict *git.MergeConflictError
	if errors.As(msg.Err, &conflict) {
		return func() tea.Msg {
			return ShowOutputMsg{Title: msg.Label, Markdown: ConflictMarkdown(conflict)}
		}
	}
	if msg.ToOutput {
		return func() tea.Msg {
			return ShowOutputMsg{Title: msg.Label, Markdown: FailureMarkdown(msg.Label, msg.Err)}
		}
	}
	return func() tea.Msg { return ShowToastMsg{Message: git.Message(msg.Err)} }
}

// ConflictMarkdown renders git's merge result line followed by one list
// item per conflicting path.
func ConflictMarkdown(err *git.MergeConflictError) string {
	var b strings.Builder
	b.WriteString(mergeResult(err))
	b.WriteString("\n")
	for _, f := range err.Files {
		fmt.Fprintf(&b, "\n- %s", f)
	}
	return b.String()
}

// mergeResult is the last non-empty line of the merge output, which is
// where git summarizes the outcome.
func mergeResult(err *git.MergeConflictError) string {
	lines := strings.Split(strings.TrimSpace(err.Output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return err.Error()
}

// FailureMarkdown renders a failed command's output as a code block.
func FailureMarkdown(label string, err error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s failed**\n\n", label)
	detail := err.Error()
	var cmdErr *git.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Stderr != "" {
		detail = cmdErr.Stderr
	}
	b.WriteString("```\n")
	b.WriteString(strings.TrimRight(detail, "\n"))
	b.WriteString("\n```")
	return b.String()
}

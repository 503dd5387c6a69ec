package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/twig/internal/config"
	"github.com/zjrosen/twig/internal/git"
	"github.com/zjrosen/twig/internal/log"
	"github.com/zjrosen/twig/internal/mocks"
	"github.com/zjrosen/twig/internal/mode"
	"github.com/zjrosen/twig/internal/pubsub"
	"github.com/zjrosen/twig/internal/store"
	"github.com/zjrosen/twig/internal/testutil"
	"github.com/zjrosen/twig/internal/watcher"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	zone.NewGlobal()
	log.InitWriter(io.Discard)
	os.Exit(m.Run())
}

type fixture struct {
	root     string
	git      *mocks.MockExecutor
	branches *mock.Call
	store    *store.Store
	notify   *mocks.MockNotifier
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	root := filepath.Join(t.TempDir(), "project")
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))

	s, err := store.New(testutil.NewTestDB(t))
	require.NoError(t, err)
	_, err = s.Add(t.Context(), root)
	require.NoError(t, err)

	exec := mocks.NewMockExecutor(t)
	exec.EXPECT().Root().Return(root).Maybe()
	exec.EXPECT().Status(mock.Anything).Return(&git.StatusSnapshot{
		Current:  "main",
		Tracking: "origin/main",
		Ahead:    2,
		Files:    []git.FileStatus{{Path: "a.go", Index: ' ', WorkingDir: 'M'}},
		Modified: []string{"a.go"},
	}, nil).Maybe()
	branches := exec.EXPECT().Branches(mock.Anything).Return(&git.BranchSnapshot{
		All:      []string{"main"},
		Current:  "main",
		Branches: map[string]git.BranchInfo{"main": {Name: "main", Current: true, Commit: "abc1234"}},
	}, nil).Maybe()
	exec.EXPECT().Log(mock.Anything, mock.Anything).Return([]git.LogEntry{
		{Graph: "* ", Hash: "abc1234abc", ShortHash: "abc1234", Message: "first"},
	}, nil).Maybe()

	return fixture{root: root, git: exec, branches: branches, store: s, notify: mocks.NewMockNotifier(t)}
}

func (fx fixture) options() Options {
	cfg := config.Defaults()
	cfg.AutoRefresh = false
	cfg.UI.MarkdownStyle = "notty"
	return Options{
		Config:   cfg,
		Registry: fx.store,
		Executor: func(string) git.Executor { return fx.git },
		Notifier: fx.notify,
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// collect runs cmd and every command batched inside it.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func first[T tea.Msg](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v
		}
	}
	var zero T
	t.Fatalf("no %T among %d messages", zero, len(msgs))
	return zero
}

// open starts the app on the fixture repository and applies one refresh.
func open(t *testing.T, opts Options, fx fixture) Model {
	t.Helper()
	m := New(opts)
	t.Cleanup(func() { _ = m.Close() })
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = update(t, m, mode.OpenRepoMsg{Path: fx.root})
	require.False(t, m.picking)
	m, _ = update(t, m, m.refresh()())
	return m
}

var (
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	esc      = tea.KeyMsg{Type: tea.KeyEsc}
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestApp_StartsInPicker(t *testing.T) {
	fx := newFixture(t)
	m := New(fx.options())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = update(t, m, m.picker.Init()())

	assert.True(t, m.picking)
	assert.Contains(t, m.View(), "project")
}

func TestApp_OpenRepoShowsHeaderAndViews(t *testing.T) {
	fx := newFixture(t)
	m := open(t, fx.options(), fx)
	v := m.View()

	assert.Contains(t, v, "project")
	assert.Contains(t, v, "On branch `main` tracking `origin/main`")
	assert.Contains(t, v, "You're ahead by 2")
	assert.Contains(t, v, "a.go")

	current, err := fx.store.Current(t.Context())
	require.NoError(t, err)
	assert.Equal(t, fx.root, current)
}

func TestApp_OpenRepoRejectsNonRepository(t *testing.T) {
	fx := newFixture(t)
	m := New(fx.options())
	m, cmd := update(t, m, mode.OpenRepoMsg{Path: t.TempDir()})

	assert.True(t, m.picking)
	require.NotNil(t, cmd)
	_, ok := cmd().(mode.ShowToastMsg)
	assert.True(t, ok)
}

func TestApp_TabCyclesViews(t *testing.T) {
	fx := newFixture(t)
	m := open(t, fx.options(), fx)

	m, _ = update(t, m, tab)
	assert.Equal(t, mode.ViewBranches, m.active)
	m, _ = update(t, m, tab)
	assert.Equal(t, mode.ViewGraph, m.active)
	assert.Contains(t, m.View(), "first")
	m, _ = update(t, m, tab)
	assert.Equal(t, mode.ViewStatus, m.active)
	m, _ = update(t, m, shiftTab)
	assert.Equal(t, mode.ViewGraph, m.active)
}

func TestApp_TabIgnoredWhileModalOpen(t *testing.T) {
	fx := newFixture(t)
	m := open(t, fx.options(), fx)

	m, _ = update(t, m, runes("c"))
	require.False(t, m.views[mode.ViewStatus].Navigating())

	m, _ = update(t, m, tab)
	assert.Equal(t, mode.ViewStatus, m.active)
	assert.False(t, m.views[mode.ViewStatus].Navigating())
}

func TestApp_EscReturnsToPicker(t *testing.T) {
	fx := newFixture(t)
	m := open(t, fx.options(), fx)

	m, cmd := update(t, m, esc)
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.True(t, m.picking)
	assert.Nil(t, m.views[mode.ViewStatus])
}

func TestApp_MergeConflictOpensOutput(t *testing.T) {
	fx := newFixture(t)
	m := open(t, fx.options(), fx)

	conflict := &git.MergeConflictError{
		Output: "Auto-merging a.go\nCONFLICT (content): Merge conflict in a.go\nAutomatic merge failed; fix conflicts and then commit the result.",
		Files:  []string{"a.go"},
	}
	m, cmd := update(t, m, mode.OperationFinishedMsg{ID: "1", Label: "merge feature", Err: conflict})
	out := first[mode.ShowOutputMsg](t, collect(cmd))
	assert.Contains(t, out.Markdown, "- a.go")

	m, _ = update(t, m, out)
	require.True(t, m.output.Visible())
	assert.Contains(t, m.View(), "Output: merge feature")

	// Escape closes the panel before it reaches the view.
	m, _ = update(t, m, esc)
	assert.False(t, m.output.Visible())
	assert.False(t, m.picking)
}

func TestApp_FailureShowsToast(t *testing.T) {
	fx := newFixture(t)
	m := open(t, fx.options(), fx)

	m, cmd := update(t, m, mode.OperationFinishedMsg{ID: "1", Label: "stage a.go", Err: errors.New("git: index locked")})
	toast := first[mode.ShowToastMsg](t, collect(cmd))
	assert.Equal(t, "index locked", toast.Message)

	m, _ = update(t, m, toast)
	assert.True(t, m.toaster.Visible())
	assert.Contains(t, m.View(), "index locked")
}

func TestApp_FinishedOperationRefreshes(t *testing.T) {
	fx := newFixture(t)
	m := open(t, fx.options(), fx)
	fx.git.AssertNumberOfCalls(t, "Status", 1)

	_, cmd := update(t, m, mode.OperationFinishedMsg{ID: "1", Label: "stage a.go"})
	first[refreshedMsg](t, collect(cmd))
	fx.git.AssertNumberOfCalls(t, "Status", 2)
}

func TestApp_LoadingIndicator(t *testing.T) {
	fx := newFixture(t)
	m := open(t, fx.options(), fx)

	m, cmd := update(t, m, mode.OperationStartedMsg{ID: "op1", Label: "pull origin/main"})
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "pull origin/main")

	m, _ = update(t, m, mode.OperationFinishedMsg{ID: "op1", Label: "pull origin/main"})
	assert.NotContains(t, m.View(), "pull origin/main")
}

func TestApp_NotifiesOnlyWhenEnabled(t *testing.T) {
	fx := newFixture(t)
	opts := fx.options()
	opts.Config.UI.NotifyDesktop = true
	m := open(t, opts, fx)
	fx.notify.EXPECT().Notify("twig", "fetch finished").Return().Once()

	_, cmd := update(t, m, mode.OperationFinishedMsg{ID: "1", Label: "fetch", Notify: true})
	collect(cmd)
	_, cmd = update(t, m, mode.OperationFinishedMsg{ID: "2", Label: "stage a.go"})
	collect(cmd)
	_, cmd = update(t, m, mode.OperationFinishedMsg{ID: "3", Label: "push", Notify: true, Err: errors.New("rejected")})
	collect(cmd)
}

func TestApp_NoNotificationWhenDisabled(t *testing.T) {
	fx := newFixture(t)
	m := open(t, fx.options(), fx)

	_, cmd := update(t, m, mode.OperationFinishedMsg{ID: "1", Label: "fetch", Notify: true})
	collect(cmd)
	fx.notify.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestApp_OutputResizeIsSaved(t *testing.T) {
	fx := newFixture(t)
	opts := fx.options()
	opts.ConfigPath = filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.WriteDefaultConfig(opts.ConfigPath))
	m := open(t, opts, fx)

	m, _ = update(t, m, mode.ShowOutputMsg{Title: "push", Markdown: "done"})
	m, cmd := update(t, m, runes("+"))
	assert.Equal(t, 9, m.output.Height())
	collect(cmd)

	data, err := os.ReadFile(opts.ConfigPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "output_height: 9")
}

func TestApp_StaleRefreshDropped(t *testing.T) {
	fx := newFixture(t)
	m := open(t, fx.options(), fx)

	m, _ = update(t, m, refreshedMsg{root: "/elsewhere", snap: mode.SnapshotMsg{
		Status: &git.StatusSnapshot{Current: "zzz"},
	}})
	assert.NotContains(t, m.View(), "zzz")
}

func TestApp_RefreshErrorToasts(t *testing.T) {
	fx := newFixture(t)
	m := open(t, fx.options(), fx)
	fx.branches.Unset()
	fx.git.EXPECT().Branches(mock.Anything).Return(nil, errors.New("branches: not a git repository"))

	_, cmd := update(t, m, m.refresh()())
	require.NotNil(t, cmd)
	assert.Equal(t, mode.ShowToastMsg{Message: "not a git repository"}, cmd())
}

func TestApp_LogIsCachedUntilRepoChanges(t *testing.T) {
	fx := newFixture(t)
	m := open(t, fx.options(), fx)
	fx.git.AssertNumberOfCalls(t, "Log", 1)

	m, _ = update(t, m, m.refresh()())
	fx.git.AssertNumberOfCalls(t, "Log", 1)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	m.watcherListener = pubsub.NewListener(ctx, pubsub.NewBroker[watcher.Event]())

	m, _ = update(t, m, pubsub.Event[watcher.Event]{Payload: watcher.Event{Kind: watcher.RepoChanged, Root: fx.root}})
	m, _ = update(t, m, m.refresh()())
	fx.git.AssertNumberOfCalls(t, "Log", 2)
}

func TestApp_LogOverlayTakesKeys(t *testing.T) {
	fx := newFixture(t)
	opts := fx.options()
	opts.Debug = true
	m := open(t, opts, fx)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	require.True(t, m.logOverlay.Visible())

	_, cmd := update(t, m, runes("a"))
	assert.Nil(t, cmd)
	fx.git.AssertNotCalled(t, "StageAll", mock.Anything)

	m, _ = update(t, m, esc)
	assert.False(t, m.logOverlay.Visible())
	assert.False(t, m.picking)
}

func TestApp_LogOverlayNeedsDebug(t *testing.T) {
	fx := newFixture(t)
	m := open(t, fx.options(), fx)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.False(t, m.logOverlay.Visible())
}

func TestApp_CtrlCQuits(t *testing.T) {
	fx := newFixture(t)
	m := New(fx.options())

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestHeader(t *testing.T) {
	tests := []struct {
		name string
		snap *git.StatusSnapshot
		want []string
		not  []string
	}{
		{
			name: "tracking and diverged",
			snap: &git.StatusSnapshot{Current: "main", Tracking: "origin/main", Ahead: 1, Behind: 3},
			want: []string{"On branch `main` tracking `origin/main`", "You're ahead by 1 and behind by 3"},
		},
		{
			name: "behind only",
			snap: &git.StatusSnapshot{Current: "main", Tracking: "origin/main", Behind: 4},
			want: []string{"You're behind by 4"},
			not:  []string{"ahead"},
		},
		{
			name: "no upstream",
			snap: &git.StatusSnapshot{Current: "topic"},
			want: []string{"On branch `topic`"},
			not:  []string{"tracking", "You're"},
		},
		{
			name: "detached",
			snap: &git.StatusSnapshot{Current: "abc1234", Detached: true},
			want: []string{"HEAD detached at `abc1234`"},
		},
		{
			name: "not loaded",
			want: []string{"repo", "Status"},
			not:  []string{"On branch"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := header(120, "repo", tt.snap, mode.ViewStatus, "")
			for _, w := range tt.want {
				assert.Contains(t, h, w)
			}
			for _, n := range tt.not {
				assert.NotContains(t, h, n)
			}
			assert.Len(t, strings.Split(h, "\n"), headerHeight)
		})
	}
}

func TestHeader_ProgressRightAligned(t *testing.T) {
	h := header(60, "repo", nil, mode.ViewGraph, "⠋ fetch…")
	line, _, _ := strings.Cut(h, "\n")
	assert.True(t, strings.HasSuffix(line, "⠋ fetch…"))
	assert.Equal(t, 60, lipgloss.Width(line))
}

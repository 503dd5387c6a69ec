package repos

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/twig/internal/config"
	"github.com/zjrosen/twig/internal/mode"
	"github.com/zjrosen/twig/internal/mode/shared"
	"github.com/zjrosen/twig/internal/store"
	"github.com/zjrosen/twig/internal/testutil"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	zone.NewGlobal()
	os.Exit(m.Run())
}

// gitDir makes a directory that resolves as a work tree root.
func gitDir(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	return dir
}

func newModel(t *testing.T, paths ...string) (Model, *store.Store) {
	t.Helper()
	s, err := store.New(testutil.NewTestDB(t))
	require.NoError(t, err)
	for _, p := range paths {
		_, err := s.Add(t.Context(), p)
		require.NoError(t, err)
	}
	m := New(s, config.Defaults())
	c, _ := m.SetSize(80, 20).Update(m.Init()())
	return c.(Model), s
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	var c mode.Controller = m
	for _, msg := range msgs {
		c, cmd = c.Update(msg)
	}
	return c.(Model), cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	down  = tea.KeyMsg{Type: tea.KeyDown}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestView_ListsRepositories(t *testing.T) {
	a, b := gitDir(t, "alpha"), gitDir(t, "beta")
	m, _ := newModel(t, a, b)
	v := m.View()

	require.Equal(t, 2, m.Records.Len())
	require.Contains(t, v, "alpha")
	require.Contains(t, v, "beta")
	require.NotContains(t, v, "REPOSITORIES")
}

func TestView_Empty(t *testing.T) {
	m, _ := newModel(t)
	require.Contains(t, m.View(), shared.EmptyMessage)
}

func TestOpen_SelectedRepository(t *testing.T) {
	a := gitDir(t, "alpha")
	m, _ := newModel(t, a)

	_, cmd := send(t, m, enter)
	require.Nil(t, cmd, "open needs a selection")

	_, cmd = send(t, m, down, enter)
	require.Equal(t, mode.OpenRepoMsg{Path: a}, cmd())
}

func TestAdd_ResolvesToRoot(t *testing.T) {
	root := gitDir(t, "gamma")
	sub := filepath.Join(root, "pkg")
	require.NoError(t, os.Mkdir(sub, 0o755))
	m, s := newModel(t)

	m, _ = send(t, m, runes("a"))
	require.True(t, m.Modals.Is(mode.DialogModal(mode.PurposeAddRepo)))
	for _, r := range sub {
		m, _ = send(t, m, runes(string(r)))
	}
	m, cmd := send(t, m, enter)
	require.True(t, m.Navigating())

	m, cmd = send(t, m, cmd())
	require.Equal(t, mode.ShowToastMsg{Message: "added gamma", Info: true}, cmd())
	require.Equal(t, 1, m.Records.Len())

	list, err := s.List(t.Context())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, root, list[0].Path)
}

func TestAdd_NotARepository(t *testing.T) {
	m, _ := newModel(t)
	dir := t.TempDir()

	m, _ = send(t, m, runes("a"))
	for _, r := range dir {
		m, _ = send(t, m, runes(string(r)))
	}
	m, cmd := send(t, m, enter)
	m, cmd = send(t, m, cmd())

	toast, ok := cmd().(mode.ShowToastMsg)
	require.True(t, ok)
	require.False(t, toast.Info)
	require.True(t, m.Records.Empty())
}

func TestRemove_Confirmed(t *testing.T) {
	a, b := gitDir(t, "alpha"), gitDir(t, "beta")
	m, s := newModel(t, a, b)

	m, _ = send(t, m, down, runes("d"))
	require.True(t, m.Modals.Is(mode.ConfirmModal(mode.PurposeRemoveRepo)))
	m, cmd := send(t, m, runes("y"))
	m, _ = send(t, m, cmd())

	require.Equal(t, 1, m.Records.Len())
	list, err := s.List(t.Context())
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestRemove_Cancelled(t *testing.T) {
	a := gitDir(t, "alpha")
	m, s := newModel(t, a)

	m, _ = send(t, m, down, runes("d"))
	m, cmd := send(t, m, runes("n"))
	require.Nil(t, cmd)
	require.True(t, m.Navigating())
	require.Empty(t, m.pending)

	list, err := s.List(t.Context())
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestCurrent_Marked(t *testing.T) {
	a, b := gitDir(t, "alpha"), gitDir(t, "beta")
	m, s := newModel(t, a, b)
	require.NoError(t, s.MarkOpened(t.Context(), b))

	m, _ = send(t, m, m.Init()())
	for _, r := range m.Records.Flatten() {
		require.Equal(t, r.Label == b, r.Current, r.Label)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := send(t, m, esc)
	require.Equal(t, mode.QuitMsg{}, cmd())

	_, cmd = send(t, m, runes("q"))
	require.Equal(t, mode.QuitMsg{}, cmd())
}

package graph

import (
	"errors"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/twig/internal/config"
	"github.com/zjrosen/twig/internal/git"
	"github.com/zjrosen/twig/internal/mocks"
	"github.com/zjrosen/twig/internal/mode"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	zone.NewGlobal()
	os.Exit(m.Run())
}

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func entries() []git.LogEntry {
	return []git.LogEntry{
		{Graph: "* ", Hash: "aaaaaaaaaaaa", ShortHash: "aaaaaaa", Message: "merge topic", Author: "ada", Time: now.Add(-2 * time.Hour)},
		{Graph: "|\\ "},
		{Graph: "| * ", Hash: "bbbbbbbbbbbb", ShortHash: "bbbbbbb", Message: "add feature", Author: "lin", Time: now.Add(-3 * 24 * time.Hour)},
	}
}

func newModel(t *testing.T) (Model, *mocks.MockClipboard) {
	t.Helper()
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(now).Maybe()
	clip := mocks.NewMockClipboard(t)
	svc := mode.Services{
		Git:       mocks.NewMockExecutor(t),
		Config:    config.Defaults(),
		Clipboard: clip,
		Opener:    mocks.NewMockOpener(t),
		Clock:     clock,
		Notifier:  mocks.NewMockNotifier(t),
	}
	c, _ := New(svc).SetSize(100, 20).Update(mode.SnapshotMsg{Log: entries(), HasLog: true})
	return c.(Model), clip
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

var (
	down = tea.KeyMsg{Type: tea.KeyDown}
	esc  = tea.KeyMsg{Type: tea.KeyEsc}
	yank = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}
)

func TestRow(t *testing.T) {
	e := entries()
	require.Equal(t, "* aaaaaaa merge topic ada 2h ago", row(e[0], now))
	require.Equal(t, "|\\", row(e[1], now))
	require.Equal(t, "| * bbbbbbb add feature lin 3d ago", row(e[2], now))
}

func TestView_KeepsContinuationRows(t *testing.T) {
	m, _ := newModel(t)
	v := m.View()

	require.Equal(t, 3, m.Records.Len())
	require.NotContains(t, v, "GRAPH")
	require.Contains(t, v, "merge topic")
	require.Contains(t, v, "|\\")
	require.Contains(t, v, "add feature")
}

func TestYank_CopiesFullHash(t *testing.T) {
	m, clip := newModel(t)
	clip.EXPECT().Copy("aaaaaaaaaaaa").Return(nil).Once()
	_, cmd := send(t, m, down, yank)
	require.NotNil(t, cmd)

	require.Equal(t, mode.ShowToastMsg{Message: "copied aaaaaaa", Info: true}, cmd())
}

func TestYank_ContinuationRowIgnored(t *testing.T) {
	m, clip := newModel(t)
	_, cmd := send(t, m, down, down, yank)

	require.Nil(t, cmd)
	clip.AssertNotCalled(t, "Copy", mock.Anything)
}

func TestYank_NeedsSelection(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := send(t, m, yank)
	require.Nil(t, cmd)
}

func TestYank_ClipboardFailure(t *testing.T) {
	m, clip := newModel(t)
	clip.EXPECT().Copy("aaaaaaaaaaaa").Return(errors.New("no display")).Once()
	_, cmd := send(t, m, down, yank)

	toast := cmd().(mode.ShowToastMsg)
	require.False(t, toast.Info)
	require.Contains(t, toast.Message, "no display")
}

func TestMenu_RunsYank(t *testing.T) {
	m, clip := newModel(t)
	clip.EXPECT().Copy("aaaaaaaaaaaa").Return(nil).Once()
	m, _ = send(t, m, down, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	require.False(t, m.Navigating())

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Navigating())
	require.NotNil(t, cmd)
	cmd()
}

func TestSnapshot_WithoutLogKeepsRows(t *testing.T) {
	m, _ := newModel(t)
	m, _ = send(t, m, mode.SnapshotMsg{Status: &git.StatusSnapshot{}})
	require.Equal(t, 3, m.Records.Len())

	m, _ = send(t, m, mode.SnapshotMsg{HasLog: true})
	require.True(t, m.Records.Empty())
}

func TestEsc_Exits(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := send(t, m, down, esc)
	require.Equal(t, mode.ExitMsg{}, cmd())
}

package loading

import (
	"os"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestStartFinish_OldestLabelWins(t *testing.T) {
	m := New()
	require.False(t, m.Active())
	require.Empty(t, m.View())

	m, cmd := m.Start("1", "pull")
	require.NotNil(t, cmd, "first operation starts the spinner")
	m, cmd = m.Start("2", "push")
	require.Nil(t, cmd)

	require.Equal(t, "pull", m.Label())
	require.Contains(t, m.View(), "pull")
	require.Contains(t, m.View(), "(+1)")

	m = m.Finish("1")
	require.Equal(t, "push", m.Label())

	m = m.Finish("unknown")
	require.True(t, m.Active())

	m = m.Finish("2")
	require.False(t, m.Active())
	require.Empty(t, m.View())
}

func TestUpdate_IdleStopsTicking(t *testing.T) {
	m := New()
	_, cmd := m.Update(spinner.TickMsg{})
	require.Nil(t, cmd)
}

func TestStart_DoesNotAliasAcrossCopies(t *testing.T) {
	base, _ := New().Start("1", "fetch")
	a := base.Finish("1")
	require.False(t, a.Active())
	require.True(t, base.Active())
}

package modal

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestInput_SubmitTrimmed(t *testing.T) {
	m := typeText(New(Config{Title: "New branch"}), "  feature/x ")
	require.Equal(t, "  feature/x ", m.Value())

	_, res, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, Result{Outcome: Submitted, Value: "feature/x"}, res)
}

func TestInput_BlankIsNotSubmitted(t *testing.T) {
	m := typeText(New(Config{Title: "Commit"}), "   ")
	_, res, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, Pending, res.Outcome)
}

func TestInput_EscapeCancels(t *testing.T) {
	m := typeText(New(Config{Title: "Commit"}), "wip")
	_, res, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, Cancelled, res.Outcome)
}

func TestInput_LettersAreText(t *testing.T) {
	m := typeText(New(Config{Title: "Commit"}), "yn")
	require.Equal(t, "yn", m.Value())
}

func TestInput_InitialValue(t *testing.T) {
	m := New(Config{Title: "Branch", Value: "main"})
	_, res, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "main", res.Value)
}

func TestConfirm_Keys(t *testing.T) {
	m := New(Config{Title: "Discard all changes?", Confirm: true, Danger: true})

	_, res, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.Equal(t, Submitted, res.Outcome)

	_, res, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, Submitted, res.Outcome)

	_, res, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	require.Equal(t, Cancelled, res.Outcome)

	_, res, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.Equal(t, Pending, res.Outcome)
}

func TestView_ContainsTitleAndMessage(t *testing.T) {
	v := New(Config{Title: "Discard a.go?", Message: "This cannot be undone.", Confirm: true}).View()
	require.Contains(t, v, "Discard a.go?")
	require.Contains(t, v, "This cannot be undone.")
	require.Contains(t, v, "y/enter")
}

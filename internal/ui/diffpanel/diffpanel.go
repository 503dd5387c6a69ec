// Package diffpanel shows one file's patch with syntax highlighting and
// lets the user page through its hunks.
package diffpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/twig/internal/diff"
	"github.com/zjrosen/twig/internal/highlight"
	"github.com/zjrosen/twig/internal/keys"
	"github.com/zjrosen/twig/internal/ui/styles"
)

const tabWidth = 4

// Result reports whether the panel asked to close.
type Result struct {
	Closed bool
}

// Model is the diff panel state.
type Model struct {
	path     string
	patch    diff.Patch
	found    bool
	cursor   diff.Cursor
	viewport viewport.Model
	width    int
	height   int
}

// New creates an empty panel.
func New() Model {
	return Model{viewport: viewport.New(1, 1)}
}

// Open shows the patch of path with every hunk. found is false when no
// patch matched, and the panel stays empty.
func (m Model) Open(path string, patch diff.Patch, found bool) Model {
	m.cursor = diff.Cursor{}
	m = m.show(path, patch, found)
	m.viewport.GotoTop()
	return m
}

// SetPatch swaps in the patch of a newly selected record, keeping the hunk
// cursor unless the new patch has fewer hunks than it points at. The scroll
// position survives a refresh of the same file.
func (m Model) SetPatch(path string, patch diff.Patch, found bool) Model {
	prevPath, prevCursor := m.path, m.cursor
	m.cursor = m.cursor.Fit(len(patch.Hunks))
	m = m.show(path, patch, found)
	if path != prevPath || m.cursor != prevCursor {
		m.viewport.GotoTop()
	}
	return m
}

func (m Model) show(path string, patch diff.Patch, found bool) Model {
	m.path = path
	m.patch = patch
	m.found = found
	if !found {
		m.patch = diff.Patch{}
	}
	m.refresh()
	return m
}

// Cursor returns the hunk cursor.
func (m Model) Cursor() diff.Cursor { return m.cursor }

// SetSize sets the panel size including its border.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.refresh()
	return m
}

// Update pages hunks with "," and ".", scrolls, and closes on escape.
func (m Model) Update(msg tea.Msg) (Model, Result) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		n := len(m.patch.Hunks)
		switch {
		case key.Matches(msg, keys.Diff.Close):
			return m, Result{Closed: true}
		case key.Matches(msg, keys.Diff.NextHunk):
			m.cursor = m.cursor.Next(n)
		case key.Matches(msg, keys.Diff.PrevHunk):
			m.cursor = m.cursor.Prev(n)
		case key.Matches(msg, keys.Diff.ScrollUp):
			m.viewport.HalfPageUp()
			return m, Result{}
		case key.Matches(msg, keys.Diff.ScrollDown):
			m.viewport.HalfPageDown()
			return m, Result{}
		default:
			return m, Result{}
		}
		m.refresh()
		m.viewport.GotoTop()
	case tea.MouseMsg:
		m.viewport, _ = m.viewport.Update(msg)
	}
	return m, Result{}
}

func (m *Model) refresh() {
	inner := max(m.width-2, 1)
	m.viewport.Width = inner
	m.viewport.Height = max(m.height-2, 1)
	m.viewport.SetContent(m.render(inner))
}

func (m Model) render(width int) string {
	var out []string
	offset := m.cursor.Index()
	for i, h := range m.patch.Visible(m.cursor) {
		number := i + 1
		if !m.cursor.All() {
			number = offset
		}
		if len(out) > 0 {
			out = append(out, "")
		}
		title := fmt.Sprintf("Hunk %d  %s", number, h.Header)
		out = append(out, styles.Truncate(styles.DiffHunkHeaderStyle.Render(title), width))
		for _, line := range RenderHunk(m.path, h) {
			out = append(out, styles.Truncate(line, width))
		}
	}
	return strings.Join(out, "\n")
}

// RenderHunk returns the styled display lines of h. Each line gets a
// colored gutter for its kind, syntax colors for its text, and word
// emphasis when it is a changed line paired with its replacement.
func RenderHunk(path string, h diff.Hunk) []string {
	lines := h.DisplayLines()
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = highlight.ExpandTabs(l.Text, tabWidth)
	}
	tokens := highlight.Lines(path, texts)

	emphasis := make(map[int][]diff.Segment)
	for removed, added := range diff.Pairs(lines) {
		if old, updated, ok := diff.WordDiff(texts[removed], texts[added]); ok {
			emphasis[removed] = old
			emphasis[added] = updated
		}
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		gutter, base, emph := lineStyles(l.Kind)
		var body string
		if segs, ok := emphasis[i]; ok {
			body = renderSegments(segs, base, emph)
		} else {
			body = renderTokens(tokens[i], base)
		}
		out[i] = gutter + body
	}
	return out
}

func lineStyles(kind diff.LineKind) (gutter string, base, emph lipgloss.Style) {
	switch kind {
	case diff.LineAdded:
		return styles.DiffAddedStyle.Render("▎"), styles.DiffAddedStyle, styles.DiffEmphasisAddedStyle
	case diff.LineRemoved:
		return styles.DiffRemovedStyle.Render("▎"), styles.DiffRemovedStyle, styles.DiffEmphasisRemoveStyle
	}
	return " ", styles.DiffContextStyle, styles.DiffContextStyle
}

func renderTokens(tokens []highlight.Token, base lipgloss.Style) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Render(base))
	}
	return b.String()
}

func renderSegments(segs []diff.Segment, base, changed lipgloss.Style) string {
	var b strings.Builder
	for _, s := range segs {
		if s.Changed {
			b.WriteString(changed.Render(s.Text))
		} else {
			b.WriteString(base.Render(s.Text))
		}
	}
	return b.String()
}

func (m Model) title() string {
	n := len(m.patch.Hunks)
	switch {
	case !m.found:
		return m.path
	case n <= 1:
		return m.path
	case m.cursor.All():
		return fmt.Sprintf("%s  all %d hunks", m.path, n)
	default:
		return fmt.Sprintf("%s  hunk %d/%d", m.path, m.cursor.Index(), n)
	}
}

// View draws the panel.
func (m Model) View() string {
	return styles.RenderPanel(m.viewport.View(), m.title(), m.width, m.height, true)
}

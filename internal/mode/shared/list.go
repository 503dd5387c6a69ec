package shared

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/twig/internal/nav"
	"github.com/zjrosen/twig/internal/records"
	"github.com/zjrosen/twig/internal/ui/styles"
)

// EmptyMessage is shown in place of a list with no records.
const EmptyMessage = "nothing to show"

// RowFunc renders a record's text, without the selection indicator.
type RowFunc func(r records.Record, selected bool, width int) string

// List renders a sectioned records.View with a selection and marks every
// row as a bubblezone so clicks can select it.
type List struct {
	// Prefix namespaces the zone ids of one view's rows.
	Prefix string
	// HideTitles suppresses section headers, for single-section lists.
	HideTitles bool
	Row        RowFunc
}

// RowZone is the zone id of record id.
func (l List) RowZone(id int) string {
	return fmt.Sprintf("%s-row-%d", l.Prefix, id)
}

// Render draws v into at most height lines, scrolled so the selected row is
// visible.
func (l List) Render(v records.View, sel nav.Selection, width, height int) string {
	if v.Empty() {
		return styles.EmptyStateStyle.Render(EmptyMessage)
	}

	var lines []string
	selectedLine := -1
	for _, sec := range v.Sections() {
		if !l.HideTitles {
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, styles.SectionTitleStyle.Render(strings.ToUpper(sec.Key)))
		}
		for _, r := range sec.Records {
			selected := sel.Is(r.ID)
			if selected {
				selectedLine = len(lines)
			}
			indicator := "  "
			if selected {
				indicator = styles.SelectionIndicatorStyle.Render("> ")
			}
			text := l.Row(r, selected, max(width-2, 1))
			if selected {
				text = styles.SelectedRowStyle.Render(text)
			}
			line := styles.Truncate(indicator+text, width)
			lines = append(lines, zone.Mark(l.RowZone(r.ID), line))
		}
	}
	return strings.Join(Window(lines, selectedLine, height), "\n")
}

// Clicked returns the id of the row under a left click.
func (l List) Clicked(msg tea.MouseMsg, v records.View) (int, bool) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return 0, false
	}
	for _, r := range v.Flatten() {
		if z := zone.Get(l.RowZone(r.ID)); z != nil && z.InBounds(msg) {
			return r.ID, true
		}
	}
	return 0, false
}

// Window returns the slice of lines of at most height rows that keeps focus
// in view, keeping focus roughly centered once the list scrolls.
func Window(lines []string, focus, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	start := 0
	if focus >= 0 {
		start = focus - height/2
	}
	start = max(min(start, len(lines)-height), 0)
	return lines[start : start+height]
}

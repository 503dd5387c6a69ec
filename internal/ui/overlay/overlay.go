// Package overlay draws a foreground block over a rendered background
// without disturbing the background's ANSI styling.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position is the anchor of the foreground within the background.
type Position int

const (
	Center Position = iota
	Top
	Bottom
)

// Place anchors fg at pos inside a width x height background, offset pad
// rows from the top or bottom edge.
func Place(fg, bg string, width, height int, pos Position, pad int) string {
	fgWidth := lipgloss.Width(fg)
	fgHeight := lipgloss.Height(fg)

	x := max((width-fgWidth)/2, 0)
	var y int
	switch pos {
	case Top:
		y = pad
	case Bottom:
		y = height - fgHeight - pad
	default:
		y = (height - fgHeight) / 2
	}
	return PlaceAt(fg, bg, x, max(y, 0), height)
}

// PlaceAt splices each foreground line into the background starting at
// column x of row y. The background is padded with blank rows up to height.
func PlaceAt(fg, bg string, x, y, height int) string {
	rows := strings.Split(bg, "\n")
	for len(rows) < height {
		rows = append(rows, "")
	}

	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		if row >= len(rows) {
			break
		}
		rows[row] = splice(rows[row], line, x)
	}
	return strings.Join(rows, "\n")
}

func splice(bg, fg string, x int) string {
	left := ansi.Truncate(bg, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	end := x + ansi.StringWidth(fg)
	var right string
	if end < ansi.StringWidth(bg) {
		right = ansi.TruncateLeft(bg, end, "")
	}
	return left + fg + right
}

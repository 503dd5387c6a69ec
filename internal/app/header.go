package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/twig/internal/git"
	"github.com/zjrosen/twig/internal/mode"
	"github.com/zjrosen/twig/internal/ui/styles"
)

var tabOrder = [...]mode.ViewID{mode.ViewStatus, mode.ViewBranches, mode.ViewGraph}

var divergenceStyle = lipgloss.NewStyle().Foreground(styles.StatusErrorColor)

// branchLine describes HEAD the way `git status` opens.
func branchLine(s *git.StatusSnapshot) string {
	if s == nil || s.Current == "" {
		return ""
	}
	if s.Detached {
		return fmt.Sprintf("HEAD detached at `%s`", s.Current)
	}
	line := fmt.Sprintf("On branch `%s`", s.Current)
	if s.Tracking != "" {
		line += fmt.Sprintf(" tracking `%s`", s.Tracking)
	}
	return line
}

func divergence(s *git.StatusSnapshot) string {
	if s == nil {
		return ""
	}
	switch {
	case s.Ahead > 0 && s.Behind > 0:
		return fmt.Sprintf("You're ahead by %d and behind by %d", s.Ahead, s.Behind)
	case s.Ahead > 0:
		return fmt.Sprintf("You're ahead by %d", s.Ahead)
	case s.Behind > 0:
		return fmt.Sprintf("You're behind by %d", s.Behind)
	}
	return ""
}

func tabs(active mode.ViewID) string {
	parts := make([]string, len(tabOrder))
	for i, v := range tabOrder {
		if v == active {
			parts[i] = styles.CurrentBranchStyle.Bold(true).Render(v.String())
		} else {
			parts[i] = styles.MutedStyle.Render(v.String())
		}
	}
	return strings.Join(parts, styles.MutedStyle.Render(" · "))
}

// header renders the two header rows: repository, tabs and progress on the
// first, branch and divergence on the second.
func header(width int, repo string, s *git.StatusSnapshot, active mode.ViewID, progress string) string {
	left := styles.HeaderStyle.Render(repo) + " " + tabs(active)
	if progress != "" {
		gap := max(width-lipgloss.Width(left)-lipgloss.Width(progress), 1)
		left += strings.Repeat(" ", gap) + progress
	}

	second := branchLine(s)
	if d := divergence(s); d != "" {
		second += "  " + divergenceStyle.Render(d)
	}
	return styles.Truncate(left, width) + "\n" + styles.Truncate(" "+second, width)
}

// headerHeight is the number of rows header renders.
const headerHeight = 2

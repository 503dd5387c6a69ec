// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#CCCCCC"}
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"}
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#696969"} // hints, help, hashes

	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#696969"}

	// Accent marks the selection, focused borders and the current branch.
	AccentColor lipgloss.TerminalColor = lipgloss.Color("#7D56F4")

	// Diff line colors
	DiffAddedColor   lipgloss.TerminalColor = lipgloss.Color("#98C379")
	DiffRemovedColor lipgloss.TerminalColor = lipgloss.Color("#E06C75")
	DiffHeaderColor                         = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#56B6C2"}

	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#B7791F", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#D64545", Dark: "#FF8787"}

	ToastBorderErrorColor = StatusErrorColor
	ToastBorderInfoColor  = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#54A0FF"}

	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#8C8C8C"}

	SpinnerColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#FFFFFF"}
)

var (
	SelectionIndicatorStyle lipgloss.Style
	SelectedRowStyle        lipgloss.Style
	SectionTitleStyle       lipgloss.Style
	CurrentBranchStyle      lipgloss.Style
	MutedStyle              lipgloss.Style
	EmptyStateStyle         lipgloss.Style
	HeaderStyle             lipgloss.Style
	HelpKeyStyle            lipgloss.Style
	HelpDescStyle           lipgloss.Style
	DiffAddedStyle          lipgloss.Style
	DiffRemovedStyle        lipgloss.Style
	DiffContextStyle        lipgloss.Style
	DiffHunkHeaderStyle     lipgloss.Style
	DiffEmphasisAddedStyle  lipgloss.Style
	DiffEmphasisRemoveStyle lipgloss.Style
	ErrorStyle              lipgloss.Style
)

func init() { rebuild() }

func rebuild() {
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentColor)
	SelectedRowStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	SectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextSecondaryColor)
	CurrentBranchStyle = lipgloss.NewStyle().Foreground(AccentColor)
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	EmptyStateStyle = lipgloss.NewStyle().Foreground(TextMutedColor).Italic(true).Padding(1, 2)
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentColor).Padding(0, 1)
	HelpKeyStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	HelpDescStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	DiffAddedStyle = lipgloss.NewStyle().Foreground(DiffAddedColor)
	DiffRemovedStyle = lipgloss.NewStyle().Foreground(DiffRemovedColor)
	DiffContextStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	DiffHunkHeaderStyle = lipgloss.NewStyle().Foreground(DiffHeaderColor)
	DiffEmphasisAddedStyle = lipgloss.NewStyle().Foreground(DiffAddedColor).Bold(true).Underline(true)
	DiffEmphasisRemoveStyle = lipgloss.NewStyle().Foreground(DiffRemovedColor).Bold(true).Strikethrough(true)

	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true).Padding(1, 2)
}

// ApplyTheme replaces the configurable colors and rebuilds the derived
// styles. Empty strings keep the current value.
func ApplyTheme(accent, added, removed string) {
	if accent != "" {
		AccentColor = lipgloss.Color(accent)
	}
	if added != "" {
		DiffAddedColor = lipgloss.Color(added)
	}
	if removed != "" {
		DiffRemovedColor = lipgloss.Color(removed)
	}
	rebuild()
}

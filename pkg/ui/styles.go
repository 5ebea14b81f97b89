package ui

import "github.com/charmbracelet/lipgloss"

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Consistent spacing, colors, and visual language
// ══════════════════════════════════════════════════════════════════════════════

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
	SpaceLG = 4
)

// Dracula-inspired palette
var (
	ColorBg          = lipgloss.Color("#282A36")
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorMuted       = lipgloss.Color("#6272A4")

	ColorPrimary = lipgloss.Color("#BD93F9")
	ColorInfo    = lipgloss.Color("#8BE9FD")
	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorWarning = lipgloss.Color("#FFB86C")
	ColorDanger  = lipgloss.Color("#FF5555")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorBgHighlight).
			Padding(0, SpaceXS)

	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBg).
			Background(ColorPrimary).
			Padding(0, SpaceXS)

	sentinelBadgeStyle = badgeStyle.Background(ColorDanger)

	orientationStyle = lipgloss.NewStyle().Foreground(ColorInfo)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, SpaceXS)

	paneTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	rulerActiveStyle   = lipgloss.NewStyle().Foreground(ColorBg).Background(ColorSuccess).Bold(true)
	rulerInactiveStyle = lipgloss.NewStyle().Foreground(ColorText).Background(ColorBgHighlight)

	footerStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	statusStyle = lipgloss.NewStyle().Foreground(ColorWarning)

	promptStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorWarning).
			Foreground(ColorText).
			Padding(0, SpaceSM)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, SpaceSM)
)

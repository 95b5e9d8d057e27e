package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/dayflow/internal/model"
	"github.com/nhle/dayflow/internal/planner"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for the top title bar.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// PanelStyle wraps full-screen overlay content such as the help view.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// TimeStyle renders the HH:MM-HH:MM column of an agenda row.
var TimeStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// HelpStyle is used for keyboard shortcut hints and secondary text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// NoticeStyle highlights one-line notices such as the hobby rest day.
var NoticeStyle = lipgloss.NewStyle().
	Foreground(ColorMagenta).
	Italic(true)

// SlotStyle returns a color-coded style for an agenda row of the given
// slot kind.
func SlotStyle(kind planner.SlotKind) lipgloss.Style {
	base := lipgloss.NewStyle()

	switch kind {
	case planner.SlotTask:
		return base.Foreground(ColorWhite)
	case planner.SlotBreak:
		return base.Foreground(ColorGreen).Italic(true)
	case planner.SlotFixed:
		return base.Foreground(ColorBlue).Bold(true)
	case planner.SlotReward:
		return base.Foreground(ColorMagenta)
	case planner.SlotOngoing:
		return base.Foreground(ColorYellow)
	case planner.SlotOverlap:
		return base.Foreground(ColorOrange)
	case planner.SlotPassed:
		return base.Foreground(ColorSubtle).Strikethrough(true)
	case planner.SlotFree:
		return base.Foreground(ColorGray).Faint(true)
	default:
		return base.Foreground(ColorGray)
	}
}

// PriorityStyle returns a color-coded style for a goal priority.
func PriorityStyle(priority string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch priority {
	case model.PriorityCritical:
		return base.Foreground(ColorRed)
	case model.PriorityHigh:
		return base.Foreground(ColorOrange)
	case model.PriorityMedium:
		return base.Foreground(ColorYellow)
	case model.PriorityLow:
		return base.Foreground(ColorBlue)
	default:
		return base.Foreground(ColorGray)
	}
}

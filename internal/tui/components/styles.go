// Package components provides the board's rendering components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/shelf/internal/config/colors"
)

// Colors the components read at render time, set by InitStyles
var scheme colors.ColorScheme

// These are cached to avoid recomputing on every redraw.
var (
	// LaneStyle defines the appearance of board lanes (columns and the unassigned pool)
	LaneStyle lipgloss.Style

	// CardStyle defines the appearance of game cards
	CardStyle lipgloss.Style

	// TitleStyle defines lane titles and the app header
	TitleStyle lipgloss.Style

	// SubtleStyle is for hints and empty states
	SubtleStyle lipgloss.Style

	// ScoreStyle renders score badges
	ScoreStyle lipgloss.Style

	// TagStyle renders tag chips
	TagStyle lipgloss.Style

	// FormBoxStyle wraps the game form
	FormBoxStyle lipgloss.Style

	// CreateInputBoxStyle wraps the new column form (green border)
	CreateInputBoxStyle lipgloss.Style

	// EditInputBoxStyle wraps the rename column form (blue border)
	EditInputBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle wraps deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// DetailBoxStyle wraps the game detail modal
	DetailBoxStyle lipgloss.Style

	// HelpBoxStyle wraps the help screen
	HelpBoxStyle lipgloss.Style

	InfoBannerStyle    lipgloss.Style
	WarningBannerStyle lipgloss.Style
	ErrorBannerStyle   lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(c colors.ColorScheme) {
	scheme = c

	LaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.ColumnBorder)).
		PaddingLeft(1).
		PaddingRight(1).
		Width(LaneWidth)

	CardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(c.CardBorder)).
		BorderBackground(lipgloss.Color(c.CardBackground)).
		Background(lipgloss.Color(c.CardBackground)).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle)).
		Italic(true)

	ScoreStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Score)).
		Bold(true)

	TagStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Tag))

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Accent)).
		Padding(1, 2)

	CreateInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Create)).
		Padding(1)

	EditInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Edit)).
		Padding(1)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Delete)).
		Padding(1)

	DetailBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Accent)).
		Padding(0, 1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Edit)).
		Padding(1, 2)

	InfoBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.InfoFg)).
		Background(lipgloss.Color(c.InfoBg)).
		Bold(true).
		Padding(0, 1)

	WarningBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.WarningFg)).
		Background(lipgloss.Color(c.WarningBg)).
		Bold(true).
		Padding(0, 1)

	ErrorBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.ErrorFg)).
		Background(lipgloss.Color(c.ErrorBg)).
		Bold(true).
		Padding(0, 1)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle)).
		Align(lipgloss.Center)

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(c.StatusBarBg)).
		Foreground(lipgloss.Color(c.StatusBarText))
}

func init() {
	InitStyles(*colors.Default())
}

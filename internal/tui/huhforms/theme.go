// Package huhforms builds the huh forms used by the board TUI.
package huhforms

import (
	"image/color"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/shelf/internal/config/colors"
)

// formColors are the scheme colors a form uses
type formColors struct {
	accent, title, subtle, normal, danger, confirm, background color.Color
}

func newFormColors(cs colors.ColorScheme) formColors {
	return formColors{
		accent:     lipgloss.Color(cs.Accent),
		title:      lipgloss.Color(cs.Title),
		subtle:     lipgloss.Color(cs.Subtle),
		normal:     lipgloss.Color(cs.Normal),
		danger:     lipgloss.Color(cs.Delete),
		confirm:    lipgloss.Color(cs.Create),
		background: lipgloss.Color(cs.Background),
	}
}

// CreateShelfTheme creates a huh theme from the board color scheme
func CreateShelfTheme(cs colors.ColorScheme) huh.Theme {
	c := newFormColors(cs)

	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)
		styleFocused(&t.Focused, c)

		// Blurred fields keep their colors but drop the border and dim the title
		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(c.subtle).Bold(false)
		return t
	})
}

func styleFocused(f *huh.FieldStyles, c formColors) {
	f.Base = f.Base.BorderForeground(c.accent)
	f.Title = f.Title.Foreground(c.title).Bold(true)
	f.Description = f.Description.Foreground(c.subtle)

	// Validation messages come from the board's own error values
	f.ErrorIndicator = f.ErrorIndicator.Foreground(c.danger)
	f.ErrorMessage = f.ErrorMessage.Foreground(c.danger)

	f.SelectedOption = f.SelectedOption.Foreground(c.confirm)
	f.UnselectedOption = f.UnselectedOption.Foreground(c.normal)
	f.FocusedButton = f.FocusedButton.Foreground(c.background).Background(c.accent).Bold(true)
	f.BlurredButton = f.BlurredButton.Foreground(c.normal).Background(c.subtle)

	f.TextInput.Cursor = f.TextInput.Cursor.Foreground(c.accent)
	f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(c.subtle)
	f.TextInput.Prompt = f.TextInput.Prompt.Foreground(c.accent)
	f.TextInput.Text = f.TextInput.Text.Foreground(c.normal)
}

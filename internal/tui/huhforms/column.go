package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/shelf/internal/services/column"
)

// CreateColumnForm creates a huh form for adding or renaming a column.
// The form has a single title field and saves on completion.
func CreateColumnForm(title *string, isEdit bool) *huh.Form {
	label := "New Column"
	if isEdit {
		label = "Rename Column"
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("title").
			Title(label).
			Placeholder("Enter column title...").
			Validate(func(s string) error {
				_, err := column.ValidateTitle(s)
				return err
			}).
			Value(title),
	))
}

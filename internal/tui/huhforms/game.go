package huhforms

import (
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/shelf/internal/services/game"
	"github.com/thenoetrevino/shelf/internal/tui/state"
)

// GameFormValues are the pointers a game form writes into
type GameFormValues struct {
	Title       *string
	Description *string
	Review      *string
	Score       *string
	Tags        *string
	ImageURL    *string
}

// CreateGameForm creates a huh form for adding or editing a game. Every
// field validates inline with the same rules the board applies on save.
func CreateGameForm(v GameFormValues, isEdit bool, reviewLines int) *huh.Form {
	heading := "New Game"
	if isEdit {
		heading = "Edit Game"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title(heading).
			Description("Title").
			Placeholder("Enter game title...").
			Validate(required(game.ErrEmptyTitle)).
			Value(v.Title),
		huh.NewInput().
			Key("description").
			Title("Description").
			Placeholder("One line about the game...").
			Validate(required(game.ErrEmptyDescription)).
			Value(v.Description),
		huh.NewText().
			Key("review").
			Title("Review").
			Description("Markdown is rendered in the detail view").
			Placeholder("Write your review...").
			CharLimit(10000).
			Lines(reviewLines).
			Validate(required(game.ErrEmptyReview)).
			Value(v.Review),
		huh.NewInput().
			Key("score").
			Title("Score").
			Description("0 to 10").
			Validate(validateScore).
			Value(v.Score),
		huh.NewInput().
			Key("tags").
			Title("Tags").
			Description("Comma separated").
			Placeholder("JRPG, SNES").
			Value(v.Tags),
		huh.NewInput().
			Key("image").
			Title("Image URL").
			Placeholder("https://...").
			Validate(game.ValidateImageURL).
			Value(v.ImageURL),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(reviewKeyMap()).WithShowHelp(false)
}

func required(err error) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return err
		}
		return nil
	}
}

func validateScore(s string) error {
	score, err := state.ParseScore(s)
	if err != nil {
		return err
	}
	return game.ValidateScore(score)
}

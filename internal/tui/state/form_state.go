package state

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/shelf/internal/models"
)

// FormState holds the active huh form and the values it writes into.
// huh fields bind to pointers, so the form edits these strings in place.
type FormState struct {
	GameForm   *huh.Form
	ColumnForm *huh.Form

	// Game form fields; score and tags are typed as text
	FormTitle       string
	FormDescription string
	FormReview      string
	FormScore       string
	FormTags        string
	FormImageURL    string

	// EditingGameID is empty when the form creates a game
	EditingGameID string
	// TargetColumnID is the column a new game lands in; empty means unassigned
	TargetColumnID string

	// Column form field
	FormColumnTitle string
	// EditingColumnID is empty when the form creates a column
	EditingColumnID string
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// LoadGame fills the game fields from an existing game, or from defaults when
// g is nil.
func (s *FormState) LoadGame(g *models.Game, defaultScore float64) {
	if g == nil {
		s.FormTitle = ""
		s.FormDescription = ""
		s.FormReview = ""
		s.FormScore = FormatScore(defaultScore)
		s.FormTags = ""
		s.FormImageURL = ""
		s.EditingGameID = ""
		return
	}
	s.FormTitle = g.Title
	s.FormDescription = g.Description
	s.FormReview = g.Review
	s.FormScore = FormatScore(g.Score)
	s.FormTags = strings.Join(g.Tags, ", ")
	s.FormImageURL = g.ImageURL
	s.EditingGameID = g.ID
}

// GameFields converts the typed form values into game fields. Tags are split
// on commas and trimmed.
func (s *FormState) GameFields() (models.GameFields, error) {
	score, err := ParseScore(s.FormScore)
	if err != nil {
		return models.GameFields{}, err
	}

	return models.GameFields{
		Title:       strings.TrimSpace(s.FormTitle),
		Description: strings.TrimSpace(s.FormDescription),
		Review:      strings.TrimSpace(s.FormReview),
		Score:       score,
		Tags:        SplitTags(s.FormTags),
		ImageURL:    strings.TrimSpace(s.FormImageURL),
	}, nil
}

// ClearGameForm drops the game form and its values.
func (s *FormState) ClearGameForm() {
	s.GameForm = nil
	s.LoadGame(nil, 0)
	s.FormScore = ""
	s.TargetColumnID = ""
}

// ClearColumnForm drops the column form and its values.
func (s *FormState) ClearColumnForm() {
	s.ColumnForm = nil
	s.FormColumnTitle = ""
	s.EditingColumnID = ""
}

// FormatScore renders a score the way the form shows it
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 1, 64)
}

// ParseScore reads the score field
func ParseScore(raw string) (float64, error) {
	score, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("score must be a number")
	}
	return score, nil
}

// SplitTags splits a comma separated list, dropping blank entries
func SplitTags(raw string) []string {
	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

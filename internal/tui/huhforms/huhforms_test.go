package huhforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/shelf/internal/config/colors"
	"github.com/thenoetrevino/shelf/internal/services/game"
)

func TestValidateScore(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"whole", "8", false},
		{"decimal", " 9.5 ", false},
		{"zero", "0", false},
		{"ten", "10", false},
		{"too high", "10.5", true},
		{"negative", "-1", true},
		{"not a number", "great", true},
		{"blank", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateScore(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequired(t *testing.T) {
	check := required(game.ErrEmptyReview)
	assert.ErrorIs(t, check("   "), game.ErrEmptyReview)
	assert.NoError(t, check("Loved it"))
}

func TestCreateForms(t *testing.T) {
	var title, desc, review, score, tags, image string
	form := CreateGameForm(GameFormValues{
		Title: &title, Description: &desc, Review: &review,
		Score: &score, Tags: &tags, ImageURL: &image,
	}, false, 6)
	assert.NotNil(t, form)

	var columnTitle string
	assert.NotNil(t, CreateColumnForm(&columnTitle, true))

	assert.NotNil(t, CreateShelfTheme(*colors.Default()))
	assert.NotNil(t, reviewKeyMap())
}

func TestReviewKeyMap_ShiftEnterBreaksLine(t *testing.T) {
	km := reviewKeyMap()
	assert.Contains(t, km.Text.NewLine.Keys(), "shift+enter")
	assert.NotContains(t, km.Text.NewLine.Keys(), "enter")
}

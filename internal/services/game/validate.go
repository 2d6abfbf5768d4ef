package game

import (
	"math"
	"net/url"
	"strings"

	"github.com/thenoetrevino/shelf/internal/models"
)

// Validate applies the game form rules and returns the fields to save.
// Blank tags are dropped; everything else is passed through unchanged.
func Validate(f models.GameFields) (models.GameFields, error) {
	if strings.TrimSpace(f.Title) == "" {
		return f, ErrEmptyTitle
	}
	if strings.TrimSpace(f.Description) == "" {
		return f, ErrEmptyDescription
	}
	if strings.TrimSpace(f.Review) == "" {
		return f, ErrEmptyReview
	}
	if err := ValidateScore(f.Score); err != nil {
		return f, err
	}
	if err := ValidateImageURL(f.ImageURL); err != nil {
		return f, err
	}

	f.Tags = StripBlankTags(f.Tags)
	return f, nil
}

// ValidateScore checks the 0-10 inclusive range
func ValidateScore(score float64) error {
	if score < models.MinScore || score > models.MaxScore || math.IsNaN(score) {
		return ErrScoreOutOfRange
	}
	return nil
}

// ValidateImageURL accepts an empty string or an absolute http(s) URL
func ValidateImageURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidImageURL
	}
	return nil
}

// StripBlankTags drops tags that are empty or whitespace only
func StripBlankTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag) != "" {
			out = append(out, tag)
		}
	}
	return out
}

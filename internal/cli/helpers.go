package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shelf/internal/services/board"
	"github.com/thenoetrevino/shelf/internal/services/column"
	"github.com/thenoetrevino/shelf/internal/services/game"
)

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

// Formatter builds an OutputFormatter from --json and --quiet
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// Open resolves the CLI for cmd, reporting initialization failures
func Open(cmd *cobra.Command, formatter *OutputFormatter) (*CLI, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cliInstance, err := GetCLIFromContext(ctx)
	if err != nil {
		return nil, formatter.Fail(ExitError, "INITIALIZATION_ERROR", err)
	}
	return cliInstance, nil
}

// ParseTags splits a comma separated tag list, trimming each tag and
// dropping blanks
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return game.StripBlankTags(parts)
}

// MatchTag reports whether any tag matches the glob pattern,
// case-insensitively
func MatchTag(pattern string, tags []string) (bool, error) {
	pattern = strings.ToLower(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return false, fmt.Errorf("invalid tag pattern %q", pattern)
	}
	for _, tag := range tags {
		if ok, _ := doublestar.Match(pattern, strings.ToLower(tag)); ok {
			return true, nil
		}
	}
	return false, nil
}

// Confirm asks a y/N question on r
func Confirm(r io.Reader, prompt string) bool {
	fmt.Print(prompt + " (y/N): ")
	line, _ := bufio.NewReader(r).ReadString('\n')
	response := strings.ToLower(strings.TrimSpace(line))
	return response == "y" || response == "yes"
}

// ValidationCode maps a domain error to its error code and exit code
func ValidationCode(err error) (string, int) {
	switch {
	case errors.Is(err, game.ErrEmptyTitle), errors.Is(err, column.ErrEmptyTitle):
		return "EMPTY_TITLE", ExitValidation
	case errors.Is(err, game.ErrEmptyDescription):
		return "EMPTY_DESCRIPTION", ExitValidation
	case errors.Is(err, game.ErrEmptyReview):
		return "EMPTY_REVIEW", ExitValidation
	case errors.Is(err, game.ErrScoreOutOfRange):
		return "INVALID_SCORE", ExitValidation
	case errors.Is(err, game.ErrInvalidImageURL):
		return "INVALID_IMAGE_URL", ExitValidation
	case errors.Is(err, board.ErrAlreadyAssigned):
		return "ALREADY_ASSIGNED", ExitValidation
	case errors.Is(err, board.ErrGameNotFound):
		return "GAME_NOT_FOUND", ExitNotFound
	case errors.Is(err, board.ErrColumnNotFound):
		return "COLUMN_NOT_FOUND", ExitNotFound
	default:
		return "STORE_ERROR", ExitError
	}
}

// FailDomain reports a domain error with the code ValidationCode picks
func (f *OutputFormatter) FailDomain(err error) error {
	code, exitCode := ValidationCode(err)
	return f.Fail(exitCode, code, err)
}

package board

import (
	"context"

	"github.com/thenoetrevino/shelf/internal/models"
)

// GameRepository is the item store the manager orchestrates.
// Implemented by *game.Repository.
type GameRepository interface {
	Create(ctx context.Context, fields models.GameFields) (string, error)
	Update(ctx context.Context, id string, fields models.GameFields) error
	Delete(ctx context.Context, id string) error
	Get(id string) (*models.Game, bool)
	Exists(id string) bool
	All() []*models.Game
	Reload(ctx context.Context)
}

// ColumnRepository is the column store the manager orchestrates.
// Implemented by *column.Repository.
type ColumnRepository interface {
	Create(ctx context.Context, title string) (string, error)
	Update(ctx context.Context, id, title string) error
	Delete(ctx context.Context, id string) ([]string, error)
	AppendMember(ctx context.Context, columnID, gameID string) error
	RemoveMember(ctx context.Context, columnID, gameID string) error
	TransferMember(ctx context.Context, sourceID, targetID, gameID string) error
	PurgeMember(ctx context.Context, gameID string) error
	All() []*models.Column
	Get(id string) (*models.Column, bool)
	OwnerOf(gameID string) (string, bool)
	Reload(ctx context.Context)
}

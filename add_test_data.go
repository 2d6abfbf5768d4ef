//go:build ignore
// +build ignore

// Helper script to seed the configured store with sample games
// Run with: go run add_test_data.go

package main

import (
	"context"
	"log"

	"github.com/thenoetrevino/shelf/internal/app"
	"github.com/thenoetrevino/shelf/internal/config"
	"github.com/thenoetrevino/shelf/internal/models"
	"github.com/thenoetrevino/shelf/internal/services/board"
)

type sample struct {
	column string
	fields models.GameFields
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	a, err := app.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer func() { _ = a.Close() }()

	samples := []sample{
		{"storytelling", models.GameFields{
			Title:  "Xenogears",
			Score:  9.5,
			Tags:   []string{"square", "mecha", "ps1"},
			Review: "A sprawling story about memory, faith and giant robots.",
		}},
		{"storytelling", models.GameFields{
			Title:  "Planescape: Torment",
			Score:  9.0,
			Tags:   []string{"crpg"},
			Review: "What can change the nature of a man?",
		}},
		{"gameplay", models.GameFields{
			Title:  "Chrono Trigger",
			Score:  9.8,
			Tags:   []string{"square", "snes", "time-travel"},
			Review: "Combo techs and no random battles.",
		}},
		{"classics", models.GameFields{
			Title:  "Final Fantasy VI",
			Score:  9.6,
			Tags:   []string{"square", "snes"},
			Review: "The opera scene still holds up.",
		}},
		{board.UnassignedSource, models.GameFields{
			Title: "Suikoden II",
			Score: 8.5,
			Tags:  []string{"konami"},
		}},
	}

	for _, s := range samples {
		id, err := a.Board.SaveGame(ctx, board.SaveGameRequest{
			Fields:         s.fields,
			TargetColumnID: s.column,
		})
		if err != nil {
			log.Printf("Error creating game '%s': %v", s.fields.Title, err)
			continue
		}
		log.Printf("Created game %s: %s", id, s.fields.Title)
	}
}

// Package content is the keyed store of random tables and entity templates,
// partitioned into decks.
package content

//go:generate mockgen -destination=mock/mock_repository.go -package=mockcontent -source=repository.go

import (
	"context"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
)

// Repository looks up tables and templates by deck and name.
// Lookups match the canonical name first and fall back to the display name.
type Repository interface {
	// GetTable returns the named table or a not found error
	GetTable(ctx context.Context, deck, name string) (*entities.WeightedTable, error)

	// GetEntity returns a copy of the named template or a not found error
	GetEntity(ctx context.Context, deck, name string) (*entities.EntityTemplate, error)

	// Decks lists the deck names the repository holds
	Decks(ctx context.Context) ([]string, error)
}

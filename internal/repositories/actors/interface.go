package actors

//go:generate mockgen -destination=mock/mock.go -package=mockactors -source=interface.go

import (
	"context"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
)

// Repository defines the interface for actor persistence
type Repository interface {
	// Create stores a new actor, assigning an ID when it has none
	Create(ctx context.Context, actor *entities.Actor) error

	// Get retrieves an actor by ID
	Get(ctx context.Context, id string) (*entities.Actor, error)

	// ListByOwner retrieves every actor belonging to a player
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Actor, error)

	// Update replaces an existing actor
	Update(ctx context.Context, actor *entities.Actor) error

	// Delete removes an actor
	Delete(ctx context.Context, id string) error

	// AttachPossessions adds items to an actor's possessions and recomputes its derived state
	AttachPossessions(ctx context.Context, actorID string, items []*entities.Item) (*entities.Actor, error)
}

package actors

import (
	"context"
	"sync"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the actor repository
// Useful for testing and the CLI without Redis
type InMemoryRepository struct {
	mu            sync.RWMutex
	actors        map[string]*entities.Actor
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// InMemoryConfig holds configuration for the in-memory repository
type InMemoryConfig struct {
	UUIDGenerator uuid.Generator // Optional
	TimeProvider  TimeProvider   // Optional
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository(cfg *InMemoryConfig) *InMemoryRepository {
	repo := &InMemoryRepository{
		actors:        make(map[string]*entities.Actor),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
		timeProvider:  RealTimeProvider{},
	}
	if cfg != nil && cfg.UUIDGenerator != nil {
		repo.uuidGenerator = cfg.UUIDGenerator
	}
	if cfg != nil && cfg.TimeProvider != nil {
		repo.timeProvider = cfg.TimeProvider
	}
	return repo
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new actor
func (r *InMemoryRepository) Create(_ context.Context, actor *entities.Actor) error {
	if actor == nil {
		return cairnerr.InvalidArgument("actor cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if actor.ID == "" {
		actor.ID = r.uuidGenerator.New()
	}
	if _, exists := r.actors[actor.ID]; exists {
		return cairnerr.AlreadyExistsf("actor with ID '%s' already exists", actor.ID).
			WithMeta("actor_id", actor.ID)
	}

	assignItemIDs(actor.Items, r.uuidGenerator)
	now := r.timeProvider.Now()
	actor.CreatedAt = now
	actor.UpdatedAt = now

	// Store a copy to avoid external modifications
	r.actors[actor.ID] = actor.Clone()
	return nil
}

// Get retrieves an actor by ID
func (r *InMemoryRepository) Get(_ context.Context, id string) (*entities.Actor, error) {
	if id == "" {
		return nil, cairnerr.InvalidArgument("actor ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	actor, exists := r.actors[id]
	if !exists {
		return nil, cairnerr.NotFoundf("actor with ID '%s' not found", id).
			WithMeta("actor_id", id)
	}
	return actor.Clone(), nil
}

// ListByOwner retrieves every actor belonging to ownerID
func (r *InMemoryRepository) ListByOwner(_ context.Context, ownerID string) ([]*entities.Actor, error) {
	if ownerID == "" {
		return nil, cairnerr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*entities.Actor
	for _, actor := range r.actors {
		if actor.OwnerID == ownerID {
			result = append(result, actor.Clone())
		}
	}
	sortActors(result)
	return result, nil
}

// Update replaces an existing actor
func (r *InMemoryRepository) Update(_ context.Context, actor *entities.Actor) error {
	if actor == nil {
		return cairnerr.InvalidArgument("actor cannot be nil")
	}
	if actor.ID == "" {
		return cairnerr.InvalidArgument("actor ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.actors[actor.ID]
	if !exists {
		return cairnerr.NotFoundf("actor with ID '%s' not found", actor.ID).
			WithMeta("actor_id", actor.ID)
	}

	assignItemIDs(actor.Items, r.uuidGenerator)
	actor.CreatedAt = existing.CreatedAt
	actor.UpdatedAt = r.timeProvider.Now()
	r.actors[actor.ID] = actor.Clone()
	return nil
}

// Delete removes an actor
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	if id == "" {
		return cairnerr.InvalidArgument("actor ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actors[id]; !exists {
		return cairnerr.NotFoundf("actor with ID '%s' not found", id).
			WithMeta("actor_id", id)
	}
	delete(r.actors, id)
	return nil
}

// AttachPossessions adds items to an actor
func (r *InMemoryRepository) AttachPossessions(_ context.Context, actorID string, items []*entities.Item) (*entities.Actor, error) {
	if actorID == "" {
		return nil, cairnerr.InvalidArgument("actor ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	actor, exists := r.actors[actorID]
	if !exists {
		return nil, cairnerr.NotFoundf("actor with ID '%s' not found", actorID).
			WithMeta("actor_id", actorID)
	}

	attach(actor, items, r.uuidGenerator)
	actor.UpdatedAt = r.timeProvider.Now()
	return actor.Clone(), nil
}

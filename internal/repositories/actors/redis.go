package actors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/uuid"
)

// ActorData represents the serialized form of an actor in Redis
type ActorData struct {
	ID          string             `json:"id"`
	OwnerID     string             `json:"owner_id"`
	Name        string             `json:"name"`
	Type        entities.ActorType `json:"type"`
	Abilities   entities.Abilities `json:"abilities"`
	HP          entities.Score     `json:"hp"`
	Gold        int                `json:"gold"`
	Age         int                `json:"age"`
	BaseArmor   int                `json:"base_armor"`
	Armor       int                `json:"armor"`
	SlotsUsed   float64            `json:"slots_used"`
	Encumbered  bool               `json:"encumbered"`
	Deprived    bool               `json:"deprived"`
	Background  string             `json:"background"`
	Biography   string             `json:"biography"`
	Description string             `json:"description"`
	Items       []*entities.Item   `json:"items"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
}

// NewRedisRepository creates a new Redis-backed actor repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	repo := &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
	}
	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if repo.timeProvider == nil {
		repo.timeProvider = RealTimeProvider{}
	}
	return repo
}

// key generates the Redis key for an actor
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("actor:%s", id)
}

// ownerActorsKey generates the Redis key for an owner's actor set
func (r *redisRepo) ownerActorsKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:actors", ownerID)
}

// Create stores a new actor
func (r *redisRepo) Create(ctx context.Context, actor *entities.Actor) error {
	if actor == nil {
		return cairnerr.InvalidArgument("actor cannot be nil")
	}
	if actor.ID == "" {
		actor.ID = r.uuidGenerator.New()
	}

	exists, err := r.client.Exists(ctx, r.key(actor.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check actor existence: %w", err)
	}
	if exists > 0 {
		return cairnerr.AlreadyExistsf("actor with ID '%s' already exists", actor.ID).
			WithMeta("actor_id", actor.ID)
	}

	assignItemIDs(actor.Items, r.uuidGenerator)
	now := r.timeProvider.Now()
	actor.CreatedAt = now
	actor.UpdatedAt = now

	return r.write(ctx, actor, "")
}

// Get retrieves an actor by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Actor, error) {
	if id == "" {
		return nil, cairnerr.InvalidArgument("actor ID is required")
	}

	data, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toActor(data), nil
}

// ListByOwner retrieves every actor belonging to ownerID.
// IDs left in the owner index by an interrupted delete are skipped.
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Actor, error) {
	if ownerID == "" {
		return nil, cairnerr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerActorsKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list actor IDs: %w", err)
	}

	loaded := make([]*entities.Actor, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			actor, err := r.Get(gctx, id)
			if err != nil {
				if cairnerr.IsNotFound(err) {
					return nil
				}
				return fmt.Errorf("failed to get actor %s: %w", id, err)
			}
			loaded[i] = actor
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]*entities.Actor, 0, len(loaded))
	for _, actor := range loaded {
		if actor != nil {
			result = append(result, actor)
		}
	}
	sortActors(result)
	return result, nil
}

// Update replaces an existing actor, moving it between owner indexes if needed
func (r *redisRepo) Update(ctx context.Context, actor *entities.Actor) error {
	if actor == nil {
		return cairnerr.InvalidArgument("actor cannot be nil")
	}
	if actor.ID == "" {
		return cairnerr.InvalidArgument("actor ID is required")
	}

	existing, err := r.load(ctx, actor.ID)
	if err != nil {
		return err
	}

	assignItemIDs(actor.Items, r.uuidGenerator)
	actor.CreatedAt = existing.CreatedAt
	actor.UpdatedAt = r.timeProvider.Now()

	previousOwner := ""
	if existing.OwnerID != actor.OwnerID {
		previousOwner = existing.OwnerID
	}
	return r.write(ctx, actor, previousOwner)
}

// Delete removes an actor
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return cairnerr.InvalidArgument("actor ID is required")
	}

	existing, err := r.load(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	if existing.OwnerID != "" {
		pipe.SRem(ctx, r.ownerActorsKey(existing.OwnerID), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete actor: %w", err)
	}
	return nil
}

// AttachPossessions adds items to an actor
func (r *redisRepo) AttachPossessions(ctx context.Context, actorID string, items []*entities.Item) (*entities.Actor, error) {
	if actorID == "" {
		return nil, cairnerr.InvalidArgument("actor ID is required")
	}

	data, err := r.load(ctx, actorID)
	if err != nil {
		return nil, err
	}

	actor := toActor(data)
	attach(actor, items, r.uuidGenerator)
	actor.UpdatedAt = r.timeProvider.Now()

	if err := r.write(ctx, actor, ""); err != nil {
		return nil, err
	}
	return actor, nil
}

func (r *redisRepo) load(ctx context.Context, id string) (*ActorData, error) {
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, cairnerr.NotFoundf("actor with ID '%s' not found", id).
			WithMeta("actor_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}

	var data ActorData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal actor: %w", err)
	}
	return &data, nil
}

// write stores actor and its owner index in one pipeline, dropping it from previousOwner's index
func (r *redisRepo) write(ctx context.Context, actor *entities.Actor, previousOwner string) error {
	jsonData, err := json.Marshal(toActorData(actor))
	if err != nil {
		return fmt.Errorf("failed to marshal actor: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(actor.ID), string(jsonData), 0)
	if previousOwner != "" {
		pipe.SRem(ctx, r.ownerActorsKey(previousOwner), actor.ID)
	}
	if actor.OwnerID != "" {
		pipe.SAdd(ctx, r.ownerActorsKey(actor.OwnerID), actor.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store actor: %w", err)
	}
	return nil
}

func toActorData(actor *entities.Actor) *ActorData {
	return &ActorData{
		ID:          actor.ID,
		OwnerID:     actor.OwnerID,
		Name:        actor.Name,
		Type:        actor.Type,
		Abilities:   actor.Abilities,
		HP:          actor.HP,
		Gold:        actor.Gold,
		Age:         actor.Age,
		BaseArmor:   actor.BaseArmor,
		Armor:       actor.Armor,
		SlotsUsed:   actor.SlotsUsed,
		Encumbered:  actor.Encumbered,
		Deprived:    actor.Deprived,
		Background:  actor.Background,
		Biography:   actor.Biography,
		Description: actor.Description,
		Items:       actor.Items,
		CreatedAt:   actor.CreatedAt,
		UpdatedAt:   actor.UpdatedAt,
	}
}

func toActor(data *ActorData) *entities.Actor {
	return &entities.Actor{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Type:        data.Type,
		Abilities:   data.Abilities,
		HP:          data.HP,
		Gold:        data.Gold,
		Age:         data.Age,
		BaseArmor:   data.BaseArmor,
		Armor:       data.Armor,
		SlotsUsed:   data.SlotsUsed,
		Encumbered:  data.Encumbered,
		Deprived:    data.Deprived,
		Background:  data.Background,
		Biography:   data.Biography,
		Description: data.Description,
		Items:       data.Items,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

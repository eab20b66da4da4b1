// Package character manages Cairn character sheets after generation: rest,
// inventory edits, deprivation and saves.
package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter -source=service.go

import (
	"context"
	"log/slog"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/dice"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/repositories/actors"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/rules/encumbrance"
)

// Service defines the character sheet operations
type Service interface {
	// Get retrieves an actor by ID
	Get(ctx context.Context, id string) (*entities.Actor, error)

	// ListByOwner lists every actor belonging to a player
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Actor, error)

	// Rest restores HP to its maximum
	Rest(ctx context.Context, id string) (*entities.Actor, error)

	// RestoreAbilities restores STR, DEX and WIL to their maximums
	RestoreAbilities(ctx context.Context, id string) (*entities.Actor, error)

	// AddItem gives the actor a new possession
	AddItem(ctx context.Context, id string, item *entities.Item) (*entities.Actor, error)

	// RemoveItem uses up one of a possession, dropping it when the last is gone
	RemoveItem(ctx context.Context, id, itemID string) (*entities.Actor, error)

	// SetEquipped equips or unequips a possession
	SetEquipped(ctx context.Context, id, itemID string, equipped bool) (*entities.Actor, error)

	// SetDeprived marks whether the actor lacks a crucial need
	SetDeprived(ctx context.Context, id string, deprived bool) (*entities.Actor, error)

	// RollSave rolls a d20 save against one of the actor's abilities
	RollSave(ctx context.Context, id string, ability entities.Ability) (*SaveResult, error)

	// DieOfFate rolls the 1d6 die of fate
	DieOfFate(ctx context.Context) (int, error)
}

// SaveResult is the outcome of a save
type SaveResult struct {
	Ability entities.Ability
	Target  int
	Roll    int
	Success bool
}

type service struct {
	repository actors.Repository
	roller     dice.Roller
	logger     *slog.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository actors.Repository // Required
	Roller     dice.Roller       // Required
	Logger     *slog.Logger      // Optional
}

var _ Service = (*service)(nil)

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Roller == nil {
		panic("roller is required")
	}

	svc := &service{
		repository: cfg.Repository,
		roller:     cfg.Roller,
		logger:     cfg.Logger,
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	return svc
}

// Get implements Service.Get
func (s *service) Get(ctx context.Context, id string) (*entities.Actor, error) {
	if id == "" {
		return nil, cairnerr.InvalidArgument("actor ID is required")
	}
	return s.repository.Get(ctx, id)
}

// ListByOwner implements Service.ListByOwner
func (s *service) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Actor, error) {
	if ownerID == "" {
		return nil, cairnerr.InvalidArgument("owner ID is required")
	}
	return s.repository.ListByOwner(ctx, ownerID)
}

// Rest implements Service.Rest
func (s *service) Rest(ctx context.Context, id string) (*entities.Actor, error) {
	return s.mutate(ctx, id, "rest", func(actor *entities.Actor) error {
		if actor.Deprived {
			return deprivedError(actor, "rest")
		}
		actor.HP.Value = actor.HP.Max
		return nil
	})
}

// RestoreAbilities implements Service.RestoreAbilities
func (s *service) RestoreAbilities(ctx context.Context, id string) (*entities.Actor, error) {
	return s.mutate(ctx, id, "restore_abilities", func(actor *entities.Actor) error {
		if actor.Deprived {
			return deprivedError(actor, "restore abilities")
		}
		for _, ability := range entities.AllAbilities {
			score := actor.Abilities.Get(ability)
			score.Value = score.Max
		}
		return nil
	})
}

// AddItem implements Service.AddItem
func (s *service) AddItem(ctx context.Context, id string, item *entities.Item) (*entities.Actor, error) {
	if id == "" {
		return nil, cairnerr.InvalidArgument("actor ID is required")
	}
	if item == nil || item.Name == "" {
		return nil, cairnerr.InvalidArgument("item name is required")
	}
	if err := encumbrance.ValidateSlots(item.Slots); err != nil {
		return nil, cairnerr.Wrapf(err, "adding %s", item.Name)
	}
	if item.Quantity < 0 {
		return nil, cairnerr.InvalidArgumentf("quantity must not be negative, got %d", item.Quantity)
	}

	actor, err := s.repository.AttachPossessions(ctx, id, []*entities.Item{item})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "item added",
		"actor_id", id,
		"item", item.Name,
		"slots_used", actor.SlotsUsed,
		"encumbered", actor.Encumbered)
	return actor, nil
}

// RemoveItem implements Service.RemoveItem
func (s *service) RemoveItem(ctx context.Context, id, itemID string) (*entities.Actor, error) {
	return s.mutate(ctx, id, "remove_item", func(actor *entities.Actor) error {
		for idx, item := range actor.Items {
			if item.ID != itemID {
				continue
			}
			if item.Quantity > 1 {
				item.Quantity--
			} else {
				actor.RemoveItemAt(idx)
			}
			return nil
		}
		return itemNotFound(actor, itemID)
	})
}

// SetEquipped implements Service.SetEquipped
func (s *service) SetEquipped(ctx context.Context, id, itemID string, equipped bool) (*entities.Actor, error) {
	return s.mutate(ctx, id, "set_equipped", func(actor *entities.Actor) error {
		item, ok := actor.FindItem(itemID)
		if !ok {
			return itemNotFound(actor, itemID)
		}
		item.Equipped = equipped
		return nil
	})
}

// SetDeprived implements Service.SetDeprived
func (s *service) SetDeprived(ctx context.Context, id string, deprived bool) (*entities.Actor, error) {
	return s.mutate(ctx, id, "set_deprived", func(actor *entities.Actor) error {
		actor.Deprived = deprived
		return nil
	})
}

// RollSave implements Service.RollSave. The save succeeds when the d20 is
// at or under the ability's current value.
func (s *service) RollSave(ctx context.Context, id string, ability entities.Ability) (*SaveResult, error) {
	actor, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	score := actor.Abilities.Get(ability)
	if score == nil {
		return nil, cairnerr.InvalidArgumentf("unknown ability '%s'", ability).
			WithMeta("ability", string(ability))
	}

	roll, err := s.roller.Roll(1, 20, 0)
	if err != nil {
		return nil, cairnerr.Wrap(err, "rolling save")
	}

	result := &SaveResult{
		Ability: ability,
		Target:  score.Value,
		Roll:    roll.Total,
		Success: roll.Total <= score.Value,
	}

	s.logger.InfoContext(ctx, "save rolled",
		"actor_id", id,
		"ability", ability,
		"target", result.Target,
		"roll", result.Roll,
		"success", result.Success)
	return result, nil
}

// DieOfFate implements Service.DieOfFate
func (s *service) DieOfFate(_ context.Context) (int, error) {
	roll, err := s.roller.Roll(1, 6, 0)
	if err != nil {
		return 0, cairnerr.Wrap(err, "rolling die of fate")
	}
	return roll.Total, nil
}

// mutate loads an actor, applies change, re-derives its state and saves it
func (s *service) mutate(ctx context.Context, id, op string, change func(actor *entities.Actor) error) (*entities.Actor, error) {
	actor, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := change(actor); err != nil {
		return nil, err
	}
	encumbrance.Prepare(actor)

	if err := s.repository.Update(ctx, actor); err != nil {
		return nil, cairnerr.Wrapf(err, "saving %s", actor.Name)
	}

	s.logger.DebugContext(ctx, "actor updated",
		"actor_id", id,
		"op", op)
	return actor, nil
}

func deprivedError(actor *entities.Actor, action string) error {
	return cairnerr.Validationf("%s is deprived and cannot %s", actor.Name, action).
		WithMeta("actor_id", actor.ID)
}

func itemNotFound(actor *entities.Actor, itemID string) error {
	return cairnerr.NotFoundf("item '%s' not found on %s", itemID, actor.Name).
		WithMeta("actor_id", actor.ID).
		WithMeta("item_id", itemID)
}

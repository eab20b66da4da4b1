// Package generator rolls up a complete Cairn character: abilities, identity,
// biography and starting possessions, then persists and announces it.
package generator

//go:generate mockgen -destination=mock/mock_service.go -package=mockgenerator -source=service.go

import (
	"context"
	"log/slog"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/dice"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/notify"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/repositories/actors"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/services/materializer"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/services/tables"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/uuid"
)

// Service generates characters
type Service interface {
	// Generate runs every generation state and returns the persisted character
	Generate(ctx context.Context, input *GenerateInput) (*Result, error)
}

// GenerateInput contains data for one generation run
type GenerateInput struct {
	// OwnerID is the player the character and its companions belong to
	OwnerID string
}

// Result is a persisted character and the companions created alongside it
type Result struct {
	Character  *entities.Actor
	Companions []*entities.Actor
	Draft      *entities.CharacterDraft
}

type service struct {
	tables        tables.Service
	materializer  materializer.Service
	repository    actors.Repository
	roller        dice.Roller
	notifier      notify.Notifier
	uuidGenerator uuid.Generator
	logger        *slog.Logger
	options       *Options
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Tables        tables.Service       // Required
	Materializer  materializer.Service // Required
	Repository    actors.Repository    // Required
	Roller        dice.Roller          // Required
	Notifier      notify.Notifier      // Optional
	UUIDGenerator uuid.Generator       // Optional, names runs in logs
	Logger        *slog.Logger         // Optional
	Options       *Options             // Optional
}

var _ Service = (*service)(nil)

// NewService creates a new generator
func NewService(cfg *ServiceConfig) Service {
	if cfg.Tables == nil {
		panic("tables service is required")
	}
	if cfg.Materializer == nil {
		panic("materializer is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Roller == nil {
		panic("roller is required")
	}

	svc := &service{
		tables:        cfg.Tables,
		materializer:  cfg.Materializer,
		repository:    cfg.Repository,
		roller:        cfg.Roller,
		notifier:      cfg.Notifier,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        cfg.Logger,
		options:       cfg.Options.withDefaults(),
	}
	if svc.notifier == nil {
		svc.notifier = notify.Nop{}
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	return svc
}

// Generate implements Service.Generate.
// A failure before Persist leaves nothing behind; a failure during Persist
// keeps whatever was already created.
func (s *service) Generate(ctx context.Context, input *GenerateInput) (*Result, error) {
	if input == nil {
		input = &GenerateInput{}
	}

	r := &run{
		svc:     s,
		ownerID: input.OwnerID,
		draft:   entities.NewCharacterDraft(),
		logger:  s.logger.With("run", s.uuidGenerator.New()),
	}

	for _, step := range r.steps() {
		r.logger.DebugContext(ctx, "generation state", "state", step.state)
		if err := step.fn(ctx); err != nil {
			wrapped := cairnerr.Wrapf(err, "%s", step.state).WithMeta("state", string(step.state))
			r.fail(ctx, wrapped)
			return nil, wrapped
		}
	}

	r.announce(ctx)

	return &Result{
		Character:  r.character,
		Companions: r.companions,
		Draft:      r.draft,
	}, nil
}

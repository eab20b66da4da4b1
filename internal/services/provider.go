package services

import (
	"log/slog"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/content"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/dice"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/notify"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/repositories/actors"
	characterService "github.com/lecrapal/Cairn-FoundryVTT/internal/services/character"
	damageService "github.com/lecrapal/Cairn-FoundryVTT/internal/services/damage"
	generatorService "github.com/lecrapal/Cairn-FoundryVTT/internal/services/generator"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/services/materializer"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/services/tables"
)

// Provider holds all service instances
type Provider struct {
	Content          content.Repository
	ActorRepository  actors.Repository
	TableService     tables.Service
	Materializer     materializer.Service
	GeneratorService generatorService.Service
	DamageService    damageService.Service
	CharacterService characterService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Content         content.Repository
	ActorRepository actors.Repository
	Roller          dice.Roller
	Notifier        notify.Notifier
	Logger          *slog.Logger

	OwnerFormat      string
	GeneratorOptions *generatorService.Options
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	// Use the embedded decks if none provided
	repo := cfg.Content
	if repo == nil {
		store, err := content.Default()
		if err != nil {
			return nil, err
		}
		repo = store
	}

	// Use in-memory repository if none provided
	actorRepo := cfg.ActorRepository
	if actorRepo == nil {
		actorRepo = actors.NewInMemoryRepository(nil)
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tableSvc := tables.NewService(&tables.ServiceConfig{
		Repository: repo,
		Roller:     roller,
		Logger:     logger,
	})

	materializerSvc := materializer.NewService(&materializer.ServiceConfig{
		Repository:  repo,
		OwnerFormat: cfg.OwnerFormat,
		Logger:      logger,
	})

	genSvc := generatorService.NewService(&generatorService.ServiceConfig{
		Tables:       tableSvc,
		Materializer: materializerSvc,
		Repository:   actorRepo,
		Roller:       roller,
		Notifier:     cfg.Notifier,
		Logger:       logger,
		Options:      cfg.GeneratorOptions,
	})

	dmgSvc := damageService.NewService(&damageService.ServiceConfig{
		Repository: actorRepo,
		Notifier:   cfg.Notifier,
		Logger:     logger,
	})

	charSvc := characterService.NewService(&characterService.ServiceConfig{
		Repository: actorRepo,
		Roller:     roller,
		Logger:     logger,
	})

	return &Provider{
		Content:          repo,
		ActorRepository:  actorRepo,
		TableService:     tableSvc,
		Materializer:     materializerSvc,
		GeneratorService: genSvc,
		DamageService:    dmgSvc,
		CharacterService: charSvc,
	}, nil
}

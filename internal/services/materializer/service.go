// Package materializer turns table labels into item and actor templates and
// adapts them for a new owner.
package materializer

//go:generate mockgen -destination=mock/mock_service.go -package=mockmaterializer -source=service.go

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/content"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
)

// DefaultOwnerFormat names a companion actor after the character it now belongs to
const DefaultOwnerFormat = "{owner}'s {actor}"

// Service materializes templates from candidate decks
type Service interface {
	// Materialize searches decks in order and returns the first template named label.
	// A label found in no deck yields (nil, nil).
	Materialize(ctx context.Context, decks []string, label string) (*entities.EntityTemplate, error)

	// AdaptForImport clones tmpl for insertion under the character named ownerName
	AdaptForImport(tmpl *entities.EntityTemplate, ownerName string) *Imported
}

// Imported is an adapted template, tagged by what the caller should do with it
type Imported struct {
	Kind  entities.EntityKind
	Item  *entities.Item
	Actor *entities.Actor
}

type service struct {
	repository  content.Repository
	ownerFormat string
	logger      *slog.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository content.Repository // Required
	// OwnerFormat uses {owner} and {actor} placeholders
	OwnerFormat string       // Optional
	Logger      *slog.Logger // Optional
}

var _ Service = (*service)(nil)

// NewService creates a new materializer
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:  cfg.Repository,
		ownerFormat: cfg.OwnerFormat,
		logger:      cfg.Logger,
	}
	if svc.ownerFormat == "" {
		svc.ownerFormat = DefaultOwnerFormat
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	return svc
}

// Materialize implements Service.Materialize
func (s *service) Materialize(ctx context.Context, decks []string, label string) (*entities.EntityTemplate, error) {
	if label == "" {
		return nil, cairnerr.InvalidArgument("label is required")
	}

	for _, deck := range decks {
		tmpl, err := s.repository.GetEntity(ctx, deck, label)
		if err != nil {
			if cairnerr.IsNotFound(err) {
				continue
			}
			return nil, cairnerr.Wrapf(err, "materializing '%s' from deck '%s'", label, deck)
		}

		s.logger.DebugContext(ctx, "materialized entity",
			"label", label,
			"deck", deck,
			"kind", tmpl.Kind)
		return tmpl, nil
	}

	s.logger.DebugContext(ctx, "no deck holds entity",
		"label", label,
		"decks", decks)
	return nil, nil
}

// AdaptForImport implements Service.AdaptForImport
func (s *service) AdaptForImport(tmpl *entities.EntityTemplate, ownerName string) *Imported {
	if tmpl == nil {
		return &Imported{Kind: entities.KindNone}
	}

	switch {
	case tmpl.Kind == entities.KindItem && tmpl.Item != nil:
		item := tmpl.Item.Clone()
		item.ID = ""
		return &Imported{Kind: entities.KindItem, Item: item}
	case tmpl.Kind == entities.KindActor && tmpl.Actor != nil:
		actor := tmpl.Actor.Clone()
		actor.ID = ""
		actor.OwnerID = ""
		actor.Name = FormatOwned(s.ownerFormat, ownerName, tmpl.Actor.Name)
		return &Imported{Kind: entities.KindActor, Actor: actor}
	}

	return &Imported{Kind: entities.KindNone}
}

// FormatOwned fills an owner format with the owner and actor names
func FormatOwned(format, owner, actor string) string {
	return strings.NewReplacer("{owner}", owner, "{actor}", actor).Replace(format)
}

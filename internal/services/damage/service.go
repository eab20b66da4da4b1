// Package damage applies hits to actors and narrates the outcome.
package damage

//go:generate mockgen -destination=mock/mock_service.go -package=mockdamage -source=service.go

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/notify"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/repositories/actors"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/rules/attrition"
)

// DefaultConcurrency bounds how many targets are resolved at once
const DefaultConcurrency = 8

// Service applies damage through the attrition rules
type Service interface {
	// ApplyToTarget resolves one hit against one actor and persists the result
	ApplyToTarget(ctx context.Context, targetID string, amount int) (*Outcome, error)

	// ApplyToTargets resolves the same hit against every target independently.
	// Outcomes are returned in the order of targetIDs.
	ApplyToTargets(ctx context.Context, targetIDs []string, amount int) ([]*Outcome, error)
}

// Outcome records one target's state before and after a hit
type Outcome struct {
	TargetID string
	Name     string

	Damage    int
	Armor     int
	HPBefore  int
	STRBefore int

	Result      attrition.Result
	Consequence attrition.Consequence
}

type service struct {
	repository  actors.Repository
	notifier    notify.Notifier
	logger      *slog.Logger
	concurrency int
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository  actors.Repository // Required
	Notifier    notify.Notifier   // Optional
	Logger      *slog.Logger      // Optional
	Concurrency int               // Optional
}

var _ Service = (*service)(nil)

// NewService creates a new damage service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:  cfg.Repository,
		notifier:    cfg.Notifier,
		logger:      cfg.Logger,
		concurrency: cfg.Concurrency,
	}
	if svc.notifier == nil {
		svc.notifier = notify.Nop{}
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	if svc.concurrency <= 0 {
		svc.concurrency = DefaultConcurrency
	}

	return svc
}

// ApplyToTarget implements Service.ApplyToTarget
func (s *service) ApplyToTarget(ctx context.Context, targetID string, amount int) (*Outcome, error) {
	if err := attrition.ValidateDamage(amount); err != nil {
		return nil, err
	}
	if targetID == "" {
		return nil, cairnerr.InvalidArgument("target ID is required")
	}

	return s.apply(ctx, targetID, amount)
}

// ApplyToTargets implements Service.ApplyToTargets.
// Every target is attempted; the first failure is returned alongside the
// outcomes of the targets that succeeded.
func (s *service) ApplyToTargets(ctx context.Context, targetIDs []string, amount int) ([]*Outcome, error) {
	if err := attrition.ValidateDamage(amount); err != nil {
		return nil, err
	}
	if len(targetIDs) == 0 {
		return nil, cairnerr.InvalidArgument("at least one target is required")
	}

	seen := make(map[string]bool, len(targetIDs))
	for _, id := range targetIDs {
		if id == "" {
			return nil, cairnerr.InvalidArgument("target ID is required")
		}
		if seen[id] {
			return nil, cairnerr.InvalidArgumentf("target '%s' is listed twice", id).
				WithMeta("target_id", id)
		}
		seen[id] = true
	}

	outcomes := make([]*Outcome, len(targetIDs))
	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for i, id := range targetIDs {
		i, id := i, id
		g.Go(func() error {
			outcome, err := s.apply(ctx, id, amount)
			if err != nil {
				return err
			}
			outcomes[i] = outcome
			return nil
		})
	}

	return outcomes, g.Wait()
}

func (s *service) apply(ctx context.Context, targetID string, amount int) (*Outcome, error) {
	target, err := s.repository.Get(ctx, targetID)
	if err != nil {
		return nil, cairnerr.Wrapf(err, "loading target '%s'", targetID)
	}
	if target.Type == entities.ActorTypeContainer {
		return nil, cairnerr.InvalidArgumentf("%s is a container and cannot take damage", target.Name).
			WithMeta("target_id", targetID)
	}

	outcome := &Outcome{
		TargetID:  target.ID,
		Name:      target.Name,
		Damage:    amount,
		Armor:     target.Armor,
		HPBefore:  target.HP.Value,
		STRBefore: target.Abilities.STR.Value,
	}
	outcome.Result = attrition.Resolve(amount, outcome.Armor, outcome.HPBefore, outcome.STRBefore)
	outcome.Consequence = attrition.Classify(outcome.HPBefore, outcome.STRBefore, outcome.Result)

	target.HP.Value = outcome.Result.NewHP
	target.Abilities.STR.Value = outcome.Result.NewSTR
	if err := s.repository.Update(ctx, target); err != nil {
		return nil, cairnerr.Wrapf(err, "saving target '%s'", targetID)
	}

	s.logger.InfoContext(ctx, "damage applied",
		"target_id", target.ID,
		"damage", amount,
		"mitigated", outcome.Result.MitigatedDamage,
		"hp", outcome.Result.NewHP,
		"str", outcome.Result.NewSTR,
		"consequence", outcome.Consequence)

	msg := notify.DamageReport(target.Name, amount, outcome.Armor, outcome.HPBefore, outcome.STRBefore, outcome.Result)
	if err := s.notifier.Post(ctx, msg); err != nil {
		s.logger.WarnContext(ctx, "failed to narrate damage",
			"target_id", target.ID,
			"error", err)
	}

	return outcome, nil
}

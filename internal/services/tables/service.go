// Package tables draws results from weighted tables and follows sub-table
// chains.
package tables

//go:generate mockgen -destination=mock/mock_service.go -package=mocktables -source=service.go

import (
	"context"
	"log/slog"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/content"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/dice"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
)

// DefaultMaxDepth bounds how many tables a single resolution may chain through
const DefaultMaxDepth = 4

// Service resolves table references into results
type Service interface {
	// Draw rolls the table formula once and returns every entry the roll lands on
	Draw(ctx context.Context, deck, name string) ([]*entities.TableResult, error)

	// Resolve draws ref and follows sub-table references, returning terminal results
	Resolve(ctx context.Context, ref entities.TableRef) ([]*entities.TableResult, error)
}

type service struct {
	repository content.Repository
	roller     dice.Roller
	maxDepth   int
	logger     *slog.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository content.Repository // Required
	Roller     dice.Roller        // Required
	MaxDepth   int                // Optional, defaults to DefaultMaxDepth
	Logger     *slog.Logger       // Optional
}

var _ Service = (*service)(nil)

// NewService creates a new table resolver
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
		maxDepth:   cfg.MaxDepth,
		logger:     cfg.Logger,
	}
	if svc.maxDepth <= 0 {
		svc.maxDepth = DefaultMaxDepth
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	return svc
}

// Draw implements Service.Draw
func (s *service) Draw(ctx context.Context, deck, name string) ([]*entities.TableResult, error) {
	return s.draw(ctx, deck, name, 1)
}

// Resolve implements Service.Resolve.
//
// Depth-one results are terminal unless the reference is chained or the entry
// itself points at a table. Below depth one only entity results are returned;
// plain text rows such as "None" are dropped.
func (s *service) Resolve(ctx context.Context, ref entities.TableRef) ([]*entities.TableResult, error) {
	if ref.Deck == "" || ref.Name == "" {
		return nil, cairnerr.InvalidArgument("table reference needs a deck and a name")
	}

	results, err := s.draw(ctx, ref.Deck, ref.Name, 1)
	if err != nil {
		return nil, err
	}

	var terminal []*entities.TableResult
	for _, result := range results {
		if !ref.WithSubTable && result.Entry.Kind != entities.ResultTable {
			terminal = append(terminal, result)
			continue
		}

		nested, err := s.expand(ctx, ref.Deck, result, 2)
		if err != nil {
			return nil, err
		}
		terminal = append(terminal, nested...)
	}

	return terminal, nil
}

// expand draws the table named by parent's label and keeps following table rows
func (s *service) expand(ctx context.Context, deck string, parent *entities.TableResult, depth int) ([]*entities.TableResult, error) {
	label := parent.Label()
	if depth > s.maxDepth {
		return nil, cairnerr.MalformedChainf("table chain through '%s' exceeds depth %d", label, s.maxDepth).
			WithMeta("deck", deck).
			WithMeta("table", parent.Table)
	}

	results, err := s.draw(ctx, deck, label, depth)
	if err != nil {
		if cairnerr.IsNotFound(err) {
			return nil, cairnerr.WrapWithCode(err, cairnerr.CodeMalformedChain,
				"table '"+parent.Table+"' points at a missing sub-table")
		}
		return nil, err
	}

	var terminal []*entities.TableResult
	for _, result := range results {
		switch result.Entry.Kind {
		case entities.ResultTable:
			nested, err := s.expand(ctx, deck, result, depth+1)
			if err != nil {
				return nil, err
			}
			terminal = append(terminal, nested...)
		case entities.ResultEntity:
			terminal = append(terminal, result)
		default:
			s.logger.DebugContext(ctx, "dropping text result of sub-table",
				"deck", deck,
				"table", result.Table,
				"label", result.Label(),
				"depth", depth)
		}
	}

	return terminal, nil
}

func (s *service) draw(ctx context.Context, deck, name string, depth int) ([]*entities.TableResult, error) {
	table, err := s.repository.GetTable(ctx, deck, name)
	if err != nil {
		return nil, err
	}

	roll, err := dice.RollString(s.roller, table.Formula)
	if err != nil {
		return nil, cairnerr.Wrapf(err, "rolling %s on table '%s'", table.Formula, name)
	}

	matched := table.Matching(roll.Total)
	if len(matched) == 0 {
		// only reachable for tables built outside the loader
		return nil, cairnerr.Internalf("roll %d on table '%s' matched no entry", roll.Total, name).
			WithMeta("deck", deck).
			WithMeta("table", name)
	}

	results := make([]*entities.TableResult, 0, len(matched))
	for _, entry := range matched {
		results = append(results, &entities.TableResult{
			Deck:  deck,
			Table: table.LookupName(),
			Roll:  roll.Total,
			Depth: depth,
			Entry: entry,
		})
	}

	s.logger.DebugContext(ctx, "table drawn",
		"deck", deck,
		"table", table.LookupName(),
		"roll", roll.String(),
		"results", len(results))

	return results, nil
}

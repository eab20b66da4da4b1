package content

import (
	"context"
	"sort"
	"sync"

	"github.com/antzucaro/matchr"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
)

// suggestionThreshold is the Jaro-Winkler score a name needs to be offered as a suggestion
const suggestionThreshold = 0.85

// Deck is a named partition of tables and templates
type Deck struct {
	Name     string
	Label    string
	Tables   []*entities.WeightedTable
	Entities []*entities.EntityTemplate
}

// Store is an in-memory Repository
type Store struct {
	mu    sync.RWMutex
	decks map[string]*Deck
}

var _ Repository = (*Store)(nil)

// NewStore validates and indexes decks
func NewStore(decks ...*Deck) (*Store, error) {
	s := &Store{
		decks: make(map[string]*Deck),
	}
	for _, deck := range decks {
		if err := s.AddDeck(deck); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddDeck adds a deck, rejecting duplicates and dangling sub-table references
func (s *Store) AddDeck(deck *Deck) error {
	if deck == nil {
		return cairnerr.InvalidArgument("deck cannot be nil")
	}
	if deck.Name == "" {
		return cairnerr.InvalidArgument("deck name is required")
	}
	if err := validateDeck(deck); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.decks[deck.Name]; exists {
		return cairnerr.AlreadyExistsf("deck '%s' already loaded", deck.Name).
			WithMeta("deck", deck.Name)
	}
	s.decks[deck.Name] = deck
	return nil
}

// GetTable implements Repository.GetTable
func (s *Store) GetTable(_ context.Context, deckName, name string) (*entities.WeightedTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deck, err := s.deck(deckName)
	if err != nil {
		return nil, err
	}

	if table := findTable(deck.Tables, name); table != nil {
		return table, nil
	}

	names := make([]string, 0, len(deck.Tables))
	for _, table := range deck.Tables {
		names = append(names, table.LookupName())
	}
	return nil, withSuggestion(
		cairnerr.NotFoundf("table '%s' not found in deck '%s'", name, deckName).
			WithMeta("deck", deckName).
			WithMeta("table", name),
		name, names)
}

// GetEntity implements Repository.GetEntity
func (s *Store) GetEntity(_ context.Context, deckName, name string) (*entities.EntityTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deck, err := s.deck(deckName)
	if err != nil {
		return nil, err
	}

	if tmpl := findEntity(deck.Entities, name); tmpl != nil {
		return tmpl.Clone(), nil
	}

	names := make([]string, 0, len(deck.Entities))
	for _, tmpl := range deck.Entities {
		names = append(names, tmpl.LookupName())
	}
	return nil, withSuggestion(
		cairnerr.NotFoundf("entity '%s' not found in deck '%s'", name, deckName).
			WithMeta("deck", deckName).
			WithMeta("entity", name),
		name, names)
}

// Decks implements Repository.Decks
func (s *Store) Decks(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.decks))
	for name := range s.decks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Deck returns the named deck for inspection
func (s *Store) Deck(name string) (*Deck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deck(name)
}

func (s *Store) deck(name string) (*Deck, error) {
	deck, ok := s.decks[name]
	if !ok {
		return nil, cairnerr.NotFoundf("deck '%s' not found", name).
			WithMeta("deck", name)
	}
	return deck, nil
}

// findTable matches the canonical name first, then the display name
func findTable(tables []*entities.WeightedTable, name string) *entities.WeightedTable {
	for _, table := range tables {
		if table.LookupName() == name {
			return table
		}
	}
	for _, table := range tables {
		if table.Name == name {
			return table
		}
	}
	return nil
}

func findEntity(templates []*entities.EntityTemplate, name string) *entities.EntityTemplate {
	for _, tmpl := range templates {
		if tmpl.LookupName() == name {
			return tmpl
		}
	}
	for _, tmpl := range templates {
		if tmpl.Name == name {
			return tmpl
		}
	}
	return nil
}

func validateDeck(deck *Deck) error {
	seen := make(map[string]struct{}, len(deck.Tables))
	for _, table := range deck.Tables {
		if _, dup := seen[table.LookupName()]; dup {
			return cairnerr.Validationf("deck %s: duplicate table %s", deck.Name, table.LookupName())
		}
		seen[table.LookupName()] = struct{}{}
	}

	for _, table := range deck.Tables {
		for _, entry := range table.Entries {
			if entry.Kind != entities.ResultTable {
				continue
			}
			if findTable(deck.Tables, entry.LookupLabel()) == nil {
				return cairnerr.MalformedChainf("deck %s: table %s references missing sub-table %s",
					deck.Name, table.LookupName(), entry.LookupLabel()).
					WithMeta("deck", deck.Name).
					WithMeta("table", table.LookupName())
			}
		}
	}
	return nil
}

// withSuggestion attaches the closest known name to a lookup miss
func withSuggestion(err *cairnerr.Error, name string, candidates []string) *cairnerr.Error {
	best, bestScore := "", 0.0
	for _, candidate := range candidates {
		score := matchr.JaroWinkler(name, candidate, false)
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}
	if bestScore >= suggestionThreshold && best != name {
		err.WithMeta("suggestion", best)
	}
	return err
}

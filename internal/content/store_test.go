package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
)

func testDeck() *Deck {
	return &Deck{
		Name: "test.deck",
		Tables: []*entities.WeightedTable{
			{
				Deck:    "test.deck",
				Name:    "Armes",
				Formula: "1d2",
				// localized display name, canonical name below
				OriginalName: "Weapons",
				Entries: []*entities.TableEntry{
					{Low: 1, High: 1, Kind: entities.ResultTable, Text: "Knives"},
					{Low: 2, High: 2, Kind: entities.ResultText, Text: "Nothing"},
				},
			},
			{
				Deck:    "test.deck",
				Name:    "Knives",
				Formula: "1d1",
				Entries: []*entities.TableEntry{
					{Low: 1, High: 1, Kind: entities.ResultEntity, Text: "Dagger"},
				},
			},
		},
		Entities: []*entities.EntityTemplate{
			{
				Deck: "test.deck",
				Name: "Dagger",
				Kind: entities.KindItem,
				Item: &entities.Item{Name: "Dagger", Type: entities.ItemTypeWeapon, Slots: 1},
			},
			{
				Deck:         "test.deck",
				Name:         "Dague",
				OriginalName: "Shiv",
				Kind:         entities.KindItem,
				Item:         &entities.Item{Name: "Dague", Slots: 1},
			},
		},
	}
}

func TestStore_GetTablePrefersCanonicalName(t *testing.T) {
	store, err := NewStore(testDeck())
	require.NoError(t, err)

	byCanonical, err := store.GetTable(context.Background(), "test.deck", "Weapons")
	require.NoError(t, err)
	assert.Equal(t, "Armes", byCanonical.Name)

	byDisplay, err := store.GetTable(context.Background(), "test.deck", "Armes")
	require.NoError(t, err)
	assert.Same(t, byCanonical, byDisplay)
}

func TestStore_CanonicalNameWinsOverAnotherDisplayName(t *testing.T) {
	deck := testDeck()
	// "Shiv" is both a canonical name and another template's display name
	deck.Entities = append(deck.Entities, &entities.EntityTemplate{
		Deck: "test.deck",
		Name: "Shiv",
		Kind: entities.KindItem,
		Item: &entities.Item{Name: "Shiv", Slots: 0.5},
	})
	store, err := NewStore(deck)
	require.NoError(t, err)

	tmpl, err := store.GetEntity(context.Background(), "test.deck", "Shiv")
	require.NoError(t, err)
	assert.Equal(t, "Dague", tmpl.Name)
}

func TestStore_GetEntityReturnsCopy(t *testing.T) {
	store, err := NewStore(testDeck())
	require.NoError(t, err)

	first, err := store.GetEntity(context.Background(), "test.deck", "Dagger")
	require.NoError(t, err)
	first.Item.Quantity = 99

	second, err := store.GetEntity(context.Background(), "test.deck", "Dagger")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Item.Quantity)
}

func TestStore_MissCarriesSuggestion(t *testing.T) {
	store, err := NewStore(testDeck())
	require.NoError(t, err)

	_, err = store.GetEntity(context.Background(), "test.deck", "Daggr")
	require.Error(t, err)
	assert.True(t, cairnerr.IsNotFound(err))
	assert.Equal(t, "Dagger", cairnerr.GetMeta(err)["suggestion"])

	_, err = store.GetTable(context.Background(), "test.deck", "Zebra")
	require.Error(t, err)
	assert.True(t, cairnerr.IsNotFound(err))
	_, suggested := cairnerr.GetMeta(err)["suggestion"]
	assert.False(t, suggested)
}

func TestStore_UnknownDeck(t *testing.T) {
	store, err := NewStore(testDeck())
	require.NoError(t, err)

	_, err = store.GetTable(context.Background(), "missing", "Weapons")
	assert.True(t, cairnerr.IsNotFound(err))
}

func TestStore_RejectsDanglingSubTable(t *testing.T) {
	deck := testDeck()
	deck.Tables = deck.Tables[:1]

	_, err := NewStore(deck)
	require.Error(t, err)
	assert.True(t, cairnerr.IsMalformedChain(err))
}

func TestStore_RejectsDuplicates(t *testing.T) {
	store, err := NewStore(testDeck())
	require.NoError(t, err)

	err = store.AddDeck(testDeck())
	assert.True(t, cairnerr.IsAlreadyExists(err))

	deck := testDeck()
	deck.Name = "other.deck"
	deck.Tables = append(deck.Tables, deck.Tables[1])
	assert.True(t, cairnerr.IsValidation(store.AddDeck(deck)))
}

func TestStore_DecksSorted(t *testing.T) {
	other := testDeck()
	other.Name = "a.deck"
	store, err := NewStore(testDeck(), other)
	require.NoError(t, err)

	names, err := store.Decks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a.deck", "test.deck"}, names)
}

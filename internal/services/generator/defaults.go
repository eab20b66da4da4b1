package generator

import (
	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
)

// Shipped deck names
const (
	DeckCharacterTraits   = "cairn.character-traits"
	DeckGearTables        = "cairn.gear-tables"
	DeckArmor             = "cairn.armor"
	DeckWeapons           = "cairn.weapons"
	DeckExpeditionaryGear = "cairn.expeditionary-gear"
	DeckContainers        = "cairn.containers"
	DeckTools             = "cairn.tools"
	DeckTrinkets          = "cairn.trinkets"
	DeckSpellbooks        = "cairn.spellbooks"
)

// DefaultBiography is filled from the trait draws plus {age} and {name}
const DefaultBiography = "{name} is {age} years old, with a {physique} physique, {skin} skin, {hair} hair and a {face} face. " +
	"They speak in a {speech} voice and wear {clothing} clothes. " +
	"They are {virtue} but {vice}, known as {reputation}, and were once {misfortune}."

// Trait is a biography table and the placeholder its result fills
type Trait struct {
	Table       string
	Placeholder string
}

// DefaultTraits are drawn in this order, one result each
var DefaultTraits = []Trait{
	{Table: "Face", Placeholder: "face"},
	{Table: "Hair", Placeholder: "hair"},
	{Table: "Skin", Placeholder: "skin"},
	{Table: "Physique", Placeholder: "physique"},
	{Table: "Misfortunes", Placeholder: "misfortune"},
	{Table: "Reputation", Placeholder: "reputation"},
	{Table: "Speech", Placeholder: "speech"},
	{Table: "Vice", Placeholder: "vice"},
	{Table: "Virtue", Placeholder: "virtue"},
	{Table: "Clothing", Placeholder: "clothing"},
}

// StartingItem is guaranteed gear looked up by name rather than rolled
type StartingItem struct {
	Name string
	// Quantity overrides the template quantity when positive
	Quantity int
}

// DefaultStartingGear is handed to every new character
var DefaultStartingGear = []StartingItem{
	{Name: "Rations", Quantity: 3},
	{Name: "Torch"},
}

// DefaultInventorySpecs are rolled in order after the starting gear
func DefaultInventorySpecs() []entities.InventoryRollSpec {
	return []entities.InventoryRollSpec{
		{
			Label: "Armor",
			Table: entities.TableRef{Deck: DeckGearTables, Name: "Armor"},
			Decks: []string{DeckArmor},
		},
		{
			Label: "Weapons",
			Table: entities.TableRef{Deck: DeckGearTables, Name: "Weapons", WithSubTable: true},
			Decks: []string{DeckWeapons},
		},
		{
			Label: "Helmets and Shields",
			Table: entities.TableRef{Deck: DeckGearTables, Name: "Helmets and Shields"},
			Decks: []string{DeckArmor},
		},
		{
			Label: "Expeditionary Gear",
			Table: entities.TableRef{Deck: DeckGearTables, Name: "Expeditionary Gear"},
			Decks: []string{DeckExpeditionaryGear, DeckContainers},
		},
		{
			Label: "Tools",
			Table: entities.TableRef{Deck: DeckGearTables, Name: "Tools"},
			Decks: []string{DeckTools},
		},
		{
			Label: "Trinkets",
			Table: entities.TableRef{Deck: DeckGearTables, Name: "Trinkets"},
			Decks: []string{DeckTrinkets},
		},
		{
			Label: "Bonus Item",
			Table: entities.TableRef{Deck: DeckGearTables, Name: "Bonus Item", WithSubTable: true},
			Decks: []string{
				DeckExpeditionaryGear,
				DeckArmor,
				DeckWeapons,
				DeckTools,
				DeckTrinkets,
				DeckSpellbooks,
				DeckContainers,
			},
		},
	}
}

// Options selects the content a generation run draws from. Zero fields take the defaults above.
type Options struct {
	TraitsDeck      string
	MaleNames       string
	FemaleNames     string
	Surnames        string
	BackgroundTable string
	Traits          []Trait
	Biography       string

	StartingGearDeck string
	StartingGear     []StartingItem
	InventorySpecs   []entities.InventoryRollSpec
}

func (o *Options) withDefaults() *Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.TraitsDeck == "" {
		out.TraitsDeck = DeckCharacterTraits
	}
	if out.MaleNames == "" {
		out.MaleNames = "Male Names"
	}
	if out.FemaleNames == "" {
		out.FemaleNames = "Female Names"
	}
	if out.Surnames == "" {
		out.Surnames = "Surnames"
	}
	if out.BackgroundTable == "" {
		out.BackgroundTable = "Background"
	}
	if out.Traits == nil {
		out.Traits = DefaultTraits
	}
	if out.Biography == "" {
		out.Biography = DefaultBiography
	}
	if out.StartingGearDeck == "" {
		out.StartingGearDeck = DeckExpeditionaryGear
	}
	if out.StartingGear == nil {
		out.StartingGear = DefaultStartingGear
	}
	if out.InventorySpecs == nil {
		out.InventorySpecs = DefaultInventorySpecs()
	}
	return &out
}

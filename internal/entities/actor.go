package entities

import (
	"time"
)

// ActorType distinguishes the sheets a Cairn actor can have
type ActorType string

const (
	ActorTypeCharacter ActorType = "character"
	ActorTypeNPC       ActorType = "npc"
	ActorTypeContainer ActorType = "container"
)

// Ability is one of the three Cairn ability scores
type Ability string

const (
	AbilityStrength  Ability = "STR"
	AbilityDexterity Ability = "DEX"
	AbilityWillpower Ability = "WIL"
)

// AllAbilities lists abilities in sheet order
var AllAbilities = []Ability{AbilityStrength, AbilityDexterity, AbilityWillpower}

// Score is a current value tracked against its maximum
type Score struct {
	Value int `json:"value"`
	Max   int `json:"max"`
}

// NewScore returns a full score
func NewScore(v int) Score {
	return Score{Value: v, Max: v}
}

// Abilities holds STR, DEX and WIL
type Abilities struct {
	STR Score `json:"STR"`
	DEX Score `json:"DEX"`
	WIL Score `json:"WIL"`
}

// Get returns a pointer to the named score, or nil for an unknown ability
func (a *Abilities) Get(ability Ability) *Score {
	switch ability {
	case AbilityStrength:
		return &a.STR
	case AbilityDexterity:
		return &a.DEX
	case AbilityWillpower:
		return &a.WIL
	}
	return nil
}

// Actor is a persisted character, companion creature or container
type Actor struct {
	ID      string
	OwnerID string
	Name    string
	Type    ActorType

	Abilities Abilities
	HP        Score
	Gold      int
	Age       int

	// BaseArmor is the armor printed on an npc's stat block
	BaseArmor int
	// Armor, SlotsUsed and Encumbered are derived from Items
	Armor      int
	SlotsUsed  float64
	Encumbered bool
	Deprived   bool

	Background  string
	Biography   string
	Description string

	Items []*Item

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FindItem returns the item with the given ID
func (a *Actor) FindItem(id string) (*Item, bool) {
	for _, item := range a.Items {
		if item.ID == id {
			return item, true
		}
	}
	return nil, false
}

// RemoveItemAt drops the item at index idx
func (a *Actor) RemoveItemAt(idx int) {
	a.Items = append(a.Items[:idx], a.Items[idx+1:]...)
}

// Clone returns a deep copy, items included
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}
	clone := *a
	clone.Items = CloneItems(a.Items)
	return &clone
}

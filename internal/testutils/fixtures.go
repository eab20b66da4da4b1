package testutils

import (
	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
)

// CreateTestCharacter creates a character with full scores and no possessions
func CreateTestCharacter(id, ownerID, name string, hp, str int) *entities.Actor {
	return &entities.Actor{
		ID:      id,
		OwnerID: ownerID,
		Name:    name,
		Type:    entities.ActorTypeCharacter,
		HP:      entities.NewScore(hp),
		Abilities: entities.Abilities{
			STR: entities.NewScore(str),
			DEX: entities.NewScore(10),
			WIL: entities.NewScore(10),
		},
	}
}

// CreateTestItem creates a plain item costing slots per unit
func CreateTestItem(id, name string, slots float64, quantity int) *entities.Item {
	return &entities.Item{
		ID:       id,
		Name:     name,
		Type:     entities.ItemTypeItem,
		Slots:    slots,
		Quantity: quantity,
	}
}

// CreateTestArmor creates an equipped armor piece
func CreateTestArmor(id, name string, slots float64, armor int) *entities.Item {
	return &entities.Item{
		ID:       id,
		Name:     name,
		Type:     entities.ItemTypeArmor,
		Slots:    slots,
		Armor:    armor,
		Equipped: true,
	}
}

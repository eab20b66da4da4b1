package entities

// ItemType is the rule category of a possession
type ItemType string

const (
	ItemTypeItem      ItemType = "item"
	ItemTypeArmor     ItemType = "armor"
	ItemTypeWeapon    ItemType = "weapon"
	ItemTypeSpellbook ItemType = "spellbook"
	ItemTypeContainer ItemType = "container"
)

// Item is a possession owned by an actor
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        ItemType `json:"type"`
	Slots       float64  `json:"slots"`
	Quantity    int      `json:"quantity"`
	Armor       int      `json:"armor"`
	Equipped    bool     `json:"equipped"`
	Damage      string   `json:"damage,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Count returns the quantity, treating an unset quantity as one
func (i *Item) Count() int {
	if i.Quantity <= 0 {
		return 1
	}
	return i.Quantity
}

// CountsTowardArmor reports whether the item's armor value is summed into the wearer's armor
func (i *Item) CountsTowardArmor() bool {
	return i.Type == ItemTypeArmor || i.Type == ItemTypeItem
}

// Clone returns an independent copy
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	clone := *i
	return &clone
}

// CloneItems deep-copies a list of items
func CloneItems(items []*Item) []*Item {
	if items == nil {
		return nil
	}
	out := make([]*Item, len(items))
	for idx, item := range items {
		out[idx] = item.Clone()
	}
	return out
}

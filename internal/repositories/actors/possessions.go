package actors

import (
	"sort"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/rules/encumbrance"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/uuid"
)

// assignItemIDs gives every item without an ID a fresh one
func assignItemIDs(items []*entities.Item, gen uuid.Generator) {
	for _, item := range items {
		if item != nil && item.ID == "" {
			item.ID = gen.New()
		}
	}
}

// attach appends copies of items to actor and re-derives armor, slots and encumbrance
func attach(actor *entities.Actor, items []*entities.Item, gen uuid.Generator) {
	added := entities.CloneItems(items)
	assignItemIDs(added, gen)
	for _, item := range added {
		if item != nil {
			actor.Items = append(actor.Items, item)
		}
	}
	encumbrance.Prepare(actor)
}

// sortActors orders actors oldest first, then by name
func sortActors(list []*entities.Actor) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].Name < list[j].Name
	})
}

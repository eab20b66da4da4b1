package entities_test

import (
	"testing"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityTemplate_CloneIsIndependent(t *testing.T) {
	tmpl := &entities.EntityTemplate{
		Name: "Mule",
		Kind: entities.KindActor,
		Actor: &entities.Actor{
			Name:  "Mule",
			Type:  entities.ActorTypeContainer,
			Items: []*entities.Item{{Name: "Saddlebag", Slots: 1}},
		},
	}

	clone := tmpl.Clone()
	clone.Actor.Name = "Ada's Mule"
	clone.Actor.Items[0].Quantity = 4

	assert.Equal(t, "Mule", tmpl.Actor.Name)
	assert.Equal(t, 0, tmpl.Actor.Items[0].Quantity)
	assert.Nil(t, clone.Item)
}

func TestAbilities_Get(t *testing.T) {
	abilities := entities.Abilities{
		STR: entities.NewScore(12),
		DEX: entities.NewScore(9),
		WIL: entities.NewScore(14),
	}

	str := abilities.Get(entities.AbilityStrength)
	require.NotNil(t, str)
	str.Value = 3
	assert.Equal(t, 3, abilities.STR.Value)
	assert.Equal(t, 12, abilities.STR.Max)

	assert.Equal(t, 14, abilities.Get(entities.AbilityWillpower).Max)
	assert.Nil(t, abilities.Get("CHA"))
}

func TestItem_Count(t *testing.T) {
	assert.Equal(t, 1, (&entities.Item{}).Count())
	assert.Equal(t, 3, (&entities.Item{Quantity: 3}).Count())
}

func TestCharacterDraft_ToActor(t *testing.T) {
	draft := entities.NewCharacterDraft()
	draft.Name = "Ada Harrow"
	draft.HP = 4
	draft.Gold = 11
	draft.Items = []*entities.Item{{Name: "Torch"}}

	actor := draft.ToActor()
	assert.Equal(t, entities.ActorTypeCharacter, actor.Type)
	assert.Equal(t, entities.Score{Value: 4, Max: 4}, actor.HP)

	actor.Items[0].Name = "Lantern"
	assert.Equal(t, "Torch", draft.Items[0].Name)
}

func TestActor_FindAndRemoveItem(t *testing.T) {
	actor := &entities.Actor{Items: []*entities.Item{{ID: "a"}, {ID: "b"}, {ID: "c"}}}

	item, ok := actor.FindItem("b")
	require.True(t, ok)
	assert.Equal(t, "b", item.ID)

	actor.RemoveItemAt(1)
	_, ok = actor.FindItem("b")
	assert.False(t, ok)
	assert.Len(t, actor.Items, 2)
}

package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/notify"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/rules/attrition"
)

func TestCharacterAnnouncement(t *testing.T) {
	character := &entities.Actor{
		Name:       "Ada Marsh",
		Abilities:  entities.Abilities{STR: entities.NewScore(11), DEX: entities.NewScore(9), WIL: entities.NewScore(14)},
		HP:         entities.NewScore(4),
		Gold:       12,
		Armor:      1,
		SlotsUsed:  5.5,
		Background: "Herbalist",
		Biography:  "Weathered and blunt.",
		Items: []*entities.Item{
			{Name: "Rations", Quantity: 3},
			{Name: "Torch", Quantity: 1},
			{Name: "Brigandine"},
		},
	}
	companions := []*entities.Actor{{Name: "Ada Marsh's Mule"}}

	msg := notify.CharacterAnnouncement(character, companions)

	assert.Equal(t, "Ada Marsh", msg.Title)
	assert.Equal(t, "Ada Marsh", msg.Speaker)
	assert.False(t, msg.Error)
	assert.Contains(t, msg.Fields, notify.Field{Name: "WIL", Value: "14", Inline: true})
	assert.Contains(t, msg.Fields, notify.Field{Name: "Slots", Value: "5.5/10", Inline: true})
	assert.Contains(t, msg.Fields, notify.Field{Name: "Background", Value: "Herbalist", Inline: true})
	assert.Equal(t, "Items: 3 Rations, Torch, Brigandine", msg.Lines[0])
	assert.Equal(t, "Companions: Ada Marsh's Mule", msg.Lines[1])
	assert.Contains(t, msg.Body(), "Weathered and blunt.")
}

func TestItemList_Empty(t *testing.T) {
	assert.Equal(t, "none", notify.ItemList(nil))
}

func TestDamageReport(t *testing.T) {
	tests := []struct {
		name     string
		damage   int
		armor    int
		hp       int
		str      int
		expected []string
	}{
		{
			name:   "absorbed by HP",
			damage: 5, armor: 2, hp: 10, str: 12,
			expected: []string{"Damage: 3 (5-2)", "HP: ~~10~~ => 7"},
		},
		{
			name:   "fully blocked",
			damage: 10, armor: 10, hp: 5, str: 5,
			expected: []string{"Damage: 0 (10-10)", "HP: 5"},
		},
		{
			name:   "scars",
			damage: 6, armor: 1, hp: 5, str: 10,
			expected: []string{"Damage: 5 (6-1)", "HP: ~~5~~ => 0", "**Scars**"},
		},
		{
			name:   "str save",
			damage: 8, armor: 0, hp: 5, str: 10,
			expected: []string{"Damage: 8 (8-0)", "HP: ~~5~~ => 0", "STR: ~~10~~ => 7", "**STR save to avoid critical damage**"},
		},
		{
			name:   "death",
			damage: 20, armor: 2, hp: 5, str: 12,
			expected: []string{"Damage: 18 (20-2)", "HP: ~~5~~ => 0", "STR: ~~12~~ => 0", "**Dead**"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := attrition.Resolve(tt.damage, tt.armor, tt.hp, tt.str)
			msg := notify.DamageReport("Goblin", tt.damage, tt.armor, tt.hp, tt.str, result)
			assert.Equal(t, "Goblin", msg.Speaker)
			assert.Equal(t, tt.expected, msg.Lines)
		})
	}
}

func TestGenerationFailed_CarriesSuggestion(t *testing.T) {
	err := cairnerr.NotFoundf("entity 'Tourch' not found").WithMeta("suggestion", "Torch")

	msg := notify.GenerationFailed(cairnerr.Wrap(err, "starting gear"))

	require.True(t, msg.Error)
	assert.Equal(t, []string{"starting gear: entity 'Tourch' not found", `Did you mean "Torch"?`}, msg.Lines)
}

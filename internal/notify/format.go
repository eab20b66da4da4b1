package notify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/rules/attrition"
)

// CharacterAnnouncement summarizes a freshly generated character
func CharacterAnnouncement(character *entities.Actor, companions []*entities.Actor) *Message {
	msg := &Message{
		Title:   character.Name,
		Speaker: character.Name,
		Fields: []Field{
			{Name: "STR", Value: strconv.Itoa(character.Abilities.STR.Max), Inline: true},
			{Name: "DEX", Value: strconv.Itoa(character.Abilities.DEX.Max), Inline: true},
			{Name: "WIL", Value: strconv.Itoa(character.Abilities.WIL.Max), Inline: true},
			{Name: "HP", Value: strconv.Itoa(character.HP.Max), Inline: true},
			{Name: "Armor", Value: strconv.Itoa(character.Armor), Inline: true},
			{Name: "Gold", Value: strconv.Itoa(character.Gold), Inline: true},
		},
	}

	if character.Background != "" {
		msg.Fields = append(msg.Fields, Field{Name: "Background", Value: character.Background, Inline: true})
	}
	msg.Fields = append(msg.Fields, Field{
		Name:   "Slots",
		Value:  FormatSlots(character.SlotsUsed),
		Inline: true,
	})

	msg.Lines = append(msg.Lines, "Items: "+ItemList(character.Items))
	if len(companions) > 0 {
		names := make([]string, 0, len(companions))
		for _, c := range companions {
			names = append(names, c.Name)
		}
		msg.Lines = append(msg.Lines, "Companions: "+strings.Join(names, ", "))
	}
	if character.Biography != "" {
		msg.Lines = append(msg.Lines, "", character.Biography)
	}

	return msg
}

// ItemList renders items as "3 Rations, Torch"
func ItemList(items []*entities.Item) string {
	if len(items) == 0 {
		return "none"
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		if item.Quantity > 1 {
			names = append(names, fmt.Sprintf("%d %s", item.Quantity, item.Name))
		} else {
			names = append(names, item.Name)
		}
	}
	return strings.Join(names, ", ")
}

// FormatSlots prints a slot total without trailing zeros
func FormatSlots(slots float64) string {
	return strconv.FormatFloat(slots, 'f', -1, 64) + "/10"
}

// DamageReport narrates one resolved hit against target
func DamageReport(target string, damage, armor, hp, str int, result attrition.Result) *Message {
	msg := &Message{
		Title:   "Damage",
		Speaker: target,
		Lines: []string{
			fmt.Sprintf("Damage: %d (%d-%d)", result.MitigatedDamage, damage, armor),
		},
	}

	if result.NewHP != hp {
		msg.Lines = append(msg.Lines, fmt.Sprintf("HP: ~~%d~~ => %d", hp, result.NewHP))
	} else {
		msg.Lines = append(msg.Lines, fmt.Sprintf("HP: %d", hp))
	}
	if result.NewSTR != str {
		msg.Lines = append(msg.Lines, fmt.Sprintf("STR: ~~%d~~ => %d", str, result.NewSTR))
	}

	switch attrition.Classify(hp, str, result) {
	case attrition.ConsequenceDeath:
		msg.Lines = append(msg.Lines, "**Dead**")
	case attrition.ConsequenceStrSave:
		msg.Lines = append(msg.Lines, "**STR save to avoid critical damage**")
	case attrition.ConsequenceScars:
		msg.Lines = append(msg.Lines, "**Scars**")
	}

	return msg
}

// GenerationFailed reports a generation run that was aborted
func GenerationFailed(err error) *Message {
	msg := &Message{
		Title: "Character generation failed",
		Error: true,
		Lines: []string{err.Error()},
	}
	if suggestion, ok := cairnerr.GetMeta(err)["suggestion"].(string); ok {
		msg.Lines = append(msg.Lines, fmt.Sprintf("Did you mean %q?", suggestion))
	}
	return msg
}

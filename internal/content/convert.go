package content

import (
	"strconv"
	"strings"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/dice"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
	"github.com/lecrapal/Cairn-FoundryVTT/internal/rules/encumbrance"
)

func (f *deckFile) toDeck() (*Deck, error) {
	if strings.TrimSpace(f.Deck) == "" {
		return nil, cairnerr.Validation("deck name is required")
	}

	deck := &Deck{
		Name:  f.Deck,
		Label: f.Label,
	}

	for i := range f.Tables {
		table, err := f.Tables[i].toTable(f.Deck)
		if err != nil {
			return nil, cairnerr.Wrapf(err, "deck %s", f.Deck)
		}
		deck.Tables = append(deck.Tables, table)
	}

	for i := range f.Entities {
		tmpl, err := f.Entities[i].toTemplate(f.Deck)
		if err != nil {
			return nil, cairnerr.Wrapf(err, "deck %s", f.Deck)
		}
		deck.Entities = append(deck.Entities, tmpl)
	}

	return deck, nil
}

func (d *tableDoc) toTable(deck string) (*entities.WeightedTable, error) {
	if strings.TrimSpace(d.Name) == "" {
		return nil, cairnerr.Validation("table name is required")
	}

	table := &entities.WeightedTable{
		Deck:         deck,
		Name:         d.Name,
		OriginalName: d.OriginalName,
		Formula:      d.Formula,
	}

	for i := range d.Entries {
		kind, err := parseResultKind(d.Entries[i].Kind)
		if err != nil {
			return nil, cairnerr.Wrapf(err, "table %s entry %d", d.Name, i)
		}
		entry := &entities.TableEntry{
			Weight:       d.Entries[i].Weight,
			Kind:         kind,
			Text:         d.Entries[i].Text,
			OriginalText: d.Entries[i].OriginalText,
		}
		switch len(d.Entries[i].Range) {
		case 0:
		case 1:
			entry.Low, entry.High = d.Entries[i].Range[0], d.Entries[i].Range[0]
		case 2:
			entry.Low, entry.High = d.Entries[i].Range[0], d.Entries[i].Range[1]
		default:
			return nil, cairnerr.Validationf("table %s entry %d: range takes one or two values", d.Name, i)
		}
		table.Entries = append(table.Entries, entry)
	}

	if err := normalizeTable(table); err != nil {
		return nil, err
	}
	return table, nil
}

// normalizeTable turns weights into contiguous ranges, defaults the formula
// and checks that every possible roll lands on at least one entry.
func normalizeTable(table *entities.WeightedTable) error {
	if len(table.Entries) == 0 {
		return cairnerr.Validationf("table %s has no entries", table.Name)
	}

	ranged, weighted := 0, 0
	for _, entry := range table.Entries {
		if entry.Low != 0 || entry.High != 0 {
			ranged++
		} else {
			weighted++
		}
	}
	if ranged > 0 && weighted > 0 {
		return cairnerr.Validationf("table %s mixes ranges and weights", table.Name)
	}

	if weighted > 0 {
		next := 1
		for i, entry := range table.Entries {
			if entry.Weight <= 0 {
				return cairnerr.Validationf("table %s entry %d: weight must be positive", table.Name, i)
			}
			entry.Low = next
			entry.High = next + entry.Weight - 1
			next = entry.High + 1
		}
		if table.Formula == "" {
			table.Formula = "1d" + strconv.Itoa(next-1)
		}
	}

	for i, entry := range table.Entries {
		if entry.Low > entry.High {
			return cairnerr.Validationf("table %s entry %d: range %d-%d is inverted", table.Name, i, entry.Low, entry.High)
		}
	}

	if table.Formula == "" {
		return cairnerr.Validationf("table %s: formula is required with explicit ranges", table.Name)
	}

	count, sides, bonus, err := dice.ParseExpression(table.Formula)
	if err != nil {
		return cairnerr.Wrapf(err, "table %s", table.Name)
	}
	for roll := count + bonus; roll <= dice.Max(count, sides, bonus); roll++ {
		if len(table.Matching(roll)) == 0 {
			return cairnerr.Validationf("table %s: roll %d of %s has no entry", table.Name, roll, table.Formula).
				WithMeta("table", table.Name)
		}
	}

	return nil
}

func (d *entityDoc) toTemplate(deck string) (*entities.EntityTemplate, error) {
	if strings.TrimSpace(d.Name) == "" {
		return nil, cairnerr.Validation("entity name is required")
	}

	tmpl := &entities.EntityTemplate{
		Deck:         deck,
		Name:         d.Name,
		OriginalName: d.OriginalName,
	}

	switch entities.EntityKind(d.Kind) {
	case entities.KindItem, "":
		item, err := d.toItem()
		if err != nil {
			return nil, err
		}
		tmpl.Kind = entities.KindItem
		tmpl.Item = item
	case entities.KindActor:
		actor, err := d.toActor()
		if err != nil {
			return nil, err
		}
		tmpl.Kind = entities.KindActor
		tmpl.Actor = actor
	default:
		tmpl.Kind = entities.KindNone
	}

	return tmpl, nil
}

func (d *entityDoc) toItem() (*entities.Item, error) {
	if err := encumbrance.ValidateSlots(d.Slots); err != nil {
		return nil, cairnerr.Wrapf(err, "item %s", d.Name)
	}

	itemType := entities.ItemType(d.Type)
	if itemType == "" {
		itemType = entities.ItemTypeItem
	}

	return &entities.Item{
		Name:        d.Name,
		Type:        itemType,
		Slots:       d.Slots,
		Quantity:    d.Quantity,
		Armor:       d.Armor,
		Equipped:    d.Equipped,
		Damage:      d.Damage,
		Description: d.Description,
	}, nil
}

func (d *entityDoc) toActor() (*entities.Actor, error) {
	actorType := entities.ActorType(d.Type)
	switch actorType {
	case entities.ActorTypeCharacter, entities.ActorTypeNPC, entities.ActorTypeContainer:
	case "":
		actorType = entities.ActorTypeNPC
	default:
		return nil, cairnerr.Validationf("actor %s: unknown type %q", d.Name, d.Type)
	}

	actor := &entities.Actor{
		Name: d.Name,
		Type: actorType,
		Abilities: entities.Abilities{
			STR: entities.NewScore(d.STR),
			DEX: entities.NewScore(d.DEX),
			WIL: entities.NewScore(d.WIL),
		},
		HP:          entities.NewScore(d.HP),
		BaseArmor:   d.Armor,
		Description: d.Description,
	}

	for i := range d.Items {
		item, err := d.Items[i].toItem()
		if err != nil {
			return nil, cairnerr.Wrapf(err, "actor %s", d.Name)
		}
		actor.Items = append(actor.Items, item)
	}

	encumbrance.Prepare(actor)
	return actor, nil
}

func parseResultKind(kind string) (entities.ResultKind, error) {
	switch entities.ResultKind(kind) {
	case "", entities.ResultText:
		return entities.ResultText, nil
	case entities.ResultEntity:
		return entities.ResultEntity, nil
	case entities.ResultTable:
		return entities.ResultTable, nil
	}
	return "", cairnerr.Validationf("unknown result kind %q", kind)
}

// Package encumbrance derives slot usage, encumbrance and armor from an
// actor's possessions.
package encumbrance

import (
	"math"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/entities"
	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
)

const (
	// MilliSlotsPerSlot is the fixed-point subdivision of one inventory slot
	MilliSlotsPerSlot = 1000
	// Capacity is the slot count at which a character becomes encumbered
	Capacity = 10
	// MaxArmor caps the armor any actor can benefit from
	MaxArmor = 3
	// MinSlots is the smallest non-zero slot cost an item may carry
	MinSlots = 0.001
)

// Summary is the result of recomputing encumbrance for a set of items
type Summary struct {
	SlotsUsed  float64
	Encumbered bool
}

// MilliSlots returns the integer milli-slot cost of one item stack.
// Each item is truncated on its own before any summing.
func MilliSlots(item *entities.Item) int64 {
	perItem := int64(math.Round(item.Slots * MilliSlotsPerSlot))
	return perItem * int64(item.Count())
}

// SlotsUsed sums the slot cost of items at milli-slot precision
func SlotsUsed(items []*entities.Item) float64 {
	var total int64
	for _, item := range items {
		if item == nil {
			continue
		}
		total += MilliSlots(item)
	}
	return float64(total) / MilliSlotsPerSlot
}

// Encumbered reports whether slotsUsed reaches capacity
func Encumbered(slotsUsed float64) bool {
	return slotsUsed >= Capacity
}

// Recompute returns slot usage and the encumbered flag for items
func Recompute(items []*entities.Item) Summary {
	slots := SlotsUsed(items)
	return Summary{
		SlotsUsed:  slots,
		Encumbered: Encumbered(slots),
	}
}

// ItemArmor sums armor over equipped armor and generic items, uncapped
func ItemArmor(items []*entities.Item) int {
	total := 0
	for _, item := range items {
		if item == nil || !item.Equipped || !item.CountsTowardArmor() {
			continue
		}
		total += item.Armor
	}
	return total
}

// ArmorTotal is ItemArmor capped at MaxArmor
func ArmorTotal(items []*entities.Item) int {
	return capArmor(ItemArmor(items))
}

// Prepare writes the derived fields of actor according to its type.
// It is idempotent: preparing twice with the same items changes nothing.
func Prepare(actor *entities.Actor) {
	if actor == nil {
		return
	}

	switch actor.Type {
	case entities.ActorTypeCharacter:
		summary := Recompute(actor.Items)
		actor.Armor = ArmorTotal(actor.Items)
		actor.SlotsUsed = summary.SlotsUsed
		actor.Encumbered = summary.Encumbered
		if actor.Encumbered {
			actor.HP.Value = 0
		}
	case entities.ActorTypeNPC:
		actor.Armor = capArmor(max(ItemArmor(actor.Items), actor.BaseArmor))
	case entities.ActorTypeContainer:
		actor.SlotsUsed = SlotsUsed(actor.Items)
	}
}

// ValidateSlots rejects slot costs that cannot be represented in milli-slots
func ValidateSlots(slots float64) error {
	if math.IsNaN(slots) || math.IsInf(slots, 0) {
		return cairnerr.InvalidArgument("slots must be a number")
	}
	if slots < 0 {
		return cairnerr.InvalidArgumentf("slots must not be negative, got %v", slots)
	}
	if slots != 0 && slots < MinSlots {
		return cairnerr.InvalidArgumentf("slots must be 0 or at least %v, got %v", MinSlots, slots)
	}
	return nil
}

func capArmor(armor int) int {
	if armor > MaxArmor {
		return MaxArmor
	}
	return armor
}

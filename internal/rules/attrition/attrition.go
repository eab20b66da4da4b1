// Package attrition resolves a hit against Cairn's armor, HP and STR cascade.
package attrition

import (
	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
)

// Consequence is the narrative outcome of a resolved hit
type Consequence string

const (
	ConsequenceNone    Consequence = "none"
	ConsequenceScars   Consequence = "scars"
	ConsequenceStrSave Consequence = "str_save"
	ConsequenceDeath   Consequence = "death"
)

// Result is the state after one hit
type Result struct {
	MitigatedDamage int
	NewHP           int
	NewSTR          int
}

// Resolve applies damage reduced by armor to HP, overflowing into STR.
// Inputs are assumed validated and non-negative.
func Resolve(damage, armor, hp, str int) Result {
	dmg := damage - armor
	if dmg < 0 {
		dmg = 0
	}

	if dmg <= hp {
		return Result{
			MitigatedDamage: dmg,
			NewHP:           hp - dmg,
			NewSTR:          str,
		}
	}

	newSTR := str - (dmg - hp)
	if newSTR < 0 {
		newSTR = 0
	}

	return Result{
		MitigatedDamage: dmg,
		NewHP:           0,
		NewSTR:          newSTR,
	}
}

// Classify names the consequence of going from (hp, str) to r.
// Checked in order: death, STR save, scars.
func Classify(hp, str int, r Result) Consequence {
	if r.NewSTR < str {
		if r.NewSTR == 0 {
			return ConsequenceDeath
		}
		return ConsequenceStrSave
	}
	if r.NewHP == 0 && hp != 0 {
		return ConsequenceScars
	}
	return ConsequenceNone
}

// ValidateDamage rejects damage values the engine must never see
func ValidateDamage(damage int) error {
	if damage < 0 {
		return cairnerr.InvalidArgumentf("damage must not be negative, got %d", damage).
			WithMeta("damage", damage)
	}
	return nil
}

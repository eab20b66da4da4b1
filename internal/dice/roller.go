package dice

// Roller provides an interface for rolling dice
// This allows us to inject seeded or scripted implementations for testing
type Roller interface {
	// Roll rolls count dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

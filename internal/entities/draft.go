package entities

// CharacterDraft accumulates a character while it is being rolled up.
// It owns Items and Actors until the character is persisted.
type CharacterDraft struct {
	Name       string
	Abilities  Abilities
	HP         int
	Gold       int
	Age        int
	Background string
	Biography  string
	// Traits holds the biography trait labels keyed by template placeholder
	Traits map[string]string

	Items  []*Item
	Actors []*Actor
}

// NewCharacterDraft returns an empty draft ready for rolling
func NewCharacterDraft() *CharacterDraft {
	return &CharacterDraft{
		Traits: make(map[string]string),
	}
}

// ToActor assembles the character actor from the draft
func (d *CharacterDraft) ToActor() *Actor {
	return &Actor{
		Name:       d.Name,
		Type:       ActorTypeCharacter,
		Abilities:  d.Abilities,
		HP:         NewScore(d.HP),
		Gold:       d.Gold,
		Age:        d.Age,
		Background: d.Background,
		Biography:  d.Biography,
		Items:      CloneItems(d.Items),
	}
}

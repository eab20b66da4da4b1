package entities

// EntityKind tags what a content template materializes into
type EntityKind string

const (
	KindItem  EntityKind = "item"
	KindActor EntityKind = "actor"
	KindNone  EntityKind = "none"
)

// EntityTemplate is a named item or actor stored in a content deck.
// Exactly one of Item or Actor is set, matching Kind.
type EntityTemplate struct {
	Deck         string
	Name         string
	OriginalName string
	Kind         EntityKind

	Item  *Item
	Actor *Actor
}

// LookupName returns the canonical name when one is set, else the display name
func (t *EntityTemplate) LookupName() string {
	if t.OriginalName != "" {
		return t.OriginalName
	}
	return t.Name
}

// Clone returns a deep copy independent of the stored template
func (t *EntityTemplate) Clone() *EntityTemplate {
	if t == nil {
		return nil
	}
	clone := *t
	clone.Item = t.Item.Clone()
	clone.Actor = t.Actor.Clone()
	return &clone
}

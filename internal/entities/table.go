package entities

// ResultKind tells what a table entry points at
type ResultKind string

const (
	// ResultText is a plain label with no reference behind it
	ResultText ResultKind = "text"
	// ResultEntity references an item or actor template by name
	ResultEntity ResultKind = "entity"
	// ResultTable references another table in the same deck
	ResultTable ResultKind = "table"
)

// WeightedTable is a random table identified by (Deck, Name)
type WeightedTable struct {
	Deck         string
	Name         string
	OriginalName string
	// Formula is the dice expression rolled on each draw
	Formula string
	Entries []*TableEntry
}

// LookupName returns the canonical name when one is set, else the display name
func (t *WeightedTable) LookupName() string {
	if t.OriginalName != "" {
		return t.OriginalName
	}
	return t.Name
}

// Matching returns every entry whose range contains roll, in table order
func (t *WeightedTable) Matching(roll int) []*TableEntry {
	var out []*TableEntry
	for _, entry := range t.Entries {
		if entry.Contains(roll) {
			out = append(out, entry)
		}
	}
	return out
}

// TableEntry is one row of a WeightedTable covering the inclusive range [Low, High]
type TableEntry struct {
	Low          int
	High         int
	Weight       int
	Kind         ResultKind
	Text         string
	OriginalText string
}

// Contains reports whether roll falls inside the entry's range
func (e *TableEntry) Contains(roll int) bool {
	return roll >= e.Low && roll <= e.High
}

// LookupLabel is the name used to find the referenced table or entity
func (e *TableEntry) LookupLabel() string {
	if e.OriginalText != "" {
		return e.OriginalText
	}
	return e.Text
}

// TableRef names a table and whether its results are themselves table names
type TableRef struct {
	Deck         string
	Name         string
	WithSubTable bool
}

// TableResult is one entry produced by a draw
type TableResult struct {
	Deck  string
	Table string
	Roll  int
	Depth int
	Entry *TableEntry
}

// Label is the lookup label of the drawn entry
func (r *TableResult) Label() string {
	return r.Entry.LookupLabel()
}

// InventoryRollSpec maps a table to the ordered decks its results are materialized from
type InventoryRollSpec struct {
	Label string
	Table TableRef
	// Decks are searched in order; the first deck holding the label wins
	Decks []string
}

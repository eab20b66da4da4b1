package content

// deckFile is the on-disk YAML layout of a deck
type deckFile struct {
	Deck     string      `yaml:"deck"`
	Label    string      `yaml:"label"`
	Tables   []tableDoc  `yaml:"tables"`
	Entities []entityDoc `yaml:"entities"`
}

type tableDoc struct {
	Name         string     `yaml:"name"`
	OriginalName string     `yaml:"original_name"`
	Formula      string     `yaml:"formula"`
	Entries      []entryDoc `yaml:"entries"`
}

type entryDoc struct {
	Range        []int  `yaml:"range,flow"`
	Weight       int    `yaml:"weight"`
	Kind         string `yaml:"kind"`
	Text         string `yaml:"text"`
	OriginalText string `yaml:"original_text"`
}

type entityDoc struct {
	Name         string `yaml:"name"`
	OriginalName string `yaml:"original_name"`
	Kind         string `yaml:"kind"`
	Type         string `yaml:"type"`
	Description  string `yaml:"description"`

	// item fields
	Slots    float64 `yaml:"slots"`
	Quantity int     `yaml:"quantity"`
	Armor    int     `yaml:"armor"`
	Equipped bool    `yaml:"equipped"`
	Damage   string  `yaml:"damage"`

	// actor fields
	HP    int         `yaml:"hp"`
	STR   int         `yaml:"str"`
	DEX   int         `yaml:"dex"`
	WIL   int         `yaml:"wil"`
	Items []entityDoc `yaml:"items"`
}

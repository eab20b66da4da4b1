package content

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
)

//go:embed decks/*.yaml
var defaultDecks embed.FS

// Default returns a store holding the decks shipped with the module
func Default() (*Store, error) {
	return LoadFS(defaultDecks, "decks")
}

// LoadDir reads every *.yaml / *.yml deck file in dir
func LoadDir(dir string) (*Store, error) {
	return LoadFS(os.DirFS(dir), ".")
}

// LoadFS reads every deck file directly under root in fsys
func LoadFS(fsys fs.FS, root string) (*Store, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, cairnerr.Wrapf(err, "reading deck directory %s", root)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := path.Ext(entry.Name())
		if strings.EqualFold(ext, ".yaml") || strings.EqualFold(ext, ".yml") {
			files = append(files, path.Join(root, entry.Name()))
		}
	}
	sort.Strings(files)

	decks := make([]*Deck, 0, len(files))
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, cairnerr.Wrapf(err, "reading deck file %s", file)
		}
		deck, err := ParseDeck(data)
		if err != nil {
			return nil, cairnerr.Wrapf(err, "loading deck file %s", file)
		}
		decks = append(decks, deck)
	}

	return NewStore(decks...)
}

// ParseDeck decodes and validates a single YAML deck document
func ParseDeck(data []byte) (*Deck, error) {
	var file deckFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, cairnerr.WrapWithCode(err, cairnerr.CodeValidation, "decoding deck")
	}
	return file.toDeck()
}

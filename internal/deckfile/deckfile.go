// Package deckfile loads deck definitions from JSON or YAML documents and
// hands them to the deck engine as already-parsed data. It is the only place
// that touches the filesystem for definitions.
package deckfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tabletoptools/deckhand/internal/deck"
)

// ErrNoDefinitions is returned when a directory holds no definition files.
var ErrNoDefinitions = errors.New("no deck definition files found")

// CardDef is one card entry of a definition document.
type CardDef struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// Definition is a parsed deck definition document. Name and Reshuffle are
// optional; Cards is required and non-empty.
type Definition struct {
	Name      string    `json:"name" yaml:"name"`
	Reshuffle bool      `json:"reshuffle" yaml:"reshuffle"`
	Cards     []CardDef `json:"cards" yaml:"cards"`
}

// Entries converts the document's card list into engine entries.
func (d Definition) Entries() []deck.Entry {
	out := make([]deck.Entry, len(d.Cards))
	for i, c := range d.Cards {
		out[i] = deck.Entry{Name: c.Name, Count: c.Count}
	}
	return out
}

// Loaded pairs a definition with the deck id it will register under.
type Loaded struct {
	ID  string
	Def Definition
}

// Load reads a single definition file. The codec is chosen by extension:
// .json, .yaml, or .yml.
func Load(path string) (Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read deck definition: %w", err)
	}

	var def Definition
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(raw, &def)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &def)
	default:
		return Definition{}, fmt.Errorf("unsupported deck definition format %q", ext)
	}
	if err != nil {
		return Definition{}, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	if len(def.Cards) == 0 {
		return Definition{}, fmt.Errorf("%s: definition has no cards", filepath.Base(path))
	}
	if def.Name == "" {
		def.Name = deckID(path)
	}
	return def, nil
}

// LoadDir loads every definition file in dir, in lexical filename order.
// Each file becomes one deck whose id is the file name without extension.
func LoadDir(dir string) ([]Loaded, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read deck directory: %w", err)
	}

	var out []Loaded
	for _, ent := range dirents {
		if ent.IsDir() || !isDefinitionFile(ent.Name()) {
			continue
		}
		path := filepath.Join(dir, ent.Name())
		def, err := Load(path)
		if err != nil {
			return nil, err
		}
		out = append(out, Loaded{ID: deckID(path), Def: def})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDefinitions, dir)
	}
	return out, nil
}

// LoadPath loads path as a directory of definitions or as a single file.
func LoadPath(path string) ([]Loaded, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat deck path: %w", err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	def, err := Load(path)
	if err != nil {
		return nil, err
	}
	return []Loaded{{ID: deckID(path), Def: def}}, nil
}

// Register validates each loaded definition and registers it with the
// manager, honoring the definition's reshuffle flag and carrying its name
// through as the deck's display title.
func Register(m *deck.Manager, defs []Loaded) error {
	for _, l := range defs {
		table, err := deck.NewTable(l.Def.Entries())
		if err != nil {
			return fmt.Errorf("deck %q: %w", l.ID, err)
		}
		var opts []deck.Option
		if l.Def.Name != "" {
			opts = append(opts, deck.WithTitle(l.Def.Name))
		}
		if l.Def.Reshuffle {
			opts = append(opts, deck.WithAutoReshuffle())
		}
		if _, err := m.Create(l.ID, table, opts...); err != nil {
			return err
		}
	}
	return nil
}

func isDefinitionFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func deckID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

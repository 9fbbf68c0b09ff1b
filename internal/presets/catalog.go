package presets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Conceptual-Machines/tonalflow-api/internal/scales"
	"github.com/Conceptual-Machines/tonalflow-api/pkg/embedded"
)

var ErrPresetNotFound = errors.New("preset not found")

// Preset is a named practice routine written in the scale DSL
type Preset struct {
	Name        string `toml:"name" json:"name"`
	Description string `toml:"description" json:"description"`
	DSL         string `toml:"dsl" json:"dsl"`

	Exercises []scales.Options `toml:"-" json:"exercises"`
}

type catalogFile struct {
	Presets []Preset `toml:"preset"`
}

// Catalog holds presets in file order, with their DSL already parsed
type Catalog struct {
	presets []Preset
	byName  map[string]int
}

// DefaultCatalog loads the catalog embedded in the binary
func DefaultCatalog(ctx context.Context, parser *Parser) (*Catalog, error) {
	return ParseCatalog(ctx, parser, embedded.PresetsTOML)
}

// LoadCatalog reads a TOML catalog from disk
func LoadCatalog(ctx context.Context, parser *Parser, path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets: %w", err)
	}
	return ParseCatalog(ctx, parser, data)
}

// ParseCatalog decodes [[preset]] tables and parses every preset's DSL, so a
// broken preset fails at startup rather than on first request.
func ParseCatalog(ctx context.Context, parser *Parser, data []byte) (*Catalog, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing presets: %w", err)
	}

	c := &Catalog{
		presets: make([]Preset, 0, len(file.Presets)),
		byName:  make(map[string]int, len(file.Presets)),
	}

	for _, p := range file.Presets {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			return nil, fmt.Errorf("preset #%d has no name", len(c.presets)+1)
		}
		if _, dup := c.byName[p.Name]; dup {
			return nil, fmt.Errorf("duplicate preset %q", p.Name)
		}

		exercises, err := parser.Parse(ctx, p.DSL)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		p.Exercises = exercises

		c.byName[p.Name] = len(c.presets)
		c.presets = append(c.presets, p)
	}

	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.presets)
}

// List returns every preset in file order
func (c *Catalog) List() []Preset {
	return append([]Preset(nil), c.presets...)
}

func (c *Catalog) Get(name string) (Preset, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Preset{}, false
	}
	return c.presets[i], true
}

// Options returns the exercises of a preset
func (c *Catalog) Options(name string) ([]scales.Options, error) {
	p, ok := c.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return append([]scales.Options(nil), p.Exercises...), nil
}

// Package pokemon turns raw creature and probability records into derived domain values.
package pokemon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Species is the static data of one creature species.
type Species struct {
	Number      int     `yaml:"number"`
	Name        string  `yaml:"name"`
	Type1       string  `yaml:"type1"`
	Type2       string  `yaml:"type2,omitempty"`
	BaseAttack  int     `yaml:"base_attack"`
	BaseDefense int     `yaml:"base_defense"`
	BaseStamina int     `yaml:"base_stamina"`
	BaseHeight  float64 `yaml:"base_height"`
	BaseWeight  float64 `yaml:"base_weight"`
	FleeRate    float64 `yaml:"flee_rate"`
	Class       string  `yaml:"class,omitempty"`
}

// Catalog indexes species by number. It is read-only once built.
type Catalog struct {
	species map[int]Species
}

// NewCatalog builds a catalog from the given entries; later entries win.
func NewCatalog(entries ...Species) *Catalog {
	c := &Catalog{species: make(map[int]Species, len(entries))}
	for _, s := range entries {
		if s.Class == "" {
			s.Class = ClassNormal
		}
		c.species[s.Number] = s
	}
	return c
}

// DefaultCatalog returns the built-in species table.
func DefaultCatalog() *Catalog {
	return NewCatalog(builtinSpecies...)
}

// Lookup returns the species with the given number.
func (c *Catalog) Lookup(number int) (Species, bool) {
	s, ok := c.species[number]
	return s, ok
}

// Len returns the number of known species.
func (c *Catalog) Len() int {
	return len(c.species)
}

// With returns a new catalog holding c's entries overlaid with extra.
func (c *Catalog) With(extra ...Species) *Catalog {
	merged := make([]Species, 0, len(c.species)+len(extra))
	for _, s := range c.species {
		merged = append(merged, s)
	}
	merged = append(merged, extra...)
	return NewCatalog(merged...)
}

type catalogFile struct {
	Species []Species `yaml:"species"`
}

// LoadCatalog reads a YAML species file and overlays it on the built-in table.
// An empty path returns the built-in table.
func LoadCatalog(path string) (*Catalog, error) {
	base := DefaultCatalog()
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read species file %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse species file %s: %w", path, err)
	}

	for i, s := range file.Species {
		if s.Number <= 0 {
			return nil, fmt.Errorf("species file %s: entry %d has no number", path, i)
		}
		if s.Name == "" {
			return nil, fmt.Errorf("species file %s: species %d has no name", path, s.Number)
		}
	}

	return base.With(file.Species...), nil
}

// Package levels holds the fixed, ordered riddle catalog. The catalog is an
// embedded YAML document parsed once at startup and never mutated.
package levels

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cipherhunt/internal/common"
	"github.com/dmitrijs2005/cipherhunt/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var embeddedCatalog []byte

var defaultCatalog = MustLoad(embeddedCatalog)

// Default returns the process-wide embedded catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Catalog is an immutable, ordered list of levels. Level i lives at index i-1.
type Catalog struct {
	levels []models.Level
}

type catalogFile struct {
	Levels []models.Level `yaml:"levels"`
}

// Load parses and validates a catalog document. Ids must run 1..N in order
// and every level needs a prompt and an answer.
func Load(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Levels) == 0 {
		return nil, errors.New("catalog has no levels")
	}
	for i, l := range f.Levels {
		if l.ID != i+1 {
			return nil, fmt.Errorf("level at position %d has id %d, want %d", i+1, l.ID, i+1)
		}
		if strings.TrimSpace(l.Prompt) == "" {
			return nil, fmt.Errorf("level %d has an empty prompt", l.ID)
		}
		if strings.TrimSpace(l.Answer) == "" {
			return nil, fmt.Errorf("level %d has an empty answer", l.ID)
		}
	}
	return &Catalog{levels: f.Levels}, nil
}

// MustLoad is Load that panics; the embedded catalog is part of the build.
func MustLoad(data []byte) *Catalog {
	c, err := Load(data)
	if err != nil {
		panic(err)
	}
	return c
}

// New builds a catalog from levels already in memory, mostly for tests.
func New(levels ...models.Level) (*Catalog, error) {
	doc, err := yaml.Marshal(catalogFile{Levels: levels})
	if err != nil {
		return nil, err
	}
	return Load(doc)
}

// Len is N, the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// Get returns level id, or common.ErrUnknownLevel.
func (c *Catalog) Get(id int) (models.Level, error) {
	if id < 1 || id > len(c.levels) {
		return models.Level{}, fmt.Errorf("level %d: %w", id, common.ErrUnknownLevel)
	}
	return c.levels[id-1], nil
}

// All returns a copy of the levels in order.
func (c *Catalog) All() []models.Level {
	out := make([]models.Level, len(c.levels))
	copy(out, c.levels)
	return out
}

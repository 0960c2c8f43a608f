// Package catalog holds the fixed set of book names and the shuffled draw
// pools handed out to each level.
package catalog

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/alexanderramin/testament/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed books.yaml
var booksYAML []byte

// document mirrors books.yaml.
type document struct {
	Old []string `yaml:"old"`
	New []string `yaml:"new"`
}

// Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	old   []string
	new   []string
	index map[string]domain.Category
}

// Load parses the embedded book list.
func Load() (*Catalog, error) {
	return Parse(booksYAML)
}

// MustLoad is Load for process start-up; a broken embed is a build defect.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded books.yaml: %v", err))
	}
	return c
}

// Parse builds a catalog from a YAML document with "old" and "new" lists.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return New(doc.Old, doc.New)
}

// New builds a catalog from two ordered lists. Names are trimmed; empty names
// and names listed more than once (in either list) are rejected.
func New(oldBooks, newBooks []string) (*Catalog, error) {
	if len(oldBooks) == 0 || len(newBooks) == 0 {
		return nil, fmt.Errorf("catalog needs both categories (old=%d, new=%d)", len(oldBooks), len(newBooks))
	}

	c := &Catalog{
		old:   make([]string, 0, len(oldBooks)),
		new:   make([]string, 0, len(newBooks)),
		index: make(map[string]domain.Category, len(oldBooks)+len(newBooks)),
	}
	add := func(list *[]string, name string, cat domain.Category) error {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("empty book name in %s list", cat)
		}
		if prev, dup := c.index[name]; dup {
			return fmt.Errorf("book %q listed in %s and %s", name, prev, cat)
		}
		c.index[name] = cat
		*list = append(*list, name)
		return nil
	}
	for _, name := range oldBooks {
		if err := add(&c.old, name, domain.CategoryOld); err != nil {
			return nil, err
		}
	}
	for _, name := range newBooks {
		if err := add(&c.new, name, domain.CategoryNew); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Classify returns the category of item. CategoryUnknown means the caller is
// holding a name that never came from this catalog.
func (c *Catalog) Classify(item string) domain.Category {
	return c.index[item]
}

// Items returns every name, old list first, in canonical order.
func (c *Catalog) Items() []string {
	out := make([]string, 0, c.Len())
	out = append(out, c.old...)
	return append(out, c.new...)
}

// List returns the names of one category in canonical order.
func (c *Catalog) List(cat domain.Category) []string {
	switch cat {
	case domain.CategoryOld:
		return append([]string(nil), c.old...)
	case domain.CategoryNew:
		return append([]string(nil), c.new...)
	}
	return nil
}

func (c *Catalog) Len() int {
	return len(c.old) + len(c.new)
}

// Shuffled returns a uniform random permutation of all names (Fisher–Yates).
// A nil rng uses the runtime's global source.
func (c *Catalog) Shuffled(rng *rand.Rand) []string {
	items := c.Items()
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}
	for i := len(items) - 1; i > 0; i-- {
		j := intN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
	return items
}

package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// File is the on-disk catalog layout.
type File struct {
	Names     map[string]domain.AttrKey           `yaml:"names" validate:"required,min=1,dive,keys,required,endkeys,attrkey"`
	Rolls     map[domain.AttrKey]domain.RollRange `yaml:"rolls" validate:"dive,keys,attrkey,endkeys"`
	MainStats map[domain.Slot][]domain.AttrKey    `yaml:"mainStats" validate:"required,dive,keys,min=3,max=5,endkeys,min=1,dive,attrkey"`
	SubStats  []domain.AttrKey                    `yaml:"subStats" validate:"required,min=4,dive,attrkey"`
}

// Catalog is the read-only reference data the scorer looks keys up in.
// It is never mutated after construction and may be shared between goroutines.
type Catalog struct {
	names     map[string]domain.AttrKey
	rolls     map[domain.AttrKey]domain.RollRange
	mainStats map[domain.Slot][]domain.AttrKey
	subStats  []domain.AttrKey
}

var validate = domain.NewValidator()

// Default returns the built-in 5-star catalog.
func Default() (*Catalog, error) {
	c, err := Parse(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("default catalog: %w", err)
	}
	return c, nil
}

// MustDefault is Default for package-level setup and tests.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a catalog yaml. An empty path selects the built-in catalog.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog yaml %s: %w", path, err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

func Parse(b []byte) (*Catalog, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}
	return New(f)
}

// New validates f and builds a Catalog from it.
func New(f File) (*Catalog, error) {
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	for _, s := range []domain.Slot{domain.SlotSands, domain.SlotGoblet, domain.SlotCirclet} {
		if len(f.MainStats[s]) == 0 {
			return nil, fmt.Errorf("invalid catalog: no main stat candidates for %s", s)
		}
	}
	if hasDuplicates(f.SubStats) {
		return nil, errors.New("invalid catalog: duplicate substat candidates")
	}

	c := &Catalog{
		names:     make(map[string]domain.AttrKey, len(f.Names)),
		rolls:     make(map[domain.AttrKey]domain.RollRange, len(f.Rolls)),
		mainStats: make(map[domain.Slot][]domain.AttrKey, len(f.MainStats)),
		subStats:  append([]domain.AttrKey(nil), f.SubStats...),
	}
	for title, key := range f.Names {
		c.names[foldTitle(title)] = key
	}
	for k, r := range f.Rolls {
		c.rolls[k] = r
	}
	for s, keys := range f.MainStats {
		c.mainStats[s] = append([]domain.AttrKey(nil), keys...)
	}
	return c, nil
}

func hasDuplicates(keys []domain.AttrKey) bool {
	seen := make(map[domain.AttrKey]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			return true
		}
		seen[k] = struct{}{}
	}
	return false
}

func foldTitle(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), " "))
}

// Lookup resolves a display title, ignoring case and repeated whitespace.
func (c *Catalog) Lookup(title string) domain.AttrKey {
	return c.names[foldTitle(title)]
}

func (c *Catalog) RollRange(k domain.AttrKey) (domain.RollRange, bool) {
	r, ok := c.rolls[k]
	return r, ok
}

// MainCandidates lists the eligible main stats of a free-main slot in catalog
// order. The returned slice must not be modified.
func (c *Catalog) MainCandidates(s domain.Slot) []domain.AttrKey {
	return c.mainStats[s]
}

// SubCandidates lists the substat kinds in catalog order. The returned slice
// must not be modified.
func (c *Catalog) SubCandidates() []domain.AttrKey {
	return c.subStats
}

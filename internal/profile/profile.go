package profile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/domain"

	"gopkg.in/yaml.v3"
)

// Character is the stat priority of one character.
type Character struct {
	// EnkaID is the avatarId used by Enka snapshots; 0 when not importable.
	EnkaID  int            `yaml:"enkaId" validate:"gte=0"`
	Weights domain.Weights `yaml:"weights" validate:"required,min=1,dive,keys,attrkey,endkeys,gte=0"`
}

type file struct {
	Characters map[string]Character `yaml:"characters" validate:"required,min=1,dive,keys,required,endkeys"`
}

// Set holds the weight profiles of every configured character.
type Set struct {
	byName map[string]Character
	byEnka map[int]string
}

var validate = domain.NewValidator()

func Load(path string) (*Set, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles yaml %s: %w", path, err)
	}
	s, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("profiles %s: %w", path, err)
	}
	return s, nil
}

func Parse(b []byte) (*Set, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse profiles yaml: %w", err)
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("invalid profiles: %w", err)
	}

	s := &Set{
		byName: make(map[string]Character, len(f.Characters)),
		byEnka: make(map[int]string),
	}
	for name, c := range f.Characters {
		name = strings.TrimSpace(name)
		if _, ok := s.byName[name]; ok {
			return nil, fmt.Errorf("invalid profiles: duplicate character %q", name)
		}
		if c.EnkaID != 0 {
			if other, ok := s.byEnka[c.EnkaID]; ok {
				return nil, fmt.Errorf("invalid profiles: enkaId %d used by %q and %q", c.EnkaID, other, name)
			}
			s.byEnka[c.EnkaID] = name
		}
		s.byName[name] = c
	}
	return s, nil
}

var ErrUnknownCharacter = errors.New("unknown character")

// Weights returns a copy of the character's weights.
func (s *Set) Weights(name string) (domain.Weights, error) {
	c, ok := s.byName[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharacter, name)
	}
	w := make(domain.Weights, len(c.Weights))
	for k, v := range c.Weights {
		w[k] = v
	}
	return w, nil
}

// ByEnkaID resolves an Enka avatarId to a configured character name.
func (s *Set) ByEnkaID(id int) (string, bool) {
	name, ok := s.byEnka[id]
	return name, ok
}

// Names lists configured characters alphabetically.
func (s *Set) Names() []string {
	out := make([]string, 0, len(s.byName))
	for n := range s.byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

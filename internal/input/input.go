package input

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/domain"
	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/mark"

	"github.com/tidwall/gjson"
)

// Character is one character's artifact set as read from a records file.
type Character struct {
	Name      string
	Artifacts []mark.RawArtifact
}

// Load reads a records file:
//
//	{"characters": [{"name": "hutao", "artifacts": [
//	  {"slot": "circlet", "main": ["CRIT DMG", 62.2],
//	   "subs": [["CRIT Rate", 3.9], {"title": "ATK%", "value": 5.8}]}
//	]}]}
//
// Each attribute is either a [title, value] pair or an object with a title,
// name, key or id field and a value field.
func Load(path string) ([]Character, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records %s: %w", path, err)
	}
	chars, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("records %s: %w", path, err)
	}
	return chars, nil
}

func Parse(b []byte) ([]Character, error) {
	if !gjson.ValidBytes(b) {
		return nil, errors.New("invalid json")
	}
	list := gjson.GetBytes(b, "characters")
	if !list.IsArray() {
		return nil, errors.New(`missing "characters" array`)
	}

	var out []Character
	var err error
	list.ForEach(func(idx, c gjson.Result) bool {
		name := strings.TrimSpace(c.Get("name").String())
		if name == "" {
			err = fmt.Errorf("characters[%d]: missing name", idx.Int())
			return false
		}
		ch := Character{Name: name}
		c.Get("artifacts").ForEach(func(aidx, a gjson.Result) bool {
			var raw mark.RawArtifact
			raw, err = parseArtifact(a)
			if err != nil {
				err = fmt.Errorf("characters[%d] %s: artifacts[%d]: %w", idx.Int(), name, aidx.Int(), err)
				return false
			}
			ch.Artifacts = append(ch.Artifacts, raw)
			return true
		})
		if err != nil {
			return false
		}
		out = append(out, ch)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func parseArtifact(a gjson.Result) (mark.RawArtifact, error) {
	slot, err := domain.ParseSlot(strings.ToLower(strings.TrimSpace(a.Get("slot").String())))
	if err != nil {
		return mark.RawArtifact{}, err
	}
	raw := mark.RawArtifact{Slot: slot}

	if m := a.Get("main"); m.Exists() {
		r := record(m)
		raw.Main = &r
	}
	subs := a.Get("subs")
	if subs.Exists() && !subs.IsArray() {
		return mark.RawArtifact{}, errors.New(`"subs" must be an array`)
	}
	for _, s := range subs.Array() {
		raw.Subs = append(raw.Subs, record(s))
	}
	return raw, nil
}

// record adapts either attribute shape. Anything else becomes an empty record,
// which the normalizer drops.
func record(r gjson.Result) mark.Record {
	switch {
	case r.IsArray():
		arr := r.Array()
		if len(arr) < 2 {
			return mark.Record{}
		}
		return mark.PairRecord(arr[0].String(), arr[1].Value())
	case r.IsObject():
		fields, _ := r.Value().(map[string]interface{})
		return mark.FieldRecord(fields)
	default:
		return mark.Record{}
	}
}

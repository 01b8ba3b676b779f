package mark

import (
	"testing"

	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/catalog"
	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cat := catalog.MustDefault()

	tests := []struct {
		name        string
		rec         Record
		wantTitle   string
		wantKey     domain.AttrKey
		wantValue   float64
		wantDisplay string
	}{
		{"crit rate", PairRecord("CRIT Rate", 15.6), "CRIT Rate", domain.CritRate, 15.6, "15.6%"},
		{"flat hp grouped", PairRecord("HP", 4780), "HP", domain.HPFlat, 4780, "4,780.0"},
		{"percent stat", PairRecord("ATK%", 5.8), "ATK%", domain.ATKPct, 5.8, "5.8%"},
		{"mastery", PairRecord("Elemental Mastery", 23), "Elemental Mastery", domain.Mastery, 23, "23.0"},
		{"recharge", PairRecord("Energy Recharge", 51.8), "Energy Recharge", domain.Recharge, 51.8, "51.8%"},
		{"case insensitive lookup", PairRecord("crit dmg", 7.8), "crit dmg", domain.CritDmg, 7.8, "7.8%"},
		{"elemental bonus", PairRecord("pyro elemental damage bonus", 46.6), "Pyro dmg-bonus", domain.ElementalDmg, 46.6, "46.6%"},
		{"elemental bonus fraction", PairRecord("Hydro Elemental Damage Bonus", 0.466), "Hydro dmg-bonus", domain.ElementalDmg, 46.6, "46.6%"},
		{"already canonical", PairRecord("Cryo dmg-bonus", 46.6), "Cryo dmg-bonus", domain.ElementalDmg, 46.6, "46.6%"},
		{"physical bonus", PairRecord("Physical Damage Bonus", 58.3), "phys dmg-bonus", domain.PhysicalDmg, 58.3, "58.3%"},
		{"string value", PairRecord("DEF", "23"), "DEF", domain.DEFFlat, 23, "23.0"},
		{"unmapped title", PairRecord("Mystery", 12345.67), "Mystery", domain.KeyNone, 12345.67, "12,345.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := Normalize(cat, tt.rec)
			require.True(t, ok)
			assert.Equal(t, tt.wantTitle, e.Title)
			assert.Equal(t, tt.wantKey, e.Key)
			assert.InDelta(t, tt.wantValue, e.Value, 1e-9)
			assert.Equal(t, tt.wantDisplay, e.Display)
			assert.Nil(t, e.Rolls)
			assert.Nil(t, e.Mark)
		})
	}
}

func TestNormalize_Absent(t *testing.T) {
	cat := catalog.MustDefault()

	for name, rec := range map[string]Record{
		"empty title":     PairRecord("", 3),
		"undefined title": PairRecord("undefined", 3),
		"nil value":       PairRecord("HP", nil),
		"zero value":      PairRecord("HP", 0),
		"negative value":  PairRecord("HP", -12.0),
		"bad string":      PairRecord("HP", "lots"),
		"empty string":    PairRecord("HP", ""),
		"unsupported":     PairRecord("HP", []int{1}),
		"empty object":    FieldRecord(nil),
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := Normalize(cat, rec)
			assert.False(t, ok)
		})
	}
}

func TestFieldRecord_NamePriority(t *testing.T) {
	r := FieldRecord(map[string]any{
		"id":    "HP",
		"name":  "ATK",
		"title": "CRIT DMG",
		"value": 7.8,
	})
	assert.Equal(t, "CRIT DMG", r.Title)

	r = FieldRecord(map[string]any{
		"title": "",
		"key":   "DEF%",
		"id":    "HP",
		"value": "7.3",
	})
	assert.Equal(t, "DEF%", r.Title)

	e, ok := Normalize(catalog.MustDefault(), r)
	require.True(t, ok)
	assert.Equal(t, domain.DEFPct, e.Key)
	assert.InDelta(t, 7.3, e.Value, 1e-9)
}

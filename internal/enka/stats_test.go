package enka

import (
	"testing"

	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/catalog"
	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/domain"
	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/mark"
	"github.com/genshinsim/gcsim/pkg/core/attributes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFightPropStat(t *testing.T) {
	assert.Equal(t, attributes.CD, fightPropStat("FIGHT_PROP_CRITICAL_HURT"))
	assert.Equal(t, attributes.PyroP, fightPropStat("FIGHT_PROP_FIRE_ADD_HURT"))
	assert.Equal(t, attributes.NoStat, fightPropStat("FIGHT_PROP_BASE_ATTACK"))
	assert.Equal(t, "", fightPropTitle("FIGHT_PROP_BASE_ATTACK"))
}

func TestStatTitles_Normalize(t *testing.T) {
	cat := catalog.MustDefault()
	want := map[attributes.Stat]domain.AttrKey{
		attributes.HP:   domain.HPFlat,
		attributes.HPP:  domain.HPPct,
		attributes.ATK:  domain.ATKFlat,
		attributes.ATKP: domain.ATKPct,
		attributes.DEF:  domain.DEFFlat,
		attributes.DEFP: domain.DEFPct,
		attributes.ER:   domain.Recharge,
		attributes.EM:   domain.Mastery,
		attributes.CR:   domain.CritRate,
		attributes.CD:   domain.CritDmg,
		attributes.Heal: domain.HealBonus,
		attributes.PhyP: domain.PhysicalDmg,
	}
	for stat, title := range statTitles {
		e, ok := mark.Normalize(cat, mark.PairRecord(title, 10))
		require.True(t, ok, title)
		key, fixed := want[stat]
		if !fixed {
			key = domain.ElementalDmg
		}
		assert.Equal(t, key, e.Key, "%s (%s)", title, stat)
	}
}

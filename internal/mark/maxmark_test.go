package mark

import (
	"testing"

	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/catalog"
	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dpsWeights = domain.Weights{
	domain.ATKPct:       75,
	domain.CritRate:     100,
	domain.CritDmg:      100,
	domain.ElementalDmg: 100,
	domain.Recharge:     55,
}

func TestComputeMaxMark(t *testing.T) {
	mm := ComputeMaxMark(catalog.MustDefault(), dpsWeights)

	// flower/plume: cr*6 + cd + atk% + er
	assert.InDelta(t, 830, mm.Total(domain.SlotFlower), 1e-9)
	assert.InDelta(t, 830, mm.Total(domain.SlotPlume), 1e-9)
	// sands: atk% main, then cr*6 + cd + er + 0
	assert.InDelta(t, 905, mm.Total(domain.SlotSands), 1e-9)
	// goblet: elemental main, substats as flower
	assert.InDelta(t, 1030, mm.Total(domain.SlotGoblet), 1e-9)
	// circlet: crit rate main (catalog order on tie), then cd*6 + atk% + er + 0
	assert.InDelta(t, 930, mm.Total(domain.SlotCirclet), 1e-9)

	assert.Zero(t, mm.Main(domain.SlotFlower))
	assert.Zero(t, mm.Main(domain.SlotPlume))
	assert.InDelta(t, 75, mm.Main(domain.SlotSands), 1e-9)
	assert.InDelta(t, 100, mm.Main(domain.SlotGoblet), 1e-9)
	assert.InDelta(t, 100, mm.Main(domain.SlotCirclet), 1e-9)
	assert.Equal(t, domain.CritRate, mm.MainKeys[domain.SlotCirclet-1])
}

func TestComputeMaxMark_PermutationInvariant(t *testing.T) {
	swapped, err := catalog.New(catalog.File{
		Names: map[string]domain.AttrKey{"CRIT Rate": domain.CritRate},
		MainStats: map[domain.Slot][]domain.AttrKey{
			domain.SlotSands:   {domain.Recharge, domain.ATKPct, domain.DEFPct, domain.HPPct, domain.Mastery},
			domain.SlotGoblet:  {domain.PhysicalDmg, domain.ElementalDmg, domain.ATKPct, domain.DEFPct, domain.HPPct, domain.Mastery},
			domain.SlotCirclet: {domain.CritDmg, domain.CritRate, domain.HealBonus, domain.ATKPct, domain.DEFPct, domain.HPPct, domain.Mastery},
		},
		SubStats: []domain.AttrKey{
			domain.CritDmg, domain.CritRate, domain.HPFlat, domain.HPPct, domain.DEFFlat,
			domain.DEFPct, domain.ATKFlat, domain.ATKPct, domain.Mastery, domain.Recharge,
		},
	})
	require.NoError(t, err)

	a := ComputeMaxMark(catalog.MustDefault(), dpsWeights)
	b := ComputeMaxMark(swapped, dpsWeights)

	assert.Equal(t, a.Totals, b.Totals)
	assert.Equal(t, a.Mains, b.Mains)
	assert.Equal(t, domain.CritRate, a.MainKeys[domain.SlotCirclet-1])
	assert.Equal(t, domain.CritDmg, b.MainKeys[domain.SlotCirclet-1])
}

func TestComputeMaxMark_EmptyProfile(t *testing.T) {
	mm := ComputeMaxMark(catalog.MustDefault(), nil)
	for _, s := range domain.Slots {
		assert.Zero(t, mm.Total(s), s.String())
		assert.Zero(t, mm.Main(s), s.String())
	}
}

package mark

import (
	"sort"

	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/catalog"
	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/domain"
)

// ComputeMaxMark returns the best achievable mark of every slot under w:
// the heaviest eligible main stat counted twice, then the heaviest substat
// counted six times and the next three once.
//
// The result depends only on w and the catalog and is meant to be computed per
// character, never shared between weight profiles.
func ComputeMaxMark(cat *catalog.Catalog, w domain.Weights) domain.MaxMark {
	var m domain.MaxMark
	for _, s := range domain.Slots {
		total := 0.0
		mainKey, fixed := s.FixedMain()
		if !fixed {
			if best := topByWeight(cat.MainCandidates(s), w, 1, domain.KeyNone); len(best) > 0 {
				mainKey = best[0]
				m.Mains[s-1] = w.Get(mainKey)
				m.MainKeys[s-1] = mainKey
				total += w.Get(mainKey) * 2
			}
		}

		for i, k := range topByWeight(cat.SubCandidates(), w, 4, mainKey) {
			if i == 0 {
				total += w.Get(k) * 6
			} else {
				total += w.Get(k)
			}
		}
		m.Totals[s-1] = total
	}
	return m
}

// topByWeight ranks candidates by descending weight, keeping catalog order on
// ties, and returns at most n of them. exclude is skipped.
func topByWeight(candidates []domain.AttrKey, w domain.Weights, n int, exclude domain.AttrKey) []domain.AttrKey {
	ranked := make([]domain.AttrKey, 0, len(candidates))
	for _, k := range candidates {
		if k == exclude {
			continue
		}
		ranked = append(ranked, k)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return w.Get(ranked[i]) > w.Get(ranked[j])
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

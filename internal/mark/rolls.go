package mark

import (
	"math"
	"sort"

	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/catalog"
	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/domain"
)

const (
	// MaxRollsPerStat caps the estimate of a single substat.
	MaxRollsPerStat = 5
	// MaxRolls is the roll budget of one artifact's substats.
	MaxRolls = 9
)

// EstimateRolls estimates how many rolls produced value for the given kind.
// It returns nil when the catalog has no roll range for key or value <= 0.
func EstimateRolls(cat *catalog.Catalog, key domain.AttrKey, value float64) *domain.RollEstimate {
	rr, ok := cat.RollRange(key)
	if !ok {
		return nil
	}
	return estimate(value, rr)
}

func estimate(value float64, rr domain.RollRange) *domain.RollEstimate {
	if value <= 0 || rr.Value <= 0 || rr.ValueMin <= 0 {
		return nil
	}
	// Quotients are rounded to one decimal before floor/ceil, otherwise values
	// such as 3*3.89 land just off an integer boundary.
	maxNum := min(MaxRollsPerStat, int(math.Floor(round1(value/rr.ValueMin))))
	minNum := max(1, int(math.Ceil(round1(value/rr.Value))))
	if maxNum == minNum {
		return &domain.RollEstimate{Count: minNum}
	}

	avg := int(math.Round(value / (rr.Value + rr.ValueMin) * 2))
	avg = min(MaxRollsPerStat, max(1, avg))
	return &domain.RollEstimate{
		Count: avg,
		High:  maxNum > avg,
		Low:   minNum < avg,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Reconcile caps the summed estimate of one artifact at MaxRolls. Low-flagged
// estimates give up one roll each, largest first, until the budget fits. An
// estimate never drops below one roll, so a Low-flagged count of 1 is skipped
// and the total may stay above MaxRolls. EstimateRolls only sets Low on counts
// of 2 or more. The input is not modified; nil entries stay nil.
func Reconcile(in []*domain.RollEstimate) []*domain.RollEstimate {
	out := make([]*domain.RollEstimate, len(in))
	for i, e := range in {
		if e == nil {
			continue
		}
		c := *e
		out[i] = &c
	}
	total := TotalRolls(out)
	if total <= MaxRolls {
		return out
	}

	var lows []*domain.RollEstimate
	for _, e := range out {
		if e != nil && e.Low {
			lows = append(lows, e)
		}
	}
	sort.SliceStable(lows, func(i, j int) bool {
		return lows[i].Count > lows[j].Count
	})
	// Single pass, no re-ranking between decrements.
	for _, e := range lows {
		if total <= MaxRolls {
			break
		}
		if e.Count <= 1 {
			continue
		}
		e.Count--
		e.Low = false
		total--
	}
	return out
}

// TotalRolls sums the counts of non-nil estimates.
func TotalRolls(ests []*domain.RollEstimate) int {
	n := 0
	for _, e := range ests {
		if e != nil {
			n += e.Count
		}
	}
	return n
}

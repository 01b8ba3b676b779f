package mark

import (
	"errors"
	"math"

	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/domain"
)

const (
	// MaxSubstats is the number of substats an artifact can carry.
	MaxSubstats = 4
	// ScoreScale maps a slot's best achievable mark to this score.
	ScoreScale = 66
)

var (
	ErrInvalidSlot        = errors.New("invalid artifact slot")
	ErrTooManySubstats    = errors.New("artifact has more than 4 substats")
	ErrDegenerateBaseline = errors.New("weight profile gives the slot a zero max mark")
)

// attrMark is the weighted value of a single entry.
func attrMark(w domain.Weights, e *domain.Entry) float64 {
	if e == nil || e.Key == domain.KeyNone {
		return 0
	}
	return w.Get(e.Key) * e.Value
}

// Score rates one artifact against the slot's best achievable mark. main is only
// used for slots with a free main stat. A slot whose max mark is not positive
// scores 0 with ErrDegenerateBaseline.
func Score(slot domain.Slot, main *domain.Entry, subs []domain.Entry, w domain.Weights, mm domain.MaxMark) (float64, error) {
	if !slot.Valid() {
		return 0, ErrInvalidSlot
	}
	if len(subs) > MaxSubstats {
		return 0, ErrTooManySubstats
	}
	base := mm.Total(slot)
	if !(base > 0) {
		return 0, ErrDegenerateBaseline
	}

	sum := 0.0
	fixPct := 0.0
	if slot.FreeMain() && main != nil {
		// Main stats are fully rolled; a quarter puts them on the substat scale.
		sum += attrMark(w, main) / 4
		if mb := mm.Main(slot); mb > 0 {
			fixPct = math.Max(0, math.Min(1, w.Get(main.Key)/mb))
		}
	}
	for i := range subs {
		sum += attrMark(w, &subs[i])
	}
	return sum * (1 + fixPct) / 2 / base * ScoreScale, nil
}

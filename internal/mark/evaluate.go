package mark

import (
	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/catalog"
	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/domain"
)

// RawArtifact is an artifact as read from a data source.
type RawArtifact struct {
	Slot domain.Slot
	Main *Record
	Subs []Record
}

// Evaluate normalizes, estimates, reconciles and scores one artifact. Records
// that do not normalize are dropped. Scoring failures are reported in the
// returned artifact's Err.
func Evaluate(cat *catalog.Catalog, w domain.Weights, mm domain.MaxMark, raw RawArtifact) domain.Artifact {
	a := domain.Artifact{Slot: raw.Slot}

	if raw.Main != nil {
		if e, ok := Normalize(cat, *raw.Main); ok {
			if raw.Slot.FreeMain() {
				mk := attrMark(w, &e) / 4
				e.Mark = &mk
			}
			a.Main = &e
		}
	}

	subs := make([]domain.Entry, 0, len(raw.Subs))
	for _, r := range raw.Subs {
		e, ok := Normalize(cat, r)
		if !ok {
			continue
		}
		e.Rolls = EstimateRolls(cat, e.Key, e.Value)
		mk := attrMark(w, &e)
		e.Mark = &mk
		subs = append(subs, e)
	}

	ests := make([]*domain.RollEstimate, len(subs))
	for i := range subs {
		ests[i] = subs[i].Rolls
	}
	for i, e := range Reconcile(ests) {
		subs[i].Rolls = e
	}
	a.Subs = subs

	score, err := Score(a.Slot, a.Main, a.Subs, w, mm)
	if err != nil {
		a.Err = err
		return a
	}
	a.Score = score
	a.Grade = Classify(score)
	return a
}

// EvaluateSet scores an ordered artifact set for one character. The max mark
// is computed once from w for this call. The summary grade rates the average
// over the five slots and stays empty when no artifact could be graded.
func EvaluateSet(cat *catalog.Catalog, w domain.Weights, raws []RawArtifact) ([]domain.Artifact, domain.Summary) {
	mm := ComputeMaxMark(cat, w)
	out := make([]domain.Artifact, 0, len(raws))
	var sum domain.Summary
	graded := 0
	for _, raw := range raws {
		a := Evaluate(cat, w, mm, raw)
		if a.Err == nil {
			graded++
		}
		sum.Total += a.Score
		out = append(out, a)
	}
	if graded > 0 {
		sum.Grade = Classify(sum.Total / float64(len(domain.Slots)))
	}
	return out, sum
}

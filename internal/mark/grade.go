package mark

import "github.com/genshinsim/gcsim/apps/artifact_mark/internal/domain"

type gradeThreshold struct {
	below float64
	grade domain.Grade
}

// gradeThresholds is scanned in order; the first bound the score is below wins.
var gradeThresholds = []gradeThreshold{
	{10, domain.GradeD},
	{16.5, domain.GradeC},
	{23.1, domain.GradeB},
	{29.7, domain.GradeA},
	{36.3, domain.GradeS},
	{42.9, domain.GradeSS},
	{49.5, domain.GradeSSS},
	{56.1, domain.GradeACE},
	{ScoreScale, domain.GradeACEPlus},
}

// Classify maps a score to its grade. Scores at or above ScoreScale get GradeMax.
func Classify(score float64) domain.Grade {
	for _, t := range gradeThresholds {
		if score < t.below {
			return t.grade
		}
	}
	return domain.GradeMax
}

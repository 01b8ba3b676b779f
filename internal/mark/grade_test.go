package mark

import (
	"testing"

	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		score float64
		want  domain.Grade
	}{
		{0, domain.GradeD},
		{9.99, domain.GradeD},
		{10, domain.GradeC},
		{16.5, domain.GradeB},
		{23.1, domain.GradeA},
		{29.7, domain.GradeS},
		{33, domain.GradeS},
		{36.3, domain.GradeSS},
		{42.9, domain.GradeSSS},
		{49.5, domain.GradeACE},
		{56.1, domain.GradeACEPlus},
		{65.99, domain.GradeACEPlus},
		{66, domain.GradeMax},
		{120, domain.GradeMax},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.score), "score %v", tt.score)
	}
}

func TestClassify_Monotonic(t *testing.T) {
	rank := map[domain.Grade]int{}
	for i, th := range gradeThresholds {
		rank[th.grade] = i
	}
	rank[domain.GradeMax] = len(gradeThresholds)

	prev := -1
	for s := 0.0; s <= 80; s += 0.05 {
		r := rank[Classify(s)]
		assert.GreaterOrEqual(t, r, prev, "score %v", s)
		prev = r
	}
}

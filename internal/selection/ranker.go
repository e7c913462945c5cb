package selection

import (
	"sort"

	"github.com/wonny/gradereport/internal/contracts"
	"github.com/wonny/gradereport/pkg/logger"
)

// Ranker orders students by mean grade
// ⭐ SSOT: 랭킹 로직은 여기서만
type Ranker struct {
	logger *logger.Logger
}

// NewRanker creates a new ranker
func NewRanker(logger *logger.Logger) *Ranker {
	return &Ranker{
		logger: logger.WithComponent("selection"),
	}
}

// Rank sorts students by mean grade (descending) and assigns 1-based ranks.
// Equal means keep their input order. The input slice is not modified.
func (r *Ranker) Rank(students []contracts.StudentAverage) []contracts.RankedStudent {
	ranked := make([]contracts.RankedStudent, 0, len(students))
	for _, s := range students {
		ranked = append(ranked, contracts.RankedStudent{
			StudentName: s.StudentName,
			MeanGrade:   s.MeanGrade,
			GradeCount:  s.GradeCount,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MeanGrade > ranked[j].MeanGrade
	})

	// Assign ranks
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	if len(ranked) == 0 {
		r.logger.Info("Ranking completed with no students")
		return ranked
	}

	r.logger.WithFields(map[string]interface{}{
		"total_students": len(ranked),
		"top_mean":       ranked[0].MeanGrade,
		"top_student":    ranked[0].StudentName,
	}).Info("Ranking completed")

	return ranked
}


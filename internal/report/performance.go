package report

import (
	"fmt"
	"strconv"

	"github.com/wonny/gradereport/internal/aggregate"
	"github.com/wonny/gradereport/internal/contracts"
	"github.com/wonny/gradereport/internal/reportconfig"
	"github.com/wonny/gradereport/internal/selection"
	"github.com/wonny/gradereport/pkg/logger"
)

// StudentPerformance ranks students by mean grade
type StudentPerformance struct {
	profile    reportconfig.Profile
	aggregator *aggregate.Aggregator
	ranker     *selection.Ranker

	aggregation contracts.Aggregation
	ranked      []contracts.RankedStudent
}

// NewStudentPerformance creates the student performance report
func NewStudentPerformance(profile reportconfig.Profile, log *logger.Logger) *StudentPerformance {
	return &StudentPerformance{
		profile:    profile,
		aggregator: aggregate.NewAggregator(log),
		ranker:     selection.NewRanker(log),
	}
}

func (r *StudentPerformance) Kind() Kind {
	return KindStudentPerformance
}

// Prepare aggregates and ranks the records
func (r *StudentPerformance) Prepare(records []contracts.GradeRecord) {
	r.aggregation = r.aggregator.Aggregate(records)
	r.ranked = r.ranker.Rank(r.aggregation.Students)
}

// Build creates the table shell with the profile labels
func (r *StudentPerformance) Build() *Table {
	return NewTable(r.profile.Title, r.profile.Columns.Headers()...)
}

// Populate appends one row per ranked student
func (r *StudentPerformance) Populate(t *Table) error {
	for i, s := range r.ranked {
		if err := t.AddRow(fmt.Sprintf("%d.", i+1), s.StudentName, FormatMean(s.MeanGrade)); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return nil
}

// Ranked returns the prepared ranking
func (r *StudentPerformance) Ranked() []contracts.RankedStudent {
	return append([]contracts.RankedStudent(nil), r.ranked...)
}

// Aggregation returns the prepared aggregation, including skipped rows
func (r *StudentPerformance) Aggregation() contracts.Aggregation {
	return r.aggregation
}

// FormatMean renders a mean grade with one decimal place
func FormatMean(v float64) string {
	return strconv.FormatFloat(v, 'f', aggregate.MeanPrecision, 64)
}

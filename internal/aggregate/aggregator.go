package aggregate

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/wonny/gradereport/internal/contracts"
	"github.com/wonny/gradereport/pkg/logger"
)

// MeanPrecision is the number of decimal places kept in a mean grade
const MeanPrecision = 1

// ErrInvalidGrade marks a grade that is not a finite number
var ErrInvalidGrade = errors.New("invalid grade")

// Aggregator 학생별 평균 집계기
type Aggregator struct {
	log *logger.Logger
}

// NewAggregator 새 집계기 생성
func NewAggregator(log *logger.Logger) *Aggregator {
	return &Aggregator{
		log: log.WithComponent("aggregate"),
	}
}

// studentGroup keeps the parsed grades of one student
type studentGroup struct {
	name   string
	grades stats.Float64Data
}

// Aggregate groups records by student name and computes rounded means.
// Students come out in the order their name first appears in records.
func (a *Aggregator) Aggregate(records []contracts.GradeRecord) contracts.Aggregation {
	var result contracts.Aggregation

	groups := make([]*studentGroup, 0)
	byName := make(map[string]*studentGroup)

	for _, rec := range records {
		grade, err := ParseGrade(rec.Grade)
		if err != nil {
			skip := contracts.RowSkip{
				Source:      rec.Source,
				Line:        rec.Line,
				StudentName: rec.StudentName,
				Value:       rec.Grade,
				Err:         err,
			}
			result.Skipped = append(result.Skipped, skip)

			a.log.WithError(err).
				WithFields(map[string]interface{}{
					"source":  rec.Source,
					"line":    rec.Line,
					"student": rec.StudentName,
				}).
				Warn("row skipped")
			continue
		}

		g, ok := byName[rec.StudentName]
		if !ok {
			g = &studentGroup{name: rec.StudentName}
			byName[rec.StudentName] = g
			groups = append(groups, g)
		}
		g.grades = append(g.grades, grade)
	}

	result.Students = make([]contracts.StudentAverage, 0, len(groups))
	for _, g := range groups {
		mean, err := meanGrade(g.grades)
		if err != nil {
			result.Omitted = append(result.Omitted, g.name)
			a.log.WithError(err).
				WithField("student", g.name).
				Error("mean grade not computed")
			continue
		}

		result.Students = append(result.Students, contracts.StudentAverage{
			StudentName: g.name,
			MeanGrade:   mean,
			GradeCount:  len(g.grades),
		})

		a.log.WithFields(map[string]interface{}{
			"student": g.name,
			"grades":  len(g.grades),
			"mean":    mean,
		}).Debug("student aggregated")
	}

	a.log.WithFields(map[string]interface{}{
		"records":  len(records),
		"students": len(result.Students),
		"skipped":  len(result.Skipped),
		"omitted":  len(result.Omitted),
	}).Info("aggregation completed")

	return result
}

// ParseGrade parses a grade cell as a finite float
func ParseGrade(value string) (float64, error) {
	grade, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidGrade, value, err)
	}
	if math.IsNaN(grade) || math.IsInf(grade, 0) {
		return 0, fmt.Errorf("%w %q: not a finite number", ErrInvalidGrade, value)
	}
	return grade, nil
}

// meanGrade returns the arithmetic mean rounded to MeanPrecision places.
// Exact ties round half to even (2.25 -> 2.2, 2.75 -> 2.8).
func meanGrade(grades stats.Float64Data) (float64, error) {
	mean, err := stats.Mean(grades)
	if err != nil {
		return 0, fmt.Errorf("mean: %w", err)
	}
	return roundHalfEven(mean, MeanPrecision), nil
}

// roundHalfEven rounds through fixed-point formatting, which rounds the
// exact binary value and sends exact ties to the even digit
func roundHalfEven(v float64, places int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

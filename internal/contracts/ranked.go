package contracts

// RankedStudent represents a student with ranking information passed from selection to report
// ⭐ SSOT: selection → report 랭킹 결과 전달
type RankedStudent struct {
	Rank        int     `json:"rank"` // 1-based ranking
	StudentName string  `json:"student_name"`
	MeanGrade   float64 `json:"mean_grade"`
	GradeCount  int     `json:"grade_count"`
}

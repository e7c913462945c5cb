package contracts

// Required CSV columns
const (
	ColumnStudentName = "student_name"
	ColumnSubject     = "subject"
	ColumnTeacherName = "teacher_name"
	ColumnDate        = "date"
	ColumnGrade       = "grade"
)

// RequiredColumns returns the header names every input file must carry
func RequiredColumns() []string {
	return []string{ColumnStudentName, ColumnSubject, ColumnTeacherName, ColumnDate, ColumnGrade}
}

// GradeRecord is one CSV row passed from ingest to aggregation
// ⭐ SSOT: ingest → aggregate 원시 레코드 전달
type GradeRecord struct {
	StudentName string `json:"student_name"`
	Subject     string `json:"subject"`
	TeacherName string `json:"teacher_name"`
	Date        string `json:"date"`  // opaque, not parsed
	Grade       string `json:"grade"` // parsed downstream

	Source string `json:"source"` // file path
	Line   int    `json:"line"`   // 1-based line in Source
}

// StudentAverage is the per-student mean produced by aggregation
type StudentAverage struct {
	StudentName string  `json:"student_name"`
	MeanGrade   float64 `json:"mean_grade"` // rounded to 1 decimal
	GradeCount  int     `json:"grade_count"`
}

// Aggregation is the full outcome of one aggregation run
type Aggregation struct {
	Students []StudentAverage `json:"students"` // first-occurrence order
	Skipped  []RowSkip        `json:"skipped"`  // rows with unusable grades
	Omitted  []string         `json:"omitted"`  // students whose mean could not be computed
}

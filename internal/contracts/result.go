package contracts

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// SkipReason classifies why a file contributed no rows
type SkipReason string

const (
	SkipNone           SkipReason = ""
	SkipNotCSV         SkipReason = "not_csv"
	SkipNotFound       SkipReason = "not_found"
	SkipNotText        SkipReason = "not_text"
	SkipMissingColumns SkipReason = "missing_columns"
	SkipReadFailed     SkipReason = "read_failed"
)

// LoadResult is the outcome of loading one input file
type LoadResult struct {
	Path   string     `json:"path"`
	Rows   int        `json:"rows"`
	Reason SkipReason `json:"reason,omitempty"`
	Err    error      `json:"-"`
}

// Skipped reports whether the file was rejected
func (r LoadResult) Skipped() bool {
	return r.Reason != SkipNone
}

// LoadSummary collects the results of a batch load, in call order
type LoadSummary struct {
	Results []LoadResult `json:"results"`
}

// Loaded returns the number of files that contributed rows
func (s LoadSummary) Loaded() int {
	n := 0
	for _, r := range s.Results {
		if !r.Skipped() {
			n++
		}
	}
	return n
}

// Skipped returns the rejected files
func (s LoadSummary) Skipped() []LoadResult {
	var skipped []LoadResult
	for _, r := range s.Results {
		if r.Skipped() {
			skipped = append(skipped, r)
		}
	}
	return skipped
}

// Rows returns the total number of records loaded
func (s LoadSummary) Rows() int {
	n := 0
	for _, r := range s.Results {
		n += r.Rows
	}
	return n
}

// Err combines every skip into one error, nil when all files loaded
func (s LoadSummary) Err() error {
	var result *multierror.Error
	for _, r := range s.Skipped() {
		result = multierror.Append(result, fmt.Errorf("%s (%s): %w", r.Path, r.Reason, r.Err))
	}
	return result.ErrorOrNil()
}

// RowSkip describes a record excluded from aggregation
type RowSkip struct {
	Source      string `json:"source"`
	Line        int    `json:"line"`
	StudentName string `json:"student_name"`
	Value       string `json:"value"`
	Err         error  `json:"-"`
}

func (s RowSkip) String() string {
	return fmt.Sprintf("%s:%d %s grade=%q: %v", s.Source, s.Line, s.StudentName, s.Value, s.Err)
}

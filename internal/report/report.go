package report

import (
	"fmt"
	"io"

	"github.com/wonny/gradereport/internal/contracts"
	"github.com/wonny/gradereport/internal/reportconfig"
	"github.com/wonny/gradereport/pkg/logger"
)

// Report is one report variant. Generate drives the steps in order:
// Prepare, Build, Populate, then Table.Render.
type Report interface {
	Kind() Kind
	// Prepare derives the report data from a snapshot of records
	Prepare(records []contracts.GradeRecord)
	// Build creates the empty table shell
	Build() *Table
	// Populate fills the table from the prepared data
	Populate(t *Table) error
}

// New returns the variant for kind
func New(kind Kind, profile reportconfig.Profile, log *logger.Logger) (Report, error) {
	switch kind {
	case KindStudentPerformance:
		return NewStudentPerformance(profile, log), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
}

// Generate runs a report over records and renders it to w. A failure
// inside Prepare or Populate is logged and leaves a partial table; only a
// failed write to w is returned.
func Generate(r Report, records []contracts.GradeRecord, w io.Writer, log *logger.Logger) (*Table, error) {
	log = log.WithComponent("report").WithField("kind", r.Kind().String())

	snapshot := make([]contracts.GradeRecord, len(records))
	copy(snapshot, records)

	if err := guard(func() error { r.Prepare(snapshot); return nil }); err != nil {
		log.WithError(err).Error("prepare failed, report will be empty")
	}

	table := r.Build()
	if table == nil {
		table = NewTable("")
	}

	if err := guard(func() error { return r.Populate(table) }); err != nil {
		log.WithError(err).
			WithField("rows", len(table.Rows)).
			Error("populate failed, report is partial")
	}

	if err := table.Render(w); err != nil {
		return table, fmt.Errorf("render report: %w", err)
	}

	log.WithField("rows", len(table.Rows)).Info("report rendered")
	return table, nil
}

// guard converts a panic in fn into an error
func guard(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("recovered: %v", p)
		}
	}()
	return fn()
}

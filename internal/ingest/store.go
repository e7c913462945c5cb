package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"

	"github.com/wonny/gradereport/internal/contracts"
	"github.com/wonny/gradereport/pkg/logger"
)

var (
	ErrNotCSV         = errors.New("not a csv file")
	ErrNotFound       = errors.New("file not found")
	ErrNotText        = errors.New("file is not valid utf-8 text")
	ErrMissingColumns = errors.New("required columns missing")
)

// Store loads grade CSV files and accumulates their rows
// ⭐ SSOT: CSV 검증/적재는 여기서만
type Store struct {
	fs       afero.Fs
	required []string
	records  []contracts.GradeRecord
	log      *logger.Logger
}

// Option configures a Store
type Option func(*Store)

// WithRequiredColumns replaces the default required header set
func WithRequiredColumns(columns ...string) Option {
	return func(s *Store) {
		s.required = append([]string(nil), columns...)
	}
}

// NewStore creates a store reading through fsys
func NewStore(fsys afero.Fs, log *logger.Logger, opts ...Option) *Store {
	s := &Store{
		fs:       fsys,
		required: contracts.RequiredColumns(),
		log:      log.WithComponent("ingest"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadAll loads every path in order. Repeated paths are loaded again.
func (s *Store) LoadAll(paths []string) contracts.LoadSummary {
	summary := contracts.LoadSummary{Results: make([]contracts.LoadResult, 0, len(paths))}
	for _, path := range paths {
		summary.Results = append(summary.Results, s.Load(path))
	}

	s.log.WithFields(map[string]interface{}{
		"files":   len(paths),
		"loaded":  summary.Loaded(),
		"skipped": len(summary.Skipped()),
		"rows":    summary.Rows(),
	}).Info("load completed")

	return summary
}

// Load validates and appends one file. A rejected file contributes no rows
// and is reported through the result, never as a returned error.
func (s *Store) Load(path string) contracts.LoadResult {
	rows, reason, err := s.read(path)
	if err != nil {
		s.log.WithError(err).
			WithFields(map[string]interface{}{
				"path":   path,
				"reason": string(reason),
			}).
			Warn("file skipped")
		return contracts.LoadResult{Path: path, Reason: reason, Err: err}
	}

	s.records = append(s.records, rows...)

	s.log.WithFields(map[string]interface{}{
		"path": path,
		"rows": len(rows),
	}).Debug("file loaded")

	return contracts.LoadResult{Path: path, Rows: len(rows)}
}

// Records returns a copy of everything loaded so far
func (s *Store) Records() []contracts.GradeRecord {
	out := make([]contracts.GradeRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of loaded records
func (s *Store) Len() int {
	return len(s.records)
}

func (s *Store) read(path string) ([]contracts.GradeRecord, contracts.SkipReason, error) {
	if filepath.Ext(path) != ".csv" {
		return nil, contracts.SkipNotCSV, ErrNotCSV
	}

	raw, err := s.readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, contracts.SkipNotFound, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return nil, contracts.SkipReadFailed, fmt.Errorf("read file: %w", err)
	}

	if !utf8.Valid(raw) {
		return nil, contracts.SkipNotText, ErrNotText
	}
	text, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, contracts.SkipNotText, fmt.Errorf("%w: %v", ErrNotText, err)
	}

	rows, err := s.parse(path, text)
	if err != nil {
		if errors.Is(err, ErrMissingColumns) {
			return nil, contracts.SkipMissingColumns, err
		}
		return nil, contracts.SkipReadFailed, err
	}

	return rows, contracts.SkipNone, nil
}

func (s *Store) readFile(path string) ([]byte, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

func (s *Store) parse(path string, text []byte) ([]contracts.GradeRecord, error) {
	r := csv.NewReader(bytes.NewReader(text))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no header row", ErrMissingColumns)
	}
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range s.required {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	field := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var rows []contracts.GradeRecord
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse row: %w", err)
		}

		line, _ := r.FieldPos(0)
		rows = append(rows, contracts.GradeRecord{
			StudentName: field(row, contracts.ColumnStudentName),
			Subject:     field(row, contracts.ColumnSubject),
			TeacherName: field(row, contracts.ColumnTeacherName),
			Date:        field(row, contracts.ColumnDate),
			Grade:       field(row, contracts.ColumnGrade),
			Source:      path,
			Line:        line,
		})
	}

	return rows, nil
}

package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"github.com/wonny/gradereport/internal/contracts"
)

// ═══════════════════════════════════════════════════════════
// Common Formatting Utilities
// 진단 요약은 모두 같은 포맷으로 stderr에 출력
// ═══════════════════════════════════════════════════════════

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, message string) {
	fmt.Fprintf(w, "⚠️  %s\n", message)
}

// PrintList prints a bulleted list
func PrintList(w io.Writer, items []string) {
	for _, item := range items {
		fmt.Fprintf(w, "   • %s\n", item)
	}
}

// PrintLoadSummary lists the files that contributed nothing
func PrintLoadSummary(w io.Writer, summary contracts.LoadSummary) {
	var merr *multierror.Error
	if !errors.As(summary.Err(), &merr) {
		return
	}

	PrintWarning(w, fmt.Sprintf("Skipped %d of %d files", len(merr.Errors), len(summary.Results)))
	items := make([]string, 0, len(merr.Errors))
	for _, err := range merr.Errors {
		items = append(items, err.Error())
	}
	PrintList(w, items)
}

// PrintRowSkips lists rows and students left out of the averages
func PrintRowSkips(w io.Writer, agg contracts.Aggregation) {
	if len(agg.Skipped) > 0 {
		PrintWarning(w, fmt.Sprintf("Skipped %d rows with an invalid grade", len(agg.Skipped)))
		items := make([]string, 0, len(agg.Skipped))
		for _, s := range agg.Skipped {
			items = append(items, s.String())
		}
		PrintList(w, items)
	}

	if len(agg.Omitted) > 0 {
		PrintWarning(w, fmt.Sprintf("Omitted %d students without a computable mean", len(agg.Omitted)))
		PrintList(w, agg.Omitted)
	}
}

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
)

// Table is the presentation form of a report
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// NewTable creates an empty table shell
func NewTable(title string, columns ...string) *Table {
	return &Table{
		Title:   title,
		Columns: append([]string(nil), columns...),
		Rows:    make([][]string, 0),
	}
}

// AddRow appends a row; the cell count must match the column count
func (t *Table) AddRow(cells ...string) error {
	if len(cells) != len(t.Columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.Columns))
	}
	t.Rows = append(t.Rows, append([]string(nil), cells...))
	return nil
}

// Render writes the title centered over a boxed, column-aligned table
func (t *Table) Render(w io.Writer) error {
	if t.Title != "" {
		if _, err := fmt.Fprintln(w, center(t.Title, t.width())); err != nil {
			return fmt.Errorf("write title: %w", err)
		}
	}

	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeader(t.Columns)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.AppendBulk(t.Rows)
	tw.Render()

	return nil
}

// width is the printed width of the boxed table: each column is padded by
// one space on both sides and separated by a single border rune.
func (t *Table) width() int {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = runewidth.StringWidth(c)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	total := len(widths) + 1
	for _, w := range widths {
		total += w + 2
	}
	return total
}

func center(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad/2) + s
}

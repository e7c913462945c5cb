package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_AddRow(t *testing.T) {
	table := NewTable("Успеваемость", "#", "Имя", "Средняя оценка")

	require.NoError(t, table.AddRow("1.", "Иванов", "4.5"))
	assert.Error(t, table.AddRow("2.", "Петров"))
	assert.Len(t, table.Rows, 1)
}

func TestTable_RowsAreCopied(t *testing.T) {
	table := NewTable("t", "a")
	cells := []string{"x"}
	require.NoError(t, table.AddRow(cells...))

	cells[0] = "y"
	assert.Equal(t, "x", table.Rows[0][0])
}

func TestTable_Render(t *testing.T) {
	table := NewTable("Успеваемость", "#", "Имя", "Средняя оценка")
	require.NoError(t, table.AddRow("1.", "Иванов", "4.5"))
	require.NoError(t, table.AddRow("2.", "Ли", "3.0"))

	var out bytes.Buffer
	require.NoError(t, table.Render(&out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.NotEmpty(t, lines)

	// title first, then a boxed table with headers kept as given
	assert.Equal(t, "Успеваемость", strings.TrimSpace(lines[0]))
	assert.True(t, strings.HasPrefix(lines[1], "+"), "got %q", lines[1])
	assert.Contains(t, out.String(), "Средняя оценка")
	assert.NotContains(t, out.String(), "СРЕДНЯЯ ОЦЕНКА")
}

func TestTable_Width(t *testing.T) {
	table := NewTable("Performance", "#", "Name", "Average grade")
	require.NoError(t, table.AddRow("1.", "Alexandra Smith", "4.5"))

	var out bytes.Buffer
	require.NoError(t, table.Render(&out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Greater(t, len(lines), 1)

	// every box line is as wide as the title is centered over
	for _, l := range lines[1:] {
		assert.Equal(t, table.width(), len(l), "line %q", l)
	}
	assert.Equal(t, center("Performance", table.width()), lines[0])
}

func TestTable_RenderEmpty(t *testing.T) {
	table := NewTable("Успеваемость", "#", "Имя", "Средняя оценка")

	var out bytes.Buffer
	require.NoError(t, table.Render(&out))
	assert.Contains(t, out.String(), "Имя")
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab", center("ab", 6))
	assert.Equal(t, "abc", center("abc", 2))
	assert.Equal(t, " Имя", center("Имя", 5))
}

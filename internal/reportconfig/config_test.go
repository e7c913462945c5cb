package reportconfig

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(&cfg))

	assert.Equal(t, "Успеваемость", cfg.Title)
	assert.Equal(t, []string{"#", "Имя", "Средняя оценка"}, cfg.Columns.Headers())
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
title: Performance
columns:
  name: Name
  mean: Average grade
`))
	require.NoError(t, err)

	assert.Equal(t, "Performance", cfg.Title)
	// position keeps its default
	assert.Equal(t, []string{"#", "Name", "Average grade"}, cfg.Columns.Headers())
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("titel: typo\n"))
	assert.Error(t, err)
}

func TestParse_BlankLabel(t *testing.T) {
	_, err := Parse([]byte("columns:\n  mean: \"  \"\n"))
	require.Error(t, err)

	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "columns.mean", verr.Field)
}

func TestResolve(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "profile.yaml", []byte("title: Рейтинг\n"), 0o644))

	cfg, err := Resolve(fsys, "")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)

	cfg, err = Resolve(fsys, "profile.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Рейтинг", cfg.Title)

	_, err = Resolve(fsys, "missing.yaml")
	assert.Error(t, err)
}

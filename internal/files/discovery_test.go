package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "salescli/internal/errors"
)

func writeFile(t *testing.T, dir, name string, mod time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	require.NoError(t, os.Chtimes(path, mod, mod))
	return path
}

func TestFindForecastFiles(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	writeFile(t, dir, "forecast_jan.xlsx", now.Add(-2*time.Hour))
	writeFile(t, dir, "forecast_feb.xlsx", now.Add(-1*time.Hour))
	writeFile(t, dir, "~$forecast_feb.xlsx", now) // Excel lock file
	writeFile(t, dir, "notes.txt", now)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0755))

	d := NewDiscovery(dir)
	files, err := d.FindForecastFiles(".")
	require.NoError(t, err)
	require.Len(t, files, 2)

	// oldest first
	assert.Equal(t, "forecast_jan.xlsx", files[0].Name)
	assert.Equal(t, "forecast_feb.xlsx", files[1].Name)
}

func TestLatestForecast(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	writeFile(t, dir, "old.xlsx", now.Add(-48*time.Hour))
	newest := writeFile(t, dir, "new.xlsx", now.Add(-time.Minute))

	d := NewDiscovery(dir)
	file, err := d.LatestForecast(".")
	require.NoError(t, err)
	assert.Equal(t, newest, file.Path)
	assert.Equal(t, "new.xlsx", file.Name)
}

func TestLatestForecastEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "~$locked.xlsx", time.Now())

	d := NewDiscovery(dir)
	_, err := d.LatestForecast(".")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
}

func TestLatestForecastMissingDirectory(t *testing.T) {
	d := NewDiscovery(t.TempDir())
	_, err := d.LatestForecast("does-not-exist")
	assert.Error(t, err)
}

func TestFindReportFiles(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	writeFile(t, dir, "Alice-Sales Tool-250101-120000.xlsx", now)
	writeFile(t, dir, "Bob-Sales Tool-250101-120001.xlsx", now)
	writeFile(t, dir, "unrelated.csv", now)

	d := NewDiscovery(dir)
	files, err := d.FindReportFiles(".", "*Sales Tool*.xlsx")
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescli/internal/config"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	root := t.TempDir()
	paths := &config.PathsConfig{
		RootDir:    root,
		ReportsDir: filepath.Join(root, "reports"),
	}
	return NewManager(paths), paths.ReportsDir
}

func TestEnsureReportsDir(t *testing.T) {
	m, reports := newTestManager(t)

	require.NoError(t, m.EnsureReportsDir())
	assert.DirExists(t, reports)

	// second call on an existing directory is a no-op
	require.NoError(t, m.EnsureReportsDir())
}

func TestFileExists(t *testing.T) {
	m, reports := newTestManager(t)
	require.NoError(t, m.EnsureReportsDir())

	path := filepath.Join(reports, "report.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	assert.True(t, m.FileExists(path))
	assert.True(t, m.FileExists(filepath.Join("reports", "report.xlsx")))
	assert.False(t, m.FileExists(filepath.Join(reports, "missing.xlsx")))
}

func TestCleanupOldReports(t *testing.T) {
	m, reports := newTestManager(t)
	require.NoError(t, m.EnsureReportsDir())

	old := filepath.Join(reports, "old.xlsx")
	require.NoError(t, os.WriteFile(old, []byte("x"), 0644))
	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(old, stale, stale))

	fresh := filepath.Join(reports, "fresh.xlsx")
	require.NoError(t, os.WriteFile(fresh, []byte("x"), 0644))

	// subdirectories are never touched
	require.NoError(t, os.Mkdir(filepath.Join(reports, "archive"), 0755))

	removed, err := m.CleanupOldReports(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, old)
	assert.FileExists(t, fresh)
	assert.DirExists(t, filepath.Join(reports, "archive"))
}

func TestCleanupOldReportsMissingDir(t *testing.T) {
	m, _ := newTestManager(t)

	removed, err := m.CleanupOldReports(24 * time.Hour)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestListReports(t *testing.T) {
	m, reports := newTestManager(t)
	require.NoError(t, m.EnsureReportsDir())

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"first.xlsx", "second.xlsx", "third.xlsx"} {
		path := filepath.Join(reports, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		ts := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, ts, ts))
	}

	names, err := m.ListReports()
	require.NoError(t, err)
	assert.Equal(t, []string{"third.xlsx", "second.xlsx", "first.xlsx"}, names)
}

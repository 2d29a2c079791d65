package files

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"salescli/internal/config"
)

// Manager provides file management for the report output directories
type Manager struct {
	paths *config.PathsConfig
}

// NewManager creates a new file manager instance
func NewManager(paths *config.PathsConfig) *Manager {
	return &Manager{paths: paths}
}

// FileExists checks if a file exists at the given path
func (m *Manager) FileExists(path string) bool {
	fullPath := m.resolvePath(path)
	_, err := os.Stat(fullPath)
	return err == nil
}

// EnsureReportsDir creates the reports directory with all parents
func (m *Manager) EnsureReportsDir() error {
	slog.Debug("ensuring reports directory", slog.String("dir", m.paths.ReportsDir))
	return os.MkdirAll(m.paths.ReportsDir, 0755)
}

// CleanupOldReports removes generated report workbooks older than the
// retention window. Files that cannot be removed are logged and skipped.
func (m *Manager) CleanupOldReports(retention time.Duration) (int, error) {
	entries, err := os.ReadDir(m.paths.ReportsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read reports directory: %w", err)
	}

	cutoff := time.Now().Add(-retention)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(m.paths.ReportsDir, entry.Name())
		if err := os.Remove(path); err != nil {
			slog.Warn("failed to remove old report",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}
		removed++
	}

	if removed > 0 {
		slog.Info("cleaned up old reports", slog.Int("removed", removed))
	}
	return removed, nil
}

// ListReports returns the names of generated reports, newest first
func (m *Manager) ListReports() ([]string, error) {
	entries, err := os.ReadDir(m.paths.ReportsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read reports directory: %w", err)
	}

	type named struct {
		name string
		mod  time.Time
	}
	var reports []named
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		reports = append(reports, named{name: entry.Name(), mod: info.ModTime()})
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].mod.After(reports[j].mod)
	})

	names := make([]string, len(reports))
	for i, r := range reports {
		names[i] = r.name
	}
	return names, nil
}

func (m *Manager) resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.paths.RootDir, path)
}

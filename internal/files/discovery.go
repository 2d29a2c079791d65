package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"salescli/internal/config"
	apperrors "salescli/internal/errors"
)

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery provides forecast workbook discovery operations
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// FindForecastFiles finds all forecast workbooks in the specified
// directory, sorted by modification time (oldest first). Excel lock
// files ("~$" prefixed) left behind by open workbooks are skipped.
func (d *Discovery) FindForecastFiles(dir string) ([]FileInfo, error) {
	fullPath := d.resolvePath(dir)

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, config.ExcelLockPrefix) {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(name), ".xlsx") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path:    filepath.Join(fullPath, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.Before(files[j].ModTime)
	})

	return files, nil
}

// LatestForecast returns the most recently modified forecast workbook
// in the directory. Returns a NOT_FOUND error when the directory holds
// no workbooks.
func (d *Discovery) LatestForecast(dir string) (FileInfo, error) {
	files, err := d.FindForecastFiles(dir)
	if err != nil {
		return FileInfo{}, err
	}
	if len(files) == 0 {
		return FileInfo{}, apperrors.NewNotFoundError(
			fmt.Sprintf("forecast workbook in %s", d.resolvePath(dir)))
	}
	return files[len(files)-1], nil
}

// FindReportFiles finds generated report workbooks matching the pattern
// in the reports directory.
func (d *Discovery) FindReportFiles(dir string, pattern string) ([]FileInfo, error) {
	fullPath := d.resolvePath(dir)

	matches, err := filepath.Glob(filepath.Join(fullPath, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
	}

	var files []FileInfo
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, FileInfo{
			Path:    match,
			Name:    filepath.Base(match),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return files, nil
}

func (d *Discovery) resolvePath(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(d.basePath, dir)
}

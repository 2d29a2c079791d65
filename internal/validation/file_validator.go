// Package validation provides pre-flight checks on the forecast input
// and report output directories before a run starts, so a misconfigured
// path fails fast instead of halfway through the pipeline.
package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"salescli/internal/config"
	apperrors "salescli/internal/errors"
)

// FileValidator validates the directories and files a run depends on
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{logger: logger}
}

// ValidateForecastDirectory checks the forecast directory exists and
// holds at least one workbook. An empty directory is not an error here;
// discovery reports that case with more context.
func (v *FileValidator) ValidateForecastDirectory(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return apperrors.NewNotFoundError(fmt.Sprintf("forecast directory %s", dir))
	}
	if err != nil {
		return apperrors.NewStorageError(
			fmt.Sprintf("failed to stat forecast directory %s", dir), err)
	}
	if !info.IsDir() {
		return apperrors.NewValidationError(
			fmt.Sprintf("%s is not a directory", dir))
	}

	matches, err := filepath.Glob(filepath.Join(dir, config.ForecastFilePattern))
	if err != nil {
		return apperrors.NewStorageError("failed to scan forecast directory", err)
	}
	v.logger.Info("forecast directory validated",
		slog.String("directory", dir),
		slog.Int("workbooks_found", len(matches)))

	return nil
}

// ValidateReportsDirectory ensures the reports directory exists and is
// writable, creating it when missing.
func (v *FileValidator) ValidateReportsDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.NewStorageError(
			fmt.Sprintf("failed to create reports directory %s", dir), err)
	}

	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		return apperrors.NewStorageError(
			fmt.Sprintf("reports directory %s is not writable", dir), err)
	}
	file.Close()
	os.Remove(testFile)

	return nil
}

// ValidateWorkbook checks a candidate forecast workbook is a plausible
// input: it exists, is a regular non-empty .xlsx file, and is not an
// Excel lock file left by an open session.
func (v *FileValidator) ValidateWorkbook(path string) error {
	name := filepath.Base(path)
	if strings.HasPrefix(name, config.ExcelLockPrefix) {
		return apperrors.NewValidationError(
			fmt.Sprintf("%s is an Excel lock file, the workbook is open elsewhere", name))
	}
	if !strings.EqualFold(filepath.Ext(name), ".xlsx") {
		return apperrors.NewValidationError(
			fmt.Sprintf("%s is not an .xlsx workbook", name))
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return apperrors.NewNotFoundError(fmt.Sprintf("workbook %s", path))
	}
	if err != nil {
		return apperrors.NewStorageError(
			fmt.Sprintf("failed to stat workbook %s", path), err)
	}
	if info.IsDir() {
		return apperrors.NewValidationError(
			fmt.Sprintf("%s is a directory, not a workbook", path))
	}
	if info.Size() == 0 {
		return apperrors.NewValidationError(
			fmt.Sprintf("workbook %s is empty", path))
	}

	return nil
}

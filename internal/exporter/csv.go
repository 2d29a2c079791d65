package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"salescli/pkg/contracts/domain"
)

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	reportsDir string
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(reportsDir string) *CSVWriter {
	return &CSVWriter{reportsDir: reportsDir}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file with the given options
func (w *CSVWriter) WriteCSV(filename string, options WriteOptions) error {
	fullPath := filepath.Join(w.reportsDir, filename)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// BOM helps Excel recognize UTF-8
	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	slog.Debug("wrote CSV file",
		slog.String("path", fullPath),
		slog.Int("records", len(options.Records)))

	return nil
}

// WritePivotCSV writes the full pivot report as one CSV file
func (w *CSVWriter) WritePivotCSV(filename string, pivot *domain.PivotReport) error {
	headers := []string{"AE1", "Sector", "Customer"}
	for _, yq := range pivot.Periods {
		headers = append(headers, yq.Label())
	}

	records := make([][]string, 0, len(pivot.Rows))
	for _, row := range pivot.Rows {
		record := []string{row.Salesperson, row.Sector, row.Customer}
		for _, yq := range pivot.Periods {
			record = append(record, formatAmount(row.Amount(yq)))
		}
		records = append(records, record)
	}

	return w.WriteCSV(filename, WriteOptions{
		Headers:   headers,
		Records:   records,
		BOMPrefix: true,
	})
}

// WriteBudgetCSV writes the budget reconciliation as one CSV file
func (w *CSVWriter) WriteBudgetCSV(filename string, budget *domain.BudgetReport) error {
	headers := []string{"AE1", "Sector", "Customer"}
	for _, yq := range budget.Periods {
		headers = append(headers, yq.Label())
	}
	headers = append(headers, "Total")

	records := make([][]string, 0, len(budget.Rows))
	for _, row := range budget.Rows {
		record := []string{row.Salesperson, row.Sector, row.Customer}
		for _, yq := range budget.Periods {
			record = append(record, formatAmount(row.Quarters[yq]))
		}
		record = append(record, formatAmount(row.Total))
		records = append(records, record)
	}

	return w.WriteCSV(filename, WriteOptions{
		Headers:   headers,
		Records:   records,
		BOMPrefix: true,
	})
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

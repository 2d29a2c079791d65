package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"salescli/internal/config"
	apperrors "salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

const (
	sheetPivot  = "Sheet1"
	sheetBudget = "Budget-Assigned-Unassigned"
)

// ExcelWriter renders per-salesperson report workbooks
type ExcelWriter struct {
	reportsDir string
}

// NewExcelWriter creates a new Excel writer instance
func NewExcelWriter(reportsDir string) *ExcelWriter {
	return &ExcelWriter{reportsDir: reportsDir}
}

// WriteSalespersonReport writes one salesperson's workbook: the quarterly
// pivot on the first sheet and the budget reconciliation on the second.
// The filename carries a timestamp so reruns never overwrite an earlier
// report. Returns the full path of the file written.
func (w *ExcelWriter) WriteSalespersonReport(name string, pivot *domain.PivotReport, budget *domain.BudgetReport, ts time.Time) (string, error) {
	if err := os.MkdirAll(w.reportsDir, 0755); err != nil {
		return "", apperrors.NewStorageError("failed to create reports directory", err)
	}

	filename := fmt.Sprintf("%s-%s-%s.xlsx",
		SanitizeFilename(name), config.ReportFileSuffix, ts.Format(config.ReportTimestampForm))
	fullPath := filepath.Join(w.reportsDir, filename)

	f := excelize.NewFile()
	defer f.Close()

	if err := w.writePivotSheet(f, name, pivot); err != nil {
		return "", err
	}
	if err := w.writeBudgetSheet(f, name, budget); err != nil {
		return "", err
	}

	if err := f.SaveAs(fullPath); err != nil {
		return "", apperrors.NewStorageError(
			fmt.Sprintf("failed to save workbook %s", fullPath), err)
	}

	slog.Info("wrote salesperson workbook",
		slog.String("salesperson", name),
		slog.String("path", fullPath))

	return fullPath, nil
}

func (w *ExcelWriter) writePivotSheet(f *excelize.File, name string, pivot *domain.PivotReport) error {
	header := []interface{}{"AE1", "Sector", "Customer"}
	for _, yq := range pivot.Periods {
		header = append(header, yq.Label())
	}
	if err := f.SetSheetRow(sheetPivot, "A1", &header); err != nil {
		return apperrors.NewStorageError("failed to write pivot header", err)
	}

	rows := pivot.RowsFor(name)
	totals := make([]float64, len(pivot.Periods))
	for i, row := range rows {
		cells := []interface{}{row.Salesperson, row.Sector, row.Customer}
		for j, yq := range pivot.Periods {
			amt := row.Amount(yq)
			totals[j] += amt
			cells = append(cells, amt)
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetPivot, cell, &cells); err != nil {
			return apperrors.NewStorageError("failed to write pivot row", err)
		}
	}

	totalRow := []interface{}{"Total", "", ""}
	for _, t := range totals {
		totalRow = append(totalRow, t)
	}
	cell, _ := excelize.CoordinatesToCellName(1, len(rows)+2)
	if err := f.SetSheetRow(sheetPivot, cell, &totalRow); err != nil {
		return apperrors.NewStorageError("failed to write pivot totals", err)
	}

	lastCol, _ := excelize.ColumnNumberToName(3 + len(pivot.Periods))
	if err := w.formatSheet(f, sheetPivot, lastCol, len(rows)+1, "SalesData"); err != nil {
		return err
	}
	return nil
}

func (w *ExcelWriter) writeBudgetSheet(f *excelize.File, name string, budget *domain.BudgetReport) error {
	if _, err := f.NewSheet(sheetBudget); err != nil {
		return apperrors.NewStorageError("failed to create budget sheet", err)
	}

	header := []interface{}{"AE1", "Sector", "Customer"}
	for _, yq := range budget.Periods {
		header = append(header, yq.Label())
	}
	header = append(header, "Total")
	if err := f.SetSheetRow(sheetBudget, "A1", &header); err != nil {
		return apperrors.NewStorageError("failed to write budget header", err)
	}

	rows := budget.RowsFor(name)
	for i, row := range rows {
		cells := []interface{}{row.Salesperson, row.Sector, row.Customer}
		for _, yq := range budget.Periods {
			cells = append(cells, row.Quarters[yq])
		}
		cells = append(cells, row.Total)
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetBudget, cell, &cells); err != nil {
			return apperrors.NewStorageError("failed to write budget row", err)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(4 + len(budget.Periods))
	return w.formatSheet(f, sheetBudget, lastCol, len(rows)+1, "BudgetData")
}

// formatSheet applies the shared report formatting: accounting number
// format on the amount columns, wider text columns, a frozen header row,
// an autofilter table and 90% zoom.
func (w *ExcelWriter) formatSheet(f *excelize.File, sheet, lastCol string, lastRow int, tableName string) error {
	// num_format 42 is the built-in accounting format
	moneyStyle, err := f.NewStyle(&excelize.Style{
		NumFmt:    42,
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return apperrors.NewStorageError("failed to create money style", err)
	}

	if err := f.SetColWidth(sheet, "A", "B", 15); err != nil {
		return apperrors.NewStorageError("failed to set column widths", err)
	}
	if err := f.SetColWidth(sheet, "C", "C", 30); err != nil {
		return apperrors.NewStorageError("failed to set column widths", err)
	}
	if err := f.SetColWidth(sheet, "D", lastCol, 10); err != nil {
		return apperrors.NewStorageError("failed to set column widths", err)
	}
	if err := f.SetColStyle(sheet, fmt.Sprintf("D:%s", lastCol), moneyStyle); err != nil {
		return apperrors.NewStorageError("failed to style amount columns", err)
	}

	if lastRow > 1 {
		if err := f.AddTable(sheet, &excelize.Table{
			Range:          fmt.Sprintf("A1:%s%d", lastCol, lastRow),
			Name:           tableName,
			StyleName:      "TableStyleLight11",
			ShowRowStripes: boolPtr(true),
		}); err != nil {
			return apperrors.NewStorageError("failed to add table", err)
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return apperrors.NewStorageError("failed to freeze header row", err)
	}

	zoom := 90.0
	if err := f.SetSheetView(sheet, -1, &excelize.ViewOptions{ZoomScale: &zoom}); err != nil {
		return apperrors.NewStorageError("failed to set sheet zoom", err)
	}

	return nil
}

// SanitizeFilename strips characters that are unsafe in report filenames.
func SanitizeFilename(name string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", ":", "-", "*", "", "?", "", "\"", "", "<", "", ">", "", "|", "")
	return replacer.Replace(name)
}

func boolPtr(b bool) *bool { return &b }

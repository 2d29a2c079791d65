package exporter

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"salescli/internal/config"
	"salescli/pkg/contracts/domain"
)

var testWindow = domain.Window{CurrentYear: 2025, PreviousYear: 2024}

func samplePivot() *domain.PivotReport {
	periods := domain.ExpectedPeriods(testWindow)
	q1 := domain.YearQuarter{Year: 2025, Quarter: 1}
	row := domain.PivotRow{
		Salesperson: "Alice",
		Sector:      "Electronics",
		Customer:    "Acme",
		Quarters:    make(map[domain.YearQuarter]float64, len(periods)),
	}
	for _, yq := range periods {
		row.Quarters[yq] = 0
	}
	row.Quarters[q1] = 1000

	return &domain.PivotReport{
		Window:  testWindow,
		Periods: periods,
		Rows:    []domain.PivotRow{row},
	}
}

func sampleBudget() *domain.BudgetReport {
	periods := domain.CurrentYearPeriods(testWindow)
	quarters := func(vals ...float64) map[domain.YearQuarter]float64 {
		m := make(map[domain.YearQuarter]float64, len(periods))
		for i, yq := range periods {
			m[yq] = vals[i]
		}
		return m
	}

	return &domain.BudgetReport{
		Window:  testWindow,
		Periods: periods,
		Rows: []domain.BudgetRow{
			{
				Salesperson: "Alice", Kind: domain.BudgetRowAssigned,
				Sector: config.RowLabelAssigned,
				Quarters: quarters(1000, 0, 0, 0), Total: 1000,
			},
			{
				Salesperson: "Alice", Kind: domain.BudgetRowBudget,
				Sector: config.RowLabelBudget, Customer: config.RowLabelBudget,
				Quarters: quarters(2000, 2000, 2000, 2000), Total: 8000,
			},
		},
	}
}

func TestWriteSalespersonReport(t *testing.T) {
	dir := t.TempDir()
	w := NewExcelWriter(dir)
	ts := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)

	path, err := w.WriteSalespersonReport("Alice", samplePivot(), sampleBudget(), ts)
	require.NoError(t, err)
	assert.Equal(t, "Alice-Sales Tool-250315-093000.xlsx", filepath.Base(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Sheet1")
	assert.Contains(t, sheets, "Budget-Assigned-Unassigned")

	// pivot sheet: header, one data row, totals row
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"AE1", "Sector", "Customer", "24Q1", "24Q2", "24Q3", "24Q4", "25Q1", "25Q2", "25Q3", "25Q4"}, rows[0])
	assert.Equal(t, "Alice", rows[1][0])
	assert.Equal(t, "Total", rows[2][0])

	// budget sheet carries the Total column
	brows, err := f.GetRows("Budget-Assigned-Unassigned")
	require.NoError(t, err)
	require.Len(t, brows, 3)
	assert.Equal(t, []string{"AE1", "Sector", "Customer", "25Q1", "25Q2", "25Q3", "25Q4", "Total"}, brows[0])
	assert.Equal(t, config.RowLabelAssigned, brows[1][1])
	assert.Equal(t, config.RowLabelBudget, brows[2][1])
}

func TestWriteSalespersonReportSanitizesName(t *testing.T) {
	dir := t.TempDir()
	w := NewExcelWriter(dir)

	path, err := w.WriteSalespersonReport("A/B:C", samplePivot(), sampleBudget(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.NotContains(t, filepath.Base(path), "/")
	assert.NotContains(t, filepath.Base(path), ":")
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "clean", in: "Alice Smith", expected: "Alice Smith"},
		{name: "slashes", in: "a/b\\c", expected: "a-b-c"},
		{name: "stripped", in: "a*b?c\"d<e>f|g", expected: "abcdefg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.in))
		})
	}
}

func TestWritePivotCSV(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir)

	require.NoError(t, w.WritePivotCSV("pivot.csv", samplePivot()))

	data, err := readFileStripBOM(filepath.Join(dir, "pivot.csv"))
	require.NoError(t, err)
	assert.Contains(t, data, "AE1,Sector,Customer,24Q1")
	assert.Contains(t, data, "Alice,Electronics,Acme")
	assert.Contains(t, data, "1000.00")
}

func TestWriteBudgetCSV(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir)

	require.NoError(t, w.WriteBudgetCSV("budget.csv", sampleBudget()))

	data, err := readFileStripBOM(filepath.Join(dir, "budget.csv"))
	require.NoError(t, err)
	assert.Contains(t, data, "25Q1,25Q2,25Q3,25Q4,Total")
	assert.Contains(t, data, "8000.00")
}

package dataprocessing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"salescli/internal/config"
	apperrors "salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// writeForecastWorkbook builds a minimal forecast workbook on disk with
// the given header and data rows.
func writeForecastWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "forecast.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestParseForecast(t *testing.T) {
	path := writeForecastWorkbook(t, config.SheetRevenueDB, [][]interface{}{
		{"Active", "AE1", "AE2", "Sector", "Customer", "Market", "1/1/2025", "2/1/2025", "Notes"},
		{"Y", "Alice Smith", "", "Electronics", "Acme Corp", "North", "$1,000.00", "500", "first"},
		{"Y", "Bob Jones", "", "Retail", "Widgets Inc", "South", "", "250.75", ""},
	})

	table, err := ParseForecast(path)
	require.NoError(t, err)
	require.Len(t, table.Deals, 2)
	require.Len(t, table.Columns, 2)

	assert.Equal(t, domain.MonthColumn{Month: 1, Year: 2025}, table.Columns[0])
	assert.Equal(t, domain.MonthColumn{Month: 2, Year: 2025}, table.Columns[1])

	alice := table.Deals[0]
	assert.Equal(t, "Alice Smith", alice.Salesperson)
	assert.Equal(t, "Electronics", alice.Sector)
	assert.Equal(t, "Acme Corp", alice.Customer)
	assert.Equal(t, "$1,000.00", alice.Monthly[domain.MonthColumn{Month: 1, Year: 2025}])

	bob := table.Deals[1]
	assert.Equal(t, "Bob Jones", bob.Salesperson)
	assert.Equal(t, "250.75", bob.Monthly[domain.MonthColumn{Month: 2, Year: 2025}])
}

func TestParseForecastSkipsEmptyRows(t *testing.T) {
	path := writeForecastWorkbook(t, config.SheetRevenueDB, [][]interface{}{
		{"AE1", "Sector", "Customer", "3/1/2025"},
		{"Alice", "Electronics", "Acme", "100"},
		{"", "", "", ""},
		{"Bob", "Retail", "Widgets", "200"},
	})

	table, err := ParseForecast(path)
	require.NoError(t, err)
	assert.Len(t, table.Deals, 2)
}

func TestParseForecastMissingSheet(t *testing.T) {
	path := writeForecastWorkbook(t, "WrongSheet", [][]interface{}{
		{"AE1", "Sector", "Customer"},
	})

	_, err := ParseForecast(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeSchema))
}

func TestParseForecastMissingRequiredColumn(t *testing.T) {
	path := writeForecastWorkbook(t, config.SheetRevenueDB, [][]interface{}{
		{"AE1", "Customer", "1/1/2025"}, // no Sector
		{"Alice", "Acme", "100"},
	})

	_, err := ParseForecast(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeSchema))
	assert.Contains(t, err.Error(), "sector")
}

func TestParseForecastIgnoresNonMonthHeaders(t *testing.T) {
	path := writeForecastWorkbook(t, config.SheetRevenueDB, [][]interface{}{
		// "1/15/2025" is not a monthly column: day must be 1.
		{"AE1", "Sector", "Customer", "1/15/2025", "13/1/2025", "6/1/2025"},
		{"Alice", "Electronics", "Acme", "10", "20", "30"},
	})

	table, err := ParseForecast(path)
	require.NoError(t, err)
	require.Len(t, table.Columns, 1)
	assert.Equal(t, domain.MonthColumn{Month: 6, Year: 2025}, table.Columns[0])
}

func TestParseForecastMissingFile(t *testing.T) {
	_, err := ParseForecast(filepath.Join(t.TempDir(), "absent.xlsx"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
}

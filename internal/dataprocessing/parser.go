package dataprocessing

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"salescli/internal/config"
	apperrors "salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// requiredColumns are the identity columns every forecast workbook must
// carry. Other attribute columns are optional and default to empty.
var requiredColumns = []string{"ae1", "customer", "sector"}

// ParseForecast reads the RevenueDB sheet of a forecast workbook and
// extracts the deal rows. Column positions are mapped dynamically from
// the header row, so the workbook may reorder or add columns without
// breaking the parse. Missing required columns or a missing sheet are
// SCHEMA errors and abort the run.
func ParseForecast(path string) (*domain.ForecastTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("failed to open workbook %s", path), err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetRevenueDB)
	if err != nil {
		return nil, apperrors.NewSchemaError(
			fmt.Sprintf("sheet %q not found in %s", config.SheetRevenueDB, path))
	}
	if len(rows) < 2 {
		return nil, apperrors.NewSchemaError(
			fmt.Sprintf("sheet %q has no data rows", config.SheetRevenueDB))
	}

	header := rows[0]
	columnMap := make(map[string]int)
	var monthIdx []int
	var monthCols []domain.MonthColumn

	for j, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name == "" {
			continue
		}
		if mc, ok := domain.ParseMonthColumn(cell); ok {
			monthIdx = append(monthIdx, j)
			monthCols = append(monthCols, mc)
			continue
		}
		columnMap[name] = j
	}

	for _, col := range requiredColumns {
		if _, ok := columnMap[col]; !ok {
			return nil, apperrors.NewSchemaError(
				fmt.Sprintf("required column %q not found in sheet %q", col, config.SheetRevenueDB))
		}
	}

	slog.Debug("mapped workbook columns",
		slog.Int("attribute_columns", len(columnMap)),
		slog.Int("monthly_columns", len(monthCols)))

	cellAt := func(row []string, name string) string {
		idx, ok := columnMap[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	table := &domain.ForecastTable{
		SourcePath: path,
		Columns:    monthCols,
	}

	for i := 1; i < len(rows); i++ {
		row := rows[i]

		empty := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		deal := domain.RawDeal{
			Salesperson:     cellAt(row, "ae1"),
			Sector:          cellAt(row, "sector"),
			Customer:        cellAt(row, "customer"),
			Market:          cellAt(row, "market"),
			RevenueClass:    cellAt(row, "revenue class"),
			BrokerName:      cellAt(row, "brokername"),
			Agency:          cellAt(row, "agency"),
			AgencyPercent:   cellAt(row, "agencypercent"),
			Active:          cellAt(row, "active"),
			SecondaryAE:     cellAt(row, "ae2"),
			TertiaryAE:      cellAt(row, "ae3"),
			GrossCommission: cellAt(row, "grosscommission"),
			Broker:          cellAt(row, "broker"),
			BrokerPercent:   cellAt(row, "brokerpercent"),
			Monthly:         make(map[domain.MonthColumn]string, len(monthCols)),
		}

		for k, idx := range monthIdx {
			if idx < len(row) {
				deal.Monthly[monthCols[k]] = strings.TrimSpace(row[idx])
			}
		}

		table.Deals = append(table.Deals, deal)
	}

	slog.Info("parsed forecast workbook",
		slog.String("path", path),
		slog.Int("deals", len(table.Deals)),
		slog.Int("monthly_columns", len(monthCols)))

	return table, nil
}

package dataprocessing

import (
	"log/slog"

	"salescli/internal/config"
	"salescli/pkg/contracts/domain"
)

// Result bundles everything one pipeline run produces for the renderers
// and mailers downstream.
type Result struct {
	Table   *domain.ForecastTable
	Pivot   *domain.PivotReport
	Budget  *domain.BudgetReport
	Company domain.CompanyStats
}

// Process runs the full pipeline against one forecast workbook: parse,
// clean, melt, pivot, validate, reconcile and roll up. The reporting
// window is a parameter rather than derived from the clock here, so a
// run that spans a year boundary stays on one window and tests can pin
// a reference year.
func Process(path string, cfg *config.Config, w domain.Window) (*Result, error) {
	table, err := ParseForecast(path)
	if err != nil {
		return nil, err
	}

	deals := Clean(table)
	records := Melt(deals, table.Columns, w)
	slog.Info("reshaped forecast data",
		slog.Int("deals", len(deals)),
		slog.Int("long_records", len(records)))

	pivot := BuildPivot(records, cfg.ActiveSalespeople(), w)
	if err := ValidatePivot(pivot); err != nil {
		return nil, err
	}
	slog.Info("built pivot report", slog.Int("rows", len(pivot.Rows)))

	budget := BuildBudgetReport(pivot, cfg.AccountExecutives, w)
	company := CompanyRollup(pivot, cfg.AccountExecutives, w)

	return &Result{
		Table:   table,
		Pivot:   pivot,
		Budget:  budget,
		Company: company,
	}, nil
}

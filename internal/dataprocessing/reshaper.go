package dataprocessing

import (
	"salescli/pkg/contracts/domain"
)

// Melt un-pivots the monthly columns of each deal into long-form
// records: one record per (deal, monthly column) pair, carrying the
// deal's identifying attributes and the cell amount. Only columns whose
// year falls inside the reporting window are melted; older or future
// columns are ignored. Columns are walked in workbook order so the
// output is deterministic.
func Melt(deals []domain.Deal, columns []domain.MonthColumn, w domain.Window) []domain.LongRecord {
	var inWindow []domain.MonthColumn
	for _, col := range columns {
		if w.Contains(col.Year) {
			inWindow = append(inWindow, col)
		}
	}

	records := make([]domain.LongRecord, 0, len(deals)*len(inWindow))
	for _, deal := range deals {
		for _, col := range inWindow {
			records = append(records, domain.LongRecord{
				Salesperson: deal.Salesperson,
				Sector:      deal.Sector,
				Customer:    deal.Customer,
				Period:      col,
				Amount:      deal.Monthly[col],
			})
		}
	}
	return records
}

package dataprocessing

import (
	"log/slog"
	"sort"
	"strings"

	"salescli/pkg/contracts/domain"
)

// rowKey identifies one output row of the pivot report.
type rowKey struct {
	salesperson string
	sector      string
	customer    string
}

// BuildPivot aggregates long-form records into the wide quarterly report.
//
// Records are kept only when their period falls inside the window, their
// amount is strictly positive (zero and negative amounts represent no
// recognized revenue), and their salesperson matches the authorized set
// case-insensitively after trimming. Unauthorized rows are excluded
// silently. Surviving records are summed per (salesperson, sector,
// customer, year-quarter), pivoted so every expected quarter column
// exists with a zero default, and sorted by (salesperson, sector,
// customer).
func BuildPivot(records []domain.LongRecord, authorized []string, w domain.Window) *domain.PivotReport {
	allowed := make(map[string]bool, len(authorized))
	for _, name := range authorized {
		allowed[strings.ToLower(strings.TrimSpace(name))] = true
	}

	periods := domain.ExpectedPeriods(w)

	sums := make(map[rowKey]map[domain.YearQuarter]float64)
	dropped := 0
	for _, rec := range records {
		if !w.Contains(rec.Period.Year) || rec.Amount <= 0 {
			continue
		}
		if !allowed[strings.ToLower(strings.TrimSpace(rec.Salesperson))] {
			dropped++
			continue
		}

		key := rowKey{
			salesperson: rec.Salesperson,
			sector:      rec.Sector,
			customer:    rec.Customer,
		}
		quarters, ok := sums[key]
		if !ok {
			quarters = make(map[domain.YearQuarter]float64, len(periods))
			sums[key] = quarters
		}
		quarters[rec.YearQuarter()] += rec.Amount
	}

	if dropped > 0 {
		slog.Debug("excluded records for unauthorized salespeople",
			slog.Int("records", dropped))
	}

	rows := make([]domain.PivotRow, 0, len(sums))
	for key, quarters := range sums {
		for _, yq := range periods {
			if _, ok := quarters[yq]; !ok {
				quarters[yq] = 0
			}
		}
		rows = append(rows, domain.PivotRow{
			Salesperson: key.salesperson,
			Sector:      key.sector,
			Customer:    key.customer,
			Quarters:    quarters,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Salesperson != rows[j].Salesperson {
			return rows[i].Salesperson < rows[j].Salesperson
		}
		if rows[i].Sector != rows[j].Sector {
			return rows[i].Sector < rows[j].Sector
		}
		return rows[i].Customer < rows[j].Customer
	})

	return &domain.PivotReport{
		Window:  w,
		Periods: periods,
		Rows:    rows,
	}
}

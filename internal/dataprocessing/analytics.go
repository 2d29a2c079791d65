package dataprocessing

import (
	"fmt"
	"sort"

	"salescli/internal/config"
	"salescli/pkg/contracts/domain"
)

// completionPct returns assigned as a percentage of budget, 0 when the
// budget is 0.
func completionPct(assigned, budget float64) float64 {
	if budget == 0 {
		return 0
	}
	return assigned / budget * 100
}

// yoyChange returns the percentage change versus the prior-year value.
// With no prior revenue the change is undefined; it is reported as 0
// with known false and renderers display it as "New".
func yoyChange(current, prior float64) (change float64, known bool) {
	if prior == 0 {
		return 0, false
	}
	return (current - prior) / prior * 100, true
}

// SalespersonRollup computes one salesperson's current-year performance
// from the pivot report: four quarters of assigned and unassigned
// revenue against budget with prior-year comparisons, plus annual totals
// and customer counts. Assigned revenue excludes the unassigned sentinel
// sector throughout.
func SalespersonRollup(pivot *domain.PivotReport, name string, ae config.AccountExecutive, w domain.Window) domain.SalespersonStats {
	rows := pivot.RowsFor(name)
	stats := domain.SalespersonStats{
		Name:         name,
		AnnualBudget: ae.AnnualBudget(),
	}

	for i, yq := range domain.CurrentYearPeriods(w) {
		prior := domain.PriorPeriod(yq)
		q := domain.QuarterPerformance{
			Name:   fmt.Sprintf("Q%d", yq.Quarter),
			Budget: ae.Budgets[i],
		}
		for _, row := range rows {
			if row.Sector == config.SectorUnassigned {
				q.Unassigned += row.Amount(yq)
				q.PrevUnassigned += row.Amount(prior)
			} else {
				q.Assigned += row.Amount(yq)
				q.PrevAssigned += row.Amount(prior)
			}
		}
		q.CompletionPct = completionPct(q.Assigned, q.Budget)
		q.YoYChange, q.PriorKnown = yoyChange(q.Assigned, q.PrevAssigned)

		stats.Quarters[i] = q
		stats.TotalAssignedRevenue += q.Assigned
		stats.TotalUnassignedRevenue += q.Unassigned
	}

	stats.AnnualCompletionPct = completionPct(stats.TotalAssignedRevenue, stats.AnnualBudget)
	stats.TotalCustomers = countActiveCustomers(rows, domain.CurrentYearPeriods(w))
	stats.PriorYearCustomers = countActiveCustomers(rows, priorYearPeriods(w))
	if stats.TotalCustomers > 0 {
		stats.AvgPerCustomer = stats.TotalAssignedRevenue / float64(stats.TotalCustomers)
	}

	return stats
}

// CompanyRollup computes the management rollup as a sum over the
// per-salesperson rollups of every enabled salesperson. Summing the
// already-computed rollups and re-aggregating the raw pivot give the
// same answer because each pivot row belongs to exactly one salesperson.
func CompanyRollup(pivot *domain.PivotReport, executives map[string]config.AccountExecutive, w domain.Window) domain.CompanyStats {
	names := make([]string, 0, len(executives))
	for name, ae := range executives {
		if ae.Enabled {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	company := domain.CompanyStats{}
	customers := make(map[string]bool)
	priorCustomers := make(map[string]bool)
	var totalPrevAssigned float64

	for _, name := range names {
		stats := SalespersonRollup(pivot, name, executives[name], w)
		company.Salespeople = append(company.Salespeople, stats)

		company.TotalRevenue += stats.TotalAssignedRevenue
		company.TotalUnassignedRevenue += stats.TotalUnassignedRevenue
		company.TotalBudget += stats.AnnualBudget

		for i := range company.Quarters {
			company.Quarters[i].Name = stats.Quarters[i].Name
			company.Quarters[i].Assigned += stats.Quarters[i].Assigned
			company.Quarters[i].Unassigned += stats.Quarters[i].Unassigned
			company.Quarters[i].Budget += stats.Quarters[i].Budget
			company.Quarters[i].PrevAssigned += stats.Quarters[i].PrevAssigned
			company.Quarters[i].PrevUnassigned += stats.Quarters[i].PrevUnassigned
		}
		totalPrevAssigned += stats.Quarters[0].PrevAssigned +
			stats.Quarters[1].PrevAssigned +
			stats.Quarters[2].PrevAssigned +
			stats.Quarters[3].PrevAssigned

		rows := pivot.RowsFor(name)
		collectActiveCustomers(customers, rows, domain.CurrentYearPeriods(w))
		collectActiveCustomers(priorCustomers, rows, priorYearPeriods(w))
	}

	for i := range company.Quarters {
		q := &company.Quarters[i]
		q.CompletionPct = completionPct(q.Assigned, q.Budget)
		q.YoYChange, q.PriorKnown = yoyChange(q.Assigned, q.PrevAssigned)
	}

	company.CompletionPct = completionPct(company.TotalRevenue, company.TotalBudget)
	company.YoYChange, company.PriorKnown = yoyChange(company.TotalRevenue, totalPrevAssigned)
	company.TotalCustomers = len(customers)
	company.PriorYearCustomers = len(priorCustomers)

	return company
}

// countActiveCustomers counts distinct customers with positive assigned
// revenue in any of the given periods. The unassigned sentinel sector is
// skipped; it is not a real customer account.
func countActiveCustomers(rows []domain.PivotRow, periods []domain.YearQuarter) int {
	seen := make(map[string]bool)
	collectActiveCustomers(seen, rows, periods)
	return len(seen)
}

func collectActiveCustomers(seen map[string]bool, rows []domain.PivotRow, periods []domain.YearQuarter) {
	for _, row := range rows {
		if row.Sector == config.SectorUnassigned {
			continue
		}
		for _, yq := range periods {
			if row.Amount(yq) > 0 {
				seen[row.Customer] = true
				break
			}
		}
	}
}

func priorYearPeriods(w domain.Window) []domain.YearQuarter {
	periods := make([]domain.YearQuarter, 0, 4)
	for q := 1; q <= 4; q++ {
		periods = append(periods, domain.YearQuarter{Year: w.PreviousYear, Quarter: q})
	}
	return periods
}

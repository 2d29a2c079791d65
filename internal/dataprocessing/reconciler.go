package dataprocessing

import (
	"sort"

	"salescli/internal/config"
	"salescli/pkg/contracts/domain"
)

// BuildBudgetReport reconciles each enabled salesperson's pivot totals
// against their configured quarterly budgets for the current year.
//
// Each salesperson gets a Budget row carrying the configured targets and
// an Assigned row computed as the residual total minus unassigned, per
// quarter. An Unassigned row (customer labeled "New Accounts") appears
// only when the unassigned sentinel sector carries a nonzero amount in
// at least one quarter. A salesperson with no data still gets Budget and
// Assigned rows, so their report shows zero against target instead of
// omitting them. Every row carries a Total column summing its quarters.
func BuildBudgetReport(pivot *domain.PivotReport, executives map[string]config.AccountExecutive, w domain.Window) *domain.BudgetReport {
	periods := domain.CurrentYearPeriods(w)

	names := make([]string, 0, len(executives))
	for name, ae := range executives {
		if ae.Enabled {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	report := &domain.BudgetReport{
		Window:  w,
		Periods: periods,
	}

	for _, name := range names {
		ae := executives[name]
		rows := pivot.RowsFor(name)

		totals := make(map[domain.YearQuarter]float64, len(periods))
		unassigned := make(map[domain.YearQuarter]float64, len(periods))
		var unassignedSum float64
		for _, row := range rows {
			for _, yq := range periods {
				amt := row.Amount(yq)
				totals[yq] += amt
				if row.Sector == config.SectorUnassigned {
					unassigned[yq] += amt
					unassignedSum += amt
				}
			}
		}

		budgetQuarters := make(map[domain.YearQuarter]float64, len(periods))
		assignedQuarters := make(map[domain.YearQuarter]float64, len(periods))
		for i, yq := range periods {
			budgetQuarters[yq] = ae.Budgets[i]
			assignedQuarters[yq] = totals[yq] - unassigned[yq]
		}

		// Row order per salesperson matches the rendered report:
		// unassigned, assigned, budget.
		if unassignedSum != 0 {
			report.Rows = append(report.Rows, domain.BudgetRow{
				Salesperson: name,
				Kind:        domain.BudgetRowUnassigned,
				Sector:      config.SectorUnassigned,
				Customer:    config.CustomerNewAccounts,
				Quarters:    unassigned,
				Total:       sumQuarters(unassigned, periods),
			})
		}
		report.Rows = append(report.Rows, domain.BudgetRow{
			Salesperson: name,
			Kind:        domain.BudgetRowAssigned,
			Sector:      config.RowLabelAssigned,
			Customer:    "",
			Quarters:    assignedQuarters,
			Total:       sumQuarters(assignedQuarters, periods),
		})
		report.Rows = append(report.Rows, domain.BudgetRow{
			Salesperson: name,
			Kind:        domain.BudgetRowBudget,
			Sector:      config.RowLabelBudget,
			Customer:    config.RowLabelBudget,
			Quarters:    budgetQuarters,
			Total:       sumQuarters(budgetQuarters, periods),
		})
	}

	return report
}

func sumQuarters(quarters map[domain.YearQuarter]float64, periods []domain.YearQuarter) float64 {
	var total float64
	for _, yq := range periods {
		total += quarters[yq]
	}
	return total
}

package domain

// PivotRow is one (salesperson, sector, customer) row of the pivot report
// with a summed amount per year-quarter. Quarters absent from the source
// data are present with value 0.
type PivotRow struct {
	Salesperson string                  `json:"salesperson"`
	Sector      string                  `json:"sector"`
	Customer    string                  `json:"customer"`
	Quarters    map[YearQuarter]float64 `json:"quarters"`
}

// Amount returns the row's value for a quarter, 0 when absent.
func (r PivotRow) Amount(yq YearQuarter) float64 {
	return r.Quarters[yq]
}

// Total sums the row across the given periods.
func (r PivotRow) Total(periods []YearQuarter) float64 {
	var total float64
	for _, yq := range periods {
		total += r.Quarters[yq]
	}
	return total
}

// PivotReport is the wide-format quarterly report: one row per
// (salesperson, sector, customer), one column per year-quarter in the
// two-year reporting window. Rows are sorted by (salesperson, sector,
// customer) and Periods always holds all 8 expected columns in order.
type PivotReport struct {
	Window  Window        `json:"window"`
	Periods []YearQuarter `json:"periods"`
	Rows    []PivotRow    `json:"rows"`
}

// RowsFor returns the pivot rows belonging to one salesperson.
func (p *PivotReport) RowsFor(salesperson string) []PivotRow {
	var rows []PivotRow
	for _, row := range p.Rows {
		if row.Salesperson == salesperson {
			rows = append(rows, row)
		}
	}
	return rows
}

// Salespeople returns the distinct salespeople present in the report, in
// row order.
func (p *PivotReport) Salespeople() []string {
	seen := make(map[string]bool)
	var names []string
	for _, row := range p.Rows {
		if !seen[row.Salesperson] {
			seen[row.Salesperson] = true
			names = append(names, row.Salesperson)
		}
	}
	return names
}

// BudgetRowKind distinguishes the three row types of the budget report.
type BudgetRowKind string

const (
	BudgetRowBudget     BudgetRowKind = "budget"
	BudgetRowAssigned   BudgetRowKind = "assigned"
	BudgetRowUnassigned BudgetRowKind = "unassigned"
)

// BudgetRow is one reconciliation row: the configured budget targets, the
// assigned residual, or the unassigned sentinel sum for a salesperson.
type BudgetRow struct {
	Salesperson string                  `json:"salesperson"`
	Kind        BudgetRowKind           `json:"kind"`
	Sector      string                  `json:"sector"`
	Customer    string                  `json:"customer"`
	Quarters    map[YearQuarter]float64 `json:"quarters"`
	Total       float64                 `json:"total"`
}

// BudgetReport is the reconciled budget-vs-assigned-vs-unassigned table
// for the current-year quarters. Every enabled salesperson has a Budget
// and an Assigned row; an Unassigned row appears only when its quarters
// sum to a nonzero amount.
type BudgetReport struct {
	Window  Window        `json:"window"`
	Periods []YearQuarter `json:"periods"`
	Rows    []BudgetRow   `json:"rows"`
}

// RowsFor returns the budget rows belonging to one salesperson.
func (b *BudgetReport) RowsFor(salesperson string) []BudgetRow {
	var rows []BudgetRow
	for _, row := range b.Rows {
		if row.Salesperson == salesperson {
			rows = append(rows, row)
		}
	}
	return rows
}

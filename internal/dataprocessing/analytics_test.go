package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescli/internal/config"
	"salescli/pkg/contracts/domain"
)

func TestSalespersonRollupCompletion(t *testing.T) {
	records := []domain.LongRecord{
		record("Alice", "Electronics", "Acme", 1, 2025, 1000),
	}
	pivot := BuildPivot(records, []string{"Alice"}, testWindow)
	ae := config.AccountExecutive{Enabled: true, Budgets: [4]float64{2000, 2000, 2000, 2000}}

	stats := SalespersonRollup(pivot, "Alice", ae, testWindow)

	q1 := stats.Quarters[0]
	assert.Equal(t, "Q1", q1.Name)
	assert.Equal(t, 1000.0, q1.Assigned)
	assert.Equal(t, 0.0, q1.Unassigned)
	assert.Equal(t, 2000.0, q1.Budget)
	assert.Equal(t, 50.0, q1.CompletionPct)

	assert.Equal(t, 1000.0, stats.TotalAssignedRevenue)
	assert.Equal(t, 8000.0, stats.AnnualBudget)
	assert.InDelta(t, 12.5, stats.AnnualCompletionPct, epsilon)
	assert.Equal(t, 1, stats.TotalCustomers)
	assert.Equal(t, 1000.0, stats.AvgPerCustomer)
}

func TestSalespersonRollupZeroBudget(t *testing.T) {
	records := []domain.LongRecord{
		record("Alice", "Electronics", "Acme", 1, 2025, 1000),
	}
	pivot := BuildPivot(records, []string{"Alice"}, testWindow)
	ae := config.AccountExecutive{Enabled: true}

	stats := SalespersonRollup(pivot, "Alice", ae, testWindow)
	assert.Equal(t, 0.0, stats.Quarters[0].CompletionPct)
	assert.Equal(t, 0.0, stats.AnnualCompletionPct)
}

func TestSalespersonRollupYearOverYear(t *testing.T) {
	records := []domain.LongRecord{
		record("Alice", "Electronics", "Acme", 1, 2024, 800),
		record("Alice", "Electronics", "Acme", 1, 2025, 1000),
		record("Alice", "Retail", "Widgets", 4, 2025, 500),
	}
	pivot := BuildPivot(records, []string{"Alice"}, testWindow)
	ae := config.AccountExecutive{Enabled: true, Budgets: [4]float64{1, 1, 1, 1}}

	stats := SalespersonRollup(pivot, "Alice", ae, testWindow)

	q1 := stats.Quarters[0]
	assert.Equal(t, 800.0, q1.PrevAssigned)
	assert.InDelta(t, 25.0, q1.YoYChange, epsilon)
	assert.True(t, q1.PriorKnown)

	// Q2 had no prior-year revenue: change undefined, rendered as "New".
	q2 := stats.Quarters[1]
	assert.Equal(t, 500.0, q2.Assigned)
	assert.Equal(t, 0.0, q2.YoYChange)
	assert.False(t, q2.PriorKnown)
}

func TestSalespersonRollupExcludesUnassigned(t *testing.T) {
	records := []domain.LongRecord{
		record("Alice", "Electronics", "Acme", 1, 2025, 600),
		record("Alice", config.SectorUnassigned, "Prospect", 1, 2025, 400),
	}
	pivot := BuildPivot(records, []string{"Alice"}, testWindow)
	ae := config.AccountExecutive{Enabled: true, Budgets: [4]float64{1000, 0, 0, 0}}

	stats := SalespersonRollup(pivot, "Alice", ae, testWindow)

	assert.Equal(t, 600.0, stats.Quarters[0].Assigned)
	assert.Equal(t, 400.0, stats.Quarters[0].Unassigned)
	assert.Equal(t, 600.0, stats.TotalAssignedRevenue)
	assert.Equal(t, 400.0, stats.TotalUnassignedRevenue)
	assert.Equal(t, 1, stats.TotalCustomers, "unassigned sentinel is not a customer")
	assert.Equal(t, 600.0, stats.AvgPerCustomer)
}

func TestSalespersonRollupCustomerCounts(t *testing.T) {
	records := []domain.LongRecord{
		record("Alice", "Electronics", "Acme", 1, 2025, 100),
		record("Alice", "Electronics", "Widgets", 5, 2025, 100),
		record("Alice", "Retail", "Lapsed Co", 3, 2024, 100), // prior year only
	}
	pivot := BuildPivot(records, []string{"Alice"}, testWindow)
	ae := config.AccountExecutive{Enabled: true}

	stats := SalespersonRollup(pivot, "Alice", ae, testWindow)
	assert.Equal(t, 2, stats.TotalCustomers)
	assert.Equal(t, 1, stats.PriorYearCustomers)
}

func TestCompanyRollupConsistency(t *testing.T) {
	records := []domain.LongRecord{
		record("Alice", "Electronics", "Acme", 1, 2025, 1000),
		record("Alice", config.SectorUnassigned, "Prospect", 2, 2025, 300),
		record("Bob", "Retail", "Widgets", 1, 2025, 700),
		record("Bob", "Retail", "Gadgets", 10, 2025, 250),
	}
	pivot := BuildPivot(records, []string{"Alice", "Bob"}, testWindow)
	execs := map[string]config.AccountExecutive{
		"Alice": {Enabled: true, Budgets: [4]float64{1000, 1000, 1000, 1000}},
		"Bob":   {Enabled: true, Budgets: [4]float64{500, 500, 500, 500}},
	}

	company := CompanyRollup(pivot, execs, testWindow)
	require.Len(t, company.Salespeople, 2)

	var sum float64
	for _, sp := range company.Salespeople {
		sum += sp.TotalAssignedRevenue
	}
	assert.InDelta(t, sum, company.TotalRevenue, epsilon,
		"company total must equal the sum of per-salesperson totals")

	// Second computation path: aggregate the raw pivot directly.
	var direct float64
	for _, row := range pivot.Rows {
		if row.Sector == config.SectorUnassigned {
			continue
		}
		for _, yq := range domain.CurrentYearPeriods(testWindow) {
			direct += row.Amount(yq)
		}
	}
	assert.InDelta(t, direct, company.TotalRevenue, epsilon)

	assert.Equal(t, 6000.0, company.TotalBudget)
	assert.InDelta(t, 1950.0/6000.0*100, company.CompletionPct, epsilon)
	assert.Equal(t, 3, company.TotalCustomers)
	assert.Equal(t, 300.0, company.TotalUnassignedRevenue)
}

func TestCompanyRollupNoPriorRevenue(t *testing.T) {
	records := []domain.LongRecord{
		record("Alice", "Electronics", "Acme", 1, 2025, 1000),
	}
	pivot := BuildPivot(records, []string{"Alice"}, testWindow)
	execs := map[string]config.AccountExecutive{
		"Alice": {Enabled: true, Budgets: [4]float64{2000, 0, 0, 0}},
	}

	company := CompanyRollup(pivot, execs, testWindow)
	assert.Equal(t, 0.0, company.YoYChange)
	assert.False(t, company.PriorKnown)
	assert.False(t, company.Quarters[0].PriorKnown)
}

func TestCompanyRollupSkipsDisabled(t *testing.T) {
	records := []domain.LongRecord{
		record("Alice", "Electronics", "Acme", 1, 2025, 1000),
		record("Eve", "Retail", "Other", 1, 2025, 9999),
	}
	pivot := BuildPivot(records, []string{"Alice", "Eve"}, testWindow)
	execs := map[string]config.AccountExecutive{
		"Alice": {Enabled: true},
		"Eve":   {Enabled: false},
	}

	company := CompanyRollup(pivot, execs, testWindow)
	require.Len(t, company.Salespeople, 1)
	assert.Equal(t, "Alice", company.Salespeople[0].Name)
	assert.Equal(t, 1000.0, company.TotalRevenue)
}

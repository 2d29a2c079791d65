package domain

// QuarterPerformance is one quarter of a salesperson's (or the company's)
// performance against budget, with the matching prior-year comparison.
//
// CompletionPct is assigned/budget*100, 0 when the budget is 0. YoYChange
// is the percentage change in assigned revenue versus the same quarter one
// year prior; when the prior-year quarter had no assigned revenue the
// change is reported as 0 with PriorKnown false, which renderers display
// as "New" rather than a percentage.
type QuarterPerformance struct {
	Name           string  `json:"name"` // "Q1".."Q4"
	Assigned       float64 `json:"assigned"`
	Unassigned     float64 `json:"unassigned"`
	Budget         float64 `json:"budget"`
	CompletionPct  float64 `json:"completion_pct"`
	PrevAssigned   float64 `json:"prev_assigned"`
	PrevUnassigned float64 `json:"prev_unassigned"`
	YoYChange      float64 `json:"yoy_change"`
	PriorKnown     bool    `json:"prior_known"`
}

// SalespersonStats aggregates one salesperson's current-year performance:
// four quarters against budget plus annual totals and customer counts.
type SalespersonStats struct {
	Name                   string                `json:"name"`
	Quarters               [4]QuarterPerformance `json:"quarters"`
	TotalAssignedRevenue   float64               `json:"total_assigned_revenue"`
	TotalUnassignedRevenue float64               `json:"total_unassigned_revenue"`
	AnnualBudget           float64               `json:"annual_budget"`
	AnnualCompletionPct    float64               `json:"annual_completion_pct"`
	TotalCustomers         int                   `json:"total_customers"`
	PriorYearCustomers     int                   `json:"prior_year_customers"`
	AvgPerCustomer         float64               `json:"avg_per_customer"`
}

// CompanyStats is the management rollup: the same shape as a salesperson's
// stats summed across all enabled salespeople, plus the per-salesperson
// breakdown for the management report.
type CompanyStats struct {
	Quarters               [4]QuarterPerformance `json:"quarters"`
	TotalRevenue           float64               `json:"total_revenue"`
	TotalUnassignedRevenue float64               `json:"total_unassigned_revenue"`
	TotalBudget            float64               `json:"total_budget"`
	CompletionPct          float64               `json:"completion_pct"`
	TotalCustomers         int                   `json:"total_customers"`
	PriorYearCustomers     int                   `json:"prior_year_customers"`
	YoYChange              float64               `json:"yoy_change"`
	PriorKnown             bool                  `json:"prior_known"`
	Salespeople            []SalespersonStats    `json:"salespeople"`
}

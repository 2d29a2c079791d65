// Package dataprocessing implements the forecast reshaping and rollup
// pipeline.
//
// The pipeline runs as one sequential pass per invocation:
//
//	ParseForecast -> Clean -> Melt -> BuildPivot -> BuildBudgetReport
//	                                      |
//	                                      +-> SalespersonRollup / CompanyRollup
//
// ParseForecast reads the RevenueDB sheet of the forecast workbook into
// raw deal rows. Clean drops administrative columns, fills missing
// categoricals and excludes trade rows. Melt un-pivots monthly columns
// into long-form records inside the two-year reporting window. BuildPivot
// aggregates recognized revenue to (salesperson, sector, customer,
// year-quarter) and pivots back to a wide table with all eight quarter
// columns present. BuildBudgetReport reconciles each salesperson's totals
// against configured quarterly budgets, and the rollup functions compute
// the per-salesperson and company statistics used by the report
// renderers.
//
// Every entity is produced fresh from the single source file each run;
// nothing mutates shared state, so rerunning on the same file yields
// identical reports.
package dataprocessing

// Package exporter renders the pivot and budget reports to files.
//
// ExcelWriter produces one formatted workbook per salesperson with two
// sheets: the raw quarterly pivot and the budget reconciliation, each
// with accounting number formats, a frozen header row and a totals row.
// CSVWriter writes the same tables as UTF-8 CSV (with BOM so Excel opens
// them correctly), used for archival alongside the workbooks.
package exporter

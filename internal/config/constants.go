package config

import "time"

// Application constants for the sales reporting CLI
const (
	// Application Info
	AppName    = "Sales Report CLI"
	AppVersion = "1.2.0"

	// Workbook layout
	SheetRevenueDB = "RevenueDB"

	// Distinguished category labels
	SectorUnassigned  = "AAA - UNASSIGNED"
	SectorExcluded    = "TRADE"
	SectorUnspecified = "Unspecified"

	// Sentinel fills for missing categorical fields
	CustomerUnspecified = "Unspecified Customer"

	// Budget report row labels
	RowLabelBudget      = "Budget"
	RowLabelAssigned    = "Assigned"
	CustomerNewAccounts = "New Accounts"

	// File discovery
	ForecastFilePattern = "*.xlsx"
	ExcelLockPrefix     = "~$"

	// Output artifacts
	ReportFileSuffix     = "Sales Tool"
	ReportTimestampForm  = "060102-150405"
	DefaultReportsDir    = "reports"
	DefaultForecastDir   = "forecast"
	DefaultLogsDir       = "logs"
	// Generated workbooks are disposable; thirty days is plenty.
	DefaultReportRetention = 30 * 24 * time.Hour

	// Email
	DefaultSMTPPort    = 587
	DefaultSendTimeout = 30 * time.Second
	// One message per interval keeps the relay happy on large teams.
	DefaultSendInterval = 500 * time.Millisecond

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

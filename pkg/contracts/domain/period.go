package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthColumn identifies one monthly revenue column in the forecast workbook.
// Column headers use the form "<month>/1/<year>", e.g. "3/1/2025".
type MonthColumn struct {
	Month int
	Year  int
}

// ParseMonthColumn parses a workbook column header into a MonthColumn.
// Headers that do not match the strict "<month>/1/<year>" form are not
// monthly columns; callers treat them as identifying attributes instead.
func ParseMonthColumn(header string) (MonthColumn, bool) {
	parts := strings.Split(strings.TrimSpace(header), "/")
	if len(parts) != 3 {
		return MonthColumn{}, false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return MonthColumn{}, false
	}
	if parts[1] != "1" {
		return MonthColumn{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil || year < 1000 || year > 9999 {
		return MonthColumn{}, false
	}
	return MonthColumn{Month: month, Year: year}, true
}

// Label returns the workbook header form of the column.
func (m MonthColumn) Label() string {
	return fmt.Sprintf("%d/1/%d", m.Month, m.Year)
}

// Quarter returns the calendar quarter (1-4) the column falls in.
func (m MonthColumn) Quarter() int {
	return (m.Month + 2) / 3
}

// YearQuarter returns the period key for the column.
func (m MonthColumn) YearQuarter() YearQuarter {
	return YearQuarter{Year: m.Year, Quarter: m.Quarter()}
}

// YearQuarter is the period key used throughout the pivot and budget
// reports: a calendar year paired with a quarter number.
type YearQuarter struct {
	Year    int
	Quarter int
}

// Label returns the report column label, e.g. "25Q1" for 2025 Q1.
func (yq YearQuarter) Label() string {
	return fmt.Sprintf("%02dQ%d", yq.Year%100, yq.Quarter)
}

// Before reports whether yq is chronologically before other.
func (yq YearQuarter) Before(other YearQuarter) bool {
	if yq.Year != other.Year {
		return yq.Year < other.Year
	}
	return yq.Quarter < other.Quarter
}

// Window is the two-year reporting window the pipeline operates on.
// It is computed once at pipeline entry and threaded explicitly through
// every component so a run spanning a year boundary stays consistent and
// tests can inject a fixed reference year.
type Window struct {
	CurrentYear  int
	PreviousYear int
}

// NewWindow derives the reporting window from a reference time.
func NewWindow(ref time.Time) Window {
	return Window{CurrentYear: ref.Year(), PreviousYear: ref.Year() - 1}
}

// Contains reports whether a calendar year falls inside the window.
func (w Window) Contains(year int) bool {
	return year == w.CurrentYear || year == w.PreviousYear
}

// ExpectedPeriods returns the 8 year-quarter columns every pivot report
// must carry: previous year Q1-Q4 followed by current year Q1-Q4. This is
// the single source of the expected column set; no component derives its
// own list.
func ExpectedPeriods(w Window) []YearQuarter {
	periods := make([]YearQuarter, 0, 8)
	for _, year := range []int{w.PreviousYear, w.CurrentYear} {
		for q := 1; q <= 4; q++ {
			periods = append(periods, YearQuarter{Year: year, Quarter: q})
		}
	}
	return periods
}

// CurrentYearPeriods returns the 4 current-year quarters, the columns the
// budget reconciliation and analytics operate on.
func CurrentYearPeriods(w Window) []YearQuarter {
	periods := make([]YearQuarter, 0, 4)
	for q := 1; q <= 4; q++ {
		periods = append(periods, YearQuarter{Year: w.CurrentYear, Quarter: q})
	}
	return periods
}

// PriorPeriod returns the same quarter one year earlier.
func PriorPeriod(yq YearQuarter) YearQuarter {
	return YearQuarter{Year: yq.Year - 1, Quarter: yq.Quarter}
}

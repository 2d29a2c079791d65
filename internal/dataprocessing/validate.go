package dataprocessing

import (
	"fmt"

	apperrors "salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// ValidatePivot checks the pivot report before it is handed to the
// reconciler and renderers. A report missing any of the expected quarter
// columns, or carrying rows without a salesperson or customer, is
// malformed; a partial report is worse than no report, so these abort
// the run.
func ValidatePivot(pivot *domain.PivotReport) error {
	expected := domain.ExpectedPeriods(pivot.Window)
	if len(pivot.Periods) != len(expected) {
		return apperrors.NewSchemaError(
			fmt.Sprintf("pivot report has %d quarter columns, expected %d",
				len(pivot.Periods), len(expected)))
	}
	for i, yq := range expected {
		if pivot.Periods[i] != yq {
			return apperrors.NewSchemaError(
				fmt.Sprintf("pivot report missing quarter column %s", yq.Label()))
		}
	}

	for _, row := range pivot.Rows {
		if row.Salesperson == "" {
			return apperrors.NewValidationError("pivot row with empty salesperson")
		}
		if row.Customer == "" {
			return apperrors.NewValidationError(
				fmt.Sprintf("pivot row for %s with empty customer", row.Salesperson))
		}
		for _, yq := range expected {
			if _, ok := row.Quarters[yq]; !ok {
				return apperrors.NewSchemaError(
					fmt.Sprintf("pivot row for %s missing value in %s",
						row.Salesperson, yq.Label()))
			}
		}
	}

	return nil
}

package dataprocessing

import (
	"log/slog"

	"salescli/internal/config"
	"salescli/pkg/contracts/domain"
)

// Clean transforms raw deal rows into cleaned deals: administrative
// fields are dropped, missing categoricals get sentinel labels, sector
// "TRADE" rows are excluded, and monthly cells are coerced to numbers.
// The input table is not mutated.
func Clean(table *domain.ForecastTable) []domain.Deal {
	deals := make([]domain.Deal, 0, len(table.Deals))
	excluded := 0

	for _, raw := range table.Deals {
		sector := raw.Sector
		if sector == "" {
			sector = config.SectorUnspecified
		}
		if sector == config.SectorExcluded {
			excluded++
			continue
		}

		customer := raw.Customer
		if customer == "" {
			customer = config.CustomerUnspecified
		}

		deal := domain.Deal{
			Salesperson:   raw.Salesperson,
			Sector:        sector,
			Customer:      customer,
			Market:        raw.Market,
			RevenueClass:  raw.RevenueClass,
			BrokerName:    raw.BrokerName,
			Agency:        raw.Agency,
			AgencyPercent: raw.AgencyPercent,
			Monthly:       make(map[domain.MonthColumn]float64, len(raw.Monthly)),
		}
		for col, cell := range raw.Monthly {
			deal.Monthly[col] = CoerceCurrency(cell)
		}

		deals = append(deals, deal)
	}

	slog.Debug("cleaned forecast rows",
		slog.Int("kept", len(deals)),
		slog.Int("excluded_trade", excluded))

	return deals
}

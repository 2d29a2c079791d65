package domain

// RawDeal is one customer/deal row exactly as read from the forecast
// workbook: identifying attributes plus one raw revenue cell per monthly
// column. Monthly cells stay as strings at this stage because the workbook
// mixes plain numbers with currency-formatted text ("$1,000.00").
type RawDeal struct {
	Salesperson   string `json:"salesperson"`    // AE1
	Sector        string `json:"sector"`
	Customer      string `json:"customer"`
	Market        string `json:"market"`
	RevenueClass  string `json:"revenue_class"`
	BrokerName    string `json:"broker_name"`
	Agency        string `json:"agency"`
	AgencyPercent string `json:"agency_percent"`

	// Administrative fields dropped by the cleaner.
	Active          string `json:"active,omitempty"`
	SecondaryAE     string `json:"secondary_ae,omitempty"`     // AE2
	TertiaryAE      string `json:"tertiary_ae,omitempty"`      // AE3
	GrossCommission string `json:"gross_commission,omitempty"`
	Broker          string `json:"broker,omitempty"`
	BrokerPercent   string `json:"broker_percent,omitempty"`

	Monthly map[MonthColumn]string `json:"monthly"`
}

// Deal is a cleaned deal row: administrative fields removed, missing
// categoricals replaced with sentinel labels, and monthly revenue parsed
// to numbers. Deals are derived once per run and never mutated afterward.
type Deal struct {
	Salesperson   string  `json:"salesperson"`
	Sector        string  `json:"sector"`
	Customer      string  `json:"customer"`
	Market        string  `json:"market"`
	RevenueClass  string  `json:"revenue_class"`
	BrokerName    string  `json:"broker_name"`
	Agency        string  `json:"agency"`
	AgencyPercent string  `json:"agency_percent"`

	Monthly map[MonthColumn]float64 `json:"monthly"`
}

// LongRecord is one (salesperson, sector, customer, period, amount) tuple
// produced by un-pivoting a deal's monthly columns. Each record maps to
// exactly one (year, quarter) pair.
type LongRecord struct {
	Salesperson string      `json:"salesperson"`
	Sector      string      `json:"sector"`
	Customer    string      `json:"customer"`
	Period      MonthColumn `json:"period"`
	Amount      float64     `json:"amount"`
}

// YearQuarter returns the period key the record aggregates into.
func (r LongRecord) YearQuarter() YearQuarter {
	return r.Period.YearQuarter()
}

// ForecastTable is the parsed forecast workbook: the deal rows plus the
// ordered monthly columns that were recognized in the header.
type ForecastTable struct {
	SourcePath string        `json:"source_path"`
	Deals      []RawDeal     `json:"deals"`
	Columns    []MonthColumn `json:"columns"`
}

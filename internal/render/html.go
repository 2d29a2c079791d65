package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	apperrors "salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

//go:embed templates/*.html templates/*.css
var templateFS embed.FS

// Renderer renders the HTML email bodies from embedded templates.
type Renderer struct {
	tmpl *template.Template
	css  string
}

// NewRenderer parses the embedded templates and stylesheet.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, apperrors.NewConfigError("failed to parse email templates", err)
	}
	css, err := templateFS.ReadFile("templates/styles.css")
	if err != nil {
		return nil, apperrors.NewConfigError("failed to load email stylesheet", err)
	}
	return &Renderer{tmpl: tmpl, css: strings.TrimSpace(string(css))}, nil
}

type overviewItem struct {
	Label string
	Value string
}

type quarterItem struct {
	Name       string
	Amount     string
	Unassigned string
	Budget     string
	Completion string
	YoY        string
	YoYClass   string
}

type card struct {
	Title      string
	WithBudget bool
	Quarters   []quarterItem
}

type salespersonSection struct {
	Name         string
	Quarters     []quarterItem
	TotalRevenue string
	Customers    int
}

// RenderSalesReport renders one salesperson's report email body.
func (r *Renderer) RenderSalesReport(stats domain.SalespersonStats, w domain.Window) (string, error) {
	assigned := make([]quarterItem, 0, 4)
	unassigned := make([]quarterItem, 0, 4)
	for _, q := range stats.Quarters {
		assigned = append(assigned, quarterItem{
			Name:       q.Name,
			Amount:     FormatCurrency(q.Assigned),
			Budget:     FormatCurrency(q.Budget),
			Completion: FormatPercent(q.CompletionPct),
			YoY:        FormatYoY(q.YoYChange, q.PriorKnown),
			YoYClass:   yoyClass(q.YoYChange, q.PriorKnown),
		})
		unassigned = append(unassigned, quarterItem{
			Name:   q.Name,
			Amount: FormatCurrency(q.Unassigned),
		})
	}

	data := struct {
		Name     string
		Year     int
		CSS      template.CSS
		Overview []overviewItem
		Cards    []card
	}{
		Name: stats.Name,
		Year: w.CurrentYear,
		CSS:  template.CSS(r.css),
		Overview: []overviewItem{
			{Label: "Active Customers", Value: fmt.Sprintf("%d", stats.TotalCustomers)},
			{Label: "Total Assigned Revenue", Value: FormatCurrency(stats.TotalAssignedRevenue)},
			{Label: "Avg Revenue per Customer", Value: FormatCurrency(stats.AvgPerCustomer)},
			{Label: "Annual Budget Completion", Value: FormatPercent(stats.AnnualCompletionPct)},
		},
		Cards: []card{
			{
				Title:      fmt.Sprintf("%d Quarterly Overview", w.CurrentYear),
				WithBudget: true,
				Quarters:   assigned,
			},
			{
				Title:    "Unassigned Revenue",
				Quarters: unassigned,
			},
		},
	}

	var buf strings.Builder
	if err := r.tmpl.ExecuteTemplate(&buf, "sales_report.html", data); err != nil {
		return "", apperrors.NewConfigError(
			fmt.Sprintf("failed to render sales report for %s", stats.Name), err)
	}
	return buf.String(), nil
}

// RenderManagementReport renders the company rollup email body.
func (r *Renderer) RenderManagementReport(stats domain.CompanyStats, w domain.Window, ts time.Time) (string, error) {
	quarters := make([]quarterItem, 0, 4)
	for _, q := range stats.Quarters {
		quarters = append(quarters, quarterItem{
			Name:       q.Name,
			Amount:     FormatCurrency(q.Assigned),
			Unassigned: FormatCurrency(q.Unassigned),
			Budget:     FormatCurrency(q.Budget),
			Completion: FormatPercent(q.CompletionPct),
			YoY:        FormatYoY(q.YoYChange, q.PriorKnown),
			YoYClass:   yoyClass(q.YoYChange, q.PriorKnown),
		})
	}

	sections := make([]salespersonSection, 0, len(stats.Salespeople))
	for _, sp := range stats.Salespeople {
		items := make([]quarterItem, 0, 4)
		for _, q := range sp.Quarters {
			items = append(items, quarterItem{
				Name:       q.Name,
				Amount:     FormatCurrency(q.Assigned),
				Unassigned: FormatCurrency(q.Unassigned),
			})
		}
		sections = append(sections, salespersonSection{
			Name:         sp.Name,
			Quarters:     items,
			TotalRevenue: FormatCurrency(sp.TotalAssignedRevenue),
			Customers:    sp.TotalCustomers,
		})
	}

	data := struct {
		Date        string
		Year        int
		CSS         template.CSS
		Overview    []overviewItem
		Quarters    []quarterItem
		Salespeople []salespersonSection
	}{
		Date: ts.Format("2006-01-02"),
		Year: w.CurrentYear,
		CSS:  template.CSS(r.css),
		Overview: []overviewItem{
			{Label: "Total Revenue", Value: FormatCurrency(stats.TotalRevenue)},
			{Label: "Unassigned Revenue", Value: FormatCurrency(stats.TotalUnassignedRevenue)},
			{Label: "Total Budget", Value: FormatCurrency(stats.TotalBudget)},
			{Label: "Budget Completion", Value: FormatPercent(stats.CompletionPct)},
			{Label: "Active Customers", Value: fmt.Sprintf("%d", stats.TotalCustomers)},
			{Label: "Year over Year", Value: FormatYoY(stats.YoYChange, stats.PriorKnown)},
		},
		Quarters:    quarters,
		Salespeople: sections,
	}

	var buf strings.Builder
	if err := r.tmpl.ExecuteTemplate(&buf, "management_report.html", data); err != nil {
		return "", apperrors.NewConfigError("failed to render management report", err)
	}
	return buf.String(), nil
}

func yoyClass(change float64, known bool) string {
	switch {
	case !known:
		return ""
	case change < 0:
		return "yoy-down"
	default:
		return "yoy-up"
	}
}

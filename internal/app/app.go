package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"salescli/internal/config"
	"salescli/internal/dataprocessing"
	apperrors "salescli/internal/errors"
	"salescli/internal/exporter"
	"salescli/internal/files"
	"salescli/internal/infrastructure"
	"salescli/internal/mailer"
	"salescli/internal/operations"
	"salescli/internal/render"
	"salescli/internal/validation"
	"salescli/pkg/contracts/domain"
)

// state keys shared between steps
const (
	stateForecastFile = "forecast_file"
	stateResult       = "result"
)

// Summary describes what one run produced.
type Summary struct {
	RunID        string
	SourceFile   string
	FilesCreated []string
	EmailsSent   int
	Duration     time.Duration
	Steps        []operations.StepResult
}

// App wires the pipeline components into one reporting run.
type App struct {
	cfg       *config.Config
	discovery *files.Discovery
	manager   *files.Manager
	excel     *exporter.ExcelWriter
	csv       *exporter.CSVWriter
	renderer  *render.Renderer
	mailer    *mailer.Mailer
	validator *validation.FileValidator
}

// New builds the application from loaded configuration.
func New(cfg *config.Config) (*App, error) {
	renderer, err := render.NewRenderer()
	if err != nil {
		return nil, err
	}
	return &App{
		cfg:       cfg,
		discovery: files.NewDiscovery(cfg.Paths.ForecastDir),
		manager:   files.NewManager(&cfg.Paths),
		excel:     exporter.NewExcelWriter(cfg.Paths.ReportsDir),
		csv:       exporter.NewCSVWriter(cfg.Paths.ReportsDir),
		renderer:  renderer,
		mailer:    mailer.New(cfg.Email),
		validator: validation.NewFileValidator(slog.Default()),
	}, nil
}

// Run executes one full reporting run: discover the latest forecast
// workbook, run the processing pipeline, export per-salesperson
// workbooks and distribute the emails. The reporting window is fixed at
// entry so a run crossing a year boundary stays consistent.
func (a *App) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	runID := uuid.NewString()
	ctx = infrastructure.WithRunID(ctx, runID)

	window := domain.NewWindow(start)
	slog.InfoContext(ctx, "starting reporting run",
		slog.String("run_id", runID),
		slog.Int("current_year", window.CurrentYear))

	summary := &Summary{RunID: runID}

	runner := operations.NewRunner(
		&discoverStep{app: a},
		&processStep{app: a, window: window},
		&distributeStep{app: a, window: window, ts: start, summary: summary},
	)

	state, results, err := runner.Run(ctx)
	summary.Steps = results
	summary.Duration = time.Since(start)
	if v, ok := state.Get(stateForecastFile); ok {
		summary.SourceFile = v.(files.FileInfo).Path
	}
	if err != nil {
		return summary, err
	}

	if retention := a.cfg.Paths.ReportRetention; retention > 0 {
		removed, cleanupErr := a.manager.CleanupOldReports(retention)
		if cleanupErr != nil {
			slog.WarnContext(ctx, "report cleanup failed", slog.String("error", cleanupErr.Error()))
		} else if removed > 0 {
			slog.InfoContext(ctx, "removed expired reports", slog.Int("count", removed))
		}
	}

	slog.InfoContext(ctx, "reporting run finished",
		slog.String("run_id", runID),
		slog.Int("files_created", len(summary.FilesCreated)),
		slog.Int("emails_sent", summary.EmailsSent),
		slog.Duration("duration", summary.Duration))

	return summary, nil
}

// discoverStep locates the forecast workbook to process.
type discoverStep struct {
	app *App
}

func (s *discoverStep) ID() string   { return "discover" }
func (s *discoverStep) Name() string { return "Discover forecast workbook" }

func (s *discoverStep) Execute(ctx context.Context, state *operations.State) error {
	if err := s.app.validator.ValidateForecastDirectory(s.app.cfg.Paths.ForecastDir); err != nil {
		return err
	}
	file, err := s.app.discovery.LatestForecast(".")
	if err != nil {
		return err
	}
	if err := s.app.validator.ValidateWorkbook(file.Path); err != nil {
		return err
	}
	slog.InfoContext(ctx, "selected forecast workbook",
		slog.String("path", file.Path),
		slog.Time("modified", file.ModTime))
	state.Set(stateForecastFile, file)
	return nil
}

// processStep runs the reshaping and rollup pipeline.
type processStep struct {
	app    *App
	window domain.Window
}

func (s *processStep) ID() string   { return "process" }
func (s *processStep) Name() string { return "Process forecast data" }

func (s *processStep) Execute(ctx context.Context, state *operations.State) error {
	v, ok := state.Get(stateForecastFile)
	if !ok {
		return apperrors.NewNotFoundError("forecast file in run state")
	}
	file := v.(files.FileInfo)

	result, err := dataprocessing.Process(file.Path, s.app.cfg, s.window)
	if err != nil {
		return err
	}
	state.Set(stateResult, result)
	return nil
}

// distributeStep exports the workbooks and sends the emails.
type distributeStep struct {
	app     *App
	window  domain.Window
	ts      time.Time
	summary *Summary
}

func (s *distributeStep) ID() string   { return "distribute" }
func (s *distributeStep) Name() string { return "Export and distribute reports" }

func (s *distributeStep) Execute(ctx context.Context, state *operations.State) error {
	v, ok := state.Get(stateResult)
	if !ok {
		return apperrors.NewNotFoundError("pipeline result in run state")
	}
	result := v.(*dataprocessing.Result)

	if err := s.app.validator.ValidateReportsDirectory(s.app.cfg.Paths.ReportsDir); err != nil {
		return err
	}

	names := s.app.cfg.ActiveSalespeople()

	var mu sync.Mutex
	var sent int
	var created []string

	// Each salesperson's report is independent and reads the shared
	// pivot without writing, so the fan-out is safe.
	g, gctx := errgroup.WithContext(ctx)
	for _, name := range names {
		name := name
		g.Go(func() error {
			path, err := s.app.excel.WriteSalespersonReport(name, result.Pivot, result.Budget, s.ts)
			if err != nil {
				return err
			}

			stats := statsFor(result.Company, name)
			html, err := s.app.renderer.RenderSalesReport(stats, s.window)
			if err != nil {
				return err
			}

			recipients := s.app.cfg.RecipientsFor(name)
			if err := s.app.mailer.SendSalespersonReport(gctx, name, recipients, html, path, s.window.CurrentYear); err != nil {
				return err
			}

			mu.Lock()
			created = append(created, path)
			if !s.app.cfg.Email.Disabled {
				sent++
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Strings(created)
	s.summary.FilesCreated = append(s.summary.FilesCreated, created...)
	s.summary.EmailsSent += sent

	// archival CSV copies alongside the workbooks
	stamp := s.ts.Format(config.ReportTimestampForm)
	pivotCSV := fmt.Sprintf("pivot-%s.csv", stamp)
	if err := s.app.csv.WritePivotCSV(pivotCSV, result.Pivot); err != nil {
		return err
	}
	budgetCSV := fmt.Sprintf("budget-%s.csv", stamp)
	if err := s.app.csv.WriteBudgetCSV(budgetCSV, result.Budget); err != nil {
		return err
	}
	s.summary.FilesCreated = append(s.summary.FilesCreated, pivotCSV, budgetCSV)

	if len(s.app.cfg.Email.ManagementRecipients) > 0 {
		html, err := s.app.renderer.RenderManagementReport(result.Company, s.window, s.ts)
		if err != nil {
			return err
		}
		if err := s.app.mailer.SendManagementReport(ctx, s.app.cfg.Email.ManagementRecipients, html, s.app.cfg.Paths.LogoFile, s.ts); err != nil {
			return err
		}
		if !s.app.cfg.Email.Disabled {
			s.summary.EmailsSent++
		}
	} else {
		slog.InfoContext(ctx, "no management recipients configured, skipping rollup email")
	}

	return nil
}

// statsFor returns the per-salesperson rollup already computed inside
// the company stats.
func statsFor(company domain.CompanyStats, name string) domain.SalespersonStats {
	for _, sp := range company.Salespeople {
		if sp.Name == name {
			return sp
		}
	}
	return domain.SalespersonStats{Name: name}
}

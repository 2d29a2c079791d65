package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Email   EmailConfig   `yaml:"email" envconfig:"EMAIL"`

	// AccountExecutives maps salesperson name to their enabled flag,
	// quarterly budgets and recipients. Names must match the AE1 column
	// of the forecast workbook.
	AccountExecutives map[string]AccountExecutive `yaml:"account_executives"`

	// TestMode redirects every outgoing email to TestEmail.
	TestMode  bool   `yaml:"test_mode" envconfig:"TEST_MODE"`
	TestEmail string `yaml:"test_email" envconfig:"TEST_EMAIL"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	RootDir     string `yaml:"root_dir" envconfig:"ROOT_DIR" validate:"required"`
	ForecastDir string `yaml:"forecast_dir" envconfig:"FORECAST_DIR"`
	ReportsDir  string `yaml:"reports_dir" envconfig:"REPORTS_DIR"`
	LogsDir     string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
	LogoFile    string `yaml:"logo_file" envconfig:"LOGO_FILE"`

	// ReportRetention controls how long generated workbooks are kept
	// before a run sweeps them away. Zero disables cleanup.
	ReportRetention time.Duration `yaml:"report_retention" envconfig:"REPORT_RETENTION" default:"720h"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// EmailConfig contains SMTP transport configuration. The password comes
// from the environment only; it has no yaml tag on purpose.
type EmailConfig struct {
	Host                 string        `yaml:"host" envconfig:"HOST"`
	Port                 int           `yaml:"port" envconfig:"PORT" default:"587"`
	Username             string        `yaml:"username" envconfig:"USERNAME"`
	Password             string        `yaml:"-" envconfig:"PASSWORD"`
	Sender               string        `yaml:"sender" envconfig:"SENDER" validate:"omitempty,email"`
	ManagementRecipients []string      `yaml:"management_recipients" envconfig:"MANAGEMENT_RECIPIENTS"`
	SendTimeout          time.Duration `yaml:"send_timeout" envconfig:"SEND_TIMEOUT" default:"30s"`
	SendInterval         time.Duration `yaml:"send_interval" envconfig:"SEND_INTERVAL" default:"500ms"`
	Disabled             bool          `yaml:"disabled" envconfig:"DISABLED"`
}

// AccountExecutive represents one salesperson's configuration
type AccountExecutive struct {
	Enabled bool `yaml:"enabled"`

	// Budgets holds the four quarterly targets in Q1..Q4 order.
	Budgets [4]float64 `yaml:"budgets"`

	// Recipients for this salesperson's report email. May also be
	// supplied via SALES_AE_EMAILS_<NAME> environment variables.
	Recipients []string `yaml:"recipients"`
}

// AnnualBudget sums the four quarterly targets.
func (ae AccountExecutive) AnnualBudget() float64 {
	return ae.Budgets[0] + ae.Budgets[1] + ae.Budgets[2] + ae.Budgets[3]
}

// Load loads configuration from the YAML file at path, then applies
// environment variable overrides (prefix SALES) and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := envconfig.Process("SALES", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.loadRecipientOverrides()
	cfg.resolvePaths()

	if cfg.TestMode {
		cfg.applyTestMode()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			ReportRetention: DefaultReportRetention,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
			Output: "both",
		},
		Email: EmailConfig{
			Port:         DefaultSMTPPort,
			SendTimeout:  DefaultSendTimeout,
			SendInterval: DefaultSendInterval,
		},
	}
}

// ActiveSalespeople returns the enabled salesperson names, sorted for
// deterministic iteration.
func (c *Config) ActiveSalespeople() []string {
	var names []string
	for name, ae := range c.AccountExecutives {
		if ae.Enabled {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// RecipientsFor returns the recipient list for a salesperson's report.
func (c *Config) RecipientsFor(salesperson string) []string {
	ae, ok := c.AccountExecutives[salesperson]
	if !ok {
		return nil
	}
	return ae.Recipients
}

// GetForecastDir returns the resolved forecast directory.
func (c *Config) GetForecastDir() string { return c.Paths.ForecastDir }

// GetReportsDir returns the resolved reports directory.
func (c *Config) GetReportsDir() string { return c.Paths.ReportsDir }

// GetLogsDir returns the resolved logs directory.
func (c *Config) GetLogsDir() string { return c.Paths.LogsDir }

// EnsureDirectories creates the output directories if missing. The
// forecast directory is input and must already exist.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.ReportsDir, c.Paths.LogsDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	if len(c.AccountExecutives) == 0 {
		return fmt.Errorf("no account executives configured")
	}
	active := c.ActiveSalespeople()
	if len(active) == 0 {
		return fmt.Errorf("no enabled account executives found")
	}

	for name, ae := range c.AccountExecutives {
		for _, q := range ae.Budgets {
			if q < 0 {
				return fmt.Errorf("negative budget configured for %s", name)
			}
		}
	}

	if c.Email.Disabled {
		return nil
	}

	if c.Email.Sender == "" || !strings.Contains(c.Email.Sender, "@") {
		return fmt.Errorf("invalid sender email: %q", c.Email.Sender)
	}

	if c.TestMode {
		if c.TestEmail == "" || !strings.Contains(c.TestEmail, "@") {
			return fmt.Errorf("test mode enabled but test email is invalid: %q", c.TestEmail)
		}
		return nil
	}

	if len(c.Email.ManagementRecipients) == 0 {
		return fmt.Errorf("no management recipients specified")
	}
	for _, email := range c.Email.ManagementRecipients {
		if !strings.Contains(email, "@") {
			return fmt.Errorf("invalid management email address: %q", email)
		}
	}
	for _, name := range active {
		recipients := c.RecipientsFor(name)
		if len(recipients) == 0 {
			return fmt.Errorf("no email recipients specified for %s", name)
		}
		for _, email := range recipients {
			if !strings.Contains(email, "@") {
				return fmt.Errorf("invalid email address for %s: %q", name, email)
			}
		}
	}

	return nil
}

// loadRecipientOverrides merges per-salesperson recipient lists from
// SALES_AE_EMAILS_<NAME> environment variables (comma separated), where
// <NAME> is the upper-cased salesperson name with spaces as underscores.
func (c *Config) loadRecipientOverrides() {
	for name, ae := range c.AccountExecutives {
		envKey := "SALES_AE_EMAILS_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
		raw := os.Getenv(envKey)
		if raw == "" {
			continue
		}
		var recipients []string
		for _, email := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(email); trimmed != "" {
				recipients = append(recipients, trimmed)
			}
		}
		ae.Recipients = recipients
		c.AccountExecutives[name] = ae
	}
}

// applyTestMode redirects every recipient list to the single test address.
func (c *Config) applyTestMode() {
	if c.TestEmail == "" {
		return
	}
	c.Email.ManagementRecipients = []string{c.TestEmail}
	for name, ae := range c.AccountExecutives {
		ae.Recipients = []string{c.TestEmail}
		c.AccountExecutives[name] = ae
	}
}

// resolvePaths fills the derived directories from the root path when they
// were not configured explicitly.
func (c *Config) resolvePaths() {
	if c.Paths.RootDir == "" {
		return
	}
	if c.Paths.ForecastDir == "" {
		c.Paths.ForecastDir = filepath.Join(c.Paths.RootDir, DefaultForecastDir)
	}
	if c.Paths.ReportsDir == "" {
		c.Paths.ReportsDir = filepath.Join(c.Paths.RootDir, DefaultReportsDir)
	}
	if c.Paths.LogsDir == "" {
		c.Paths.LogsDir = filepath.Join(c.Paths.ReportsDir, DefaultLogsDir)
	}
	if c.Logging.FilePath == "" {
		mode := "prod"
		if c.TestMode {
			mode = "test"
		}
		c.Logging.FilePath = filepath.Join(c.Paths.LogsDir,
			fmt.Sprintf("sales_report_%s_%s.log", mode, time.Now().Format("20060102_150405")))
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Supported diary store drivers.
const (
	DriverMongoDB = "mongodb"
	DriverSQLite  = "sqlite"
)

// Config represents the full application configuration surface.
type Config struct {
	Server      ServerConfig
	Nutritionix NutritionixConfig
	ExerciseDB  ExerciseDBConfig
	Database    DatabaseConfig
	Sheets      SheetsConfig
	Export      ExportConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Env  string `envconfig:"APP_ENV" default:"production"`
	Port string `envconfig:"PORT" default:"8000"`
}

// NutritionixConfig holds credentials for the natural language nutrition lookup.
type NutritionixConfig struct {
	AppID   string        `envconfig:"NUTRITIONIX_APP_ID"`
	APIKey  string        `envconfig:"NUTRITIONIX_API_KEY"`
	BaseURL string        `envconfig:"NUTRITIONIX_BASE_URL" default:"https://trackapi.nutritionix.com"`
	Timeout time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"10s"`
}

// Enabled reports whether both credentials are present.
func (c NutritionixConfig) Enabled() bool {
	return c.AppID != "" && c.APIKey != ""
}

// ExerciseDBConfig holds the RapidAPI key for ExerciseDB.
type ExerciseDBConfig struct {
	APIKey  string        `envconfig:"RAPIDAPI_KEY"`
	BaseURL string        `envconfig:"EXERCISEDB_BASE_URL" default:"https://exercisedb.p.rapidapi.com"`
	Host    string        `envconfig:"EXERCISEDB_HOST" default:"exercisedb.p.rapidapi.com"`
	Timeout time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"10s"`
}

// Enabled reports whether the RapidAPI key is present.
func (c ExerciseDBConfig) Enabled() bool {
	return c.APIKey != ""
}

// DatabaseConfig selects and addresses the diary store.
type DatabaseConfig struct {
	Driver     string `envconfig:"DATABASE_DRIVER" default:"mongodb"`
	URL        string `envconfig:"DATABASE_URL"`
	Name       string `envconfig:"DATABASE_NAME" default:"fittrack"`
	SQLitePath string `envconfig:"SQLITE_PATH"`
}

// Configured reports whether enough settings exist to open a store.
func (c DatabaseConfig) Configured() bool {
	switch c.Driver {
	case DriverSQLite:
		return c.SQLitePath != ""
	default:
		return c.URL != ""
	}
}

// SheetsConfig contains configuration required to interact with Google Sheets.
type SheetsConfig struct {
	CredentialsPath string `envconfig:"GOOGLE_SHEETS_CREDENTIALS_PATH"`
	SpreadsheetID   string `envconfig:"GOOGLE_SHEET_DATABASE_ID"`
}

// Enabled reports whether the summary export can reach a spreadsheet.
func (c SheetsConfig) Enabled() bool {
	return c.CredentialsPath != "" && c.SpreadsheetID != ""
}

// ExportConfig holds scheduler-related settings.
type ExportConfig struct {
	CronSchedule string `envconfig:"EXPORT_CRON_SCHEDULE" default:"5 0 * * *"`
	Timezone     string `envconfig:"TIMEZONE" default:"UTC"`
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from the
		// environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{}
	sections := []any{&cfg.Server, &cfg.Nutritionix, &cfg.ExerciseDB, &cfg.Database, &cfg.Sheets, &cfg.Export}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("process environment: %w", err)
		}
	}

	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated. Provider
// credentials and the database URL are optional: their absence switches the
// matching component to its fallback.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("PORT must be provided")
	}

	switch c.Database.Driver {
	case DriverMongoDB, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}

	if c.Database.Driver == DriverMongoDB && c.Database.Name == "" {
		return errors.New("DATABASE_NAME must not be empty")
	}

	if c.Nutritionix.Timeout <= 0 || c.ExerciseDB.Timeout <= 0 {
		return errors.New("PROVIDER_TIMEOUT must be positive")
	}

	if c.Export.CronSchedule == "" {
		return errors.New("EXPORT_CRON_SCHEDULE must be provided")
	}

	if _, err := time.LoadLocation(c.Export.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Export.Timezone, err)
	}

	return nil
}

// IsDevelopment reports whether the service runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

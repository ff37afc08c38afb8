package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Catalog   CatalogConfig
	Reporting ReportingConfig
	MongoDB   MongoDBConfig
	Sheets    SheetsConfig
	Kafka     KafkaConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// LogConfig tunes the zap logger.
type LogConfig struct {
	Level       string
	Development bool
}

// CatalogConfig points at the REST catalog store.
type CatalogConfig struct {
	BaseURL string
	Timeout time.Duration
	// Locale drives the collation used when ordering products by name.
	Locale string
}

// ReportingConfig holds scheduler-related settings.
type ReportingConfig struct {
	CronSchedule string
	Timezone     string
}

// MongoDBConfig holds settings for the statistics history store. An empty URI
// disables history.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// Enabled reports whether a MongoDB connection should be opened.
func (c MongoDBConfig) Enabled() bool { return c.URI != "" }

// SheetsConfig contains configuration required to export statistics to Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// Enabled reports whether the spreadsheet export is configured.
func (c SheetsConfig) Enabled() bool { return c.CredentialsPath != "" && c.SpreadsheetID != "" }

// KafkaConfig configures the stock event publisher. No brokers means events are dropped.
type KafkaConfig struct {
	Brokers    []string
	StockTopic string
}

// Enabled reports whether stock events should be published.
func (c KafkaConfig) Enabled() bool { return len(c.Brokers) > 0 }

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
		// missing .env is fine, the environment may carry everything
		_ = godotenv.Load()
	}

	timeout, err := time.ParseDuration(getenvWithDefault("CATALOG_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("parse CATALOG_TIMEOUT: %w", err)
	}

	development, err := strconv.ParseBool(getenvWithDefault("LOG_DEVELOPMENT", "false"))
	if err != nil {
		return nil, fmt.Errorf("parse LOG_DEVELOPMENT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Log: LogConfig{
			Level:       getenvWithDefault("LOG_LEVEL", "info"),
			Development: development,
		},
		Catalog: CatalogConfig{
			BaseURL: getenvWithDefault("CATALOG_BASE_URL", "http://localhost:3000"),
			Timeout: timeout,
			Locale:  getenvWithDefault("CATALOG_LOCALE", "fr"),
		},
		Reporting: ReportingConfig{
			CronSchedule: getenvWithDefault("STATS_CRON_SCHEDULE", "0 * * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Africa/Casablanca"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "depotsmart"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
		},
		Kafka: KafkaConfig{
			Brokers:    splitList(os.Getenv("KAFKA_BROKERS")),
			StockTopic: getenvWithDefault("KAFKA_STOCK_TOPIC", "stock-updates"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Catalog.BaseURL == "" {
		return errors.New("CATALOG_BASE_URL must not be empty")
	}
	if !strings.HasPrefix(c.Catalog.BaseURL, "http://") && !strings.HasPrefix(c.Catalog.BaseURL, "https://") {
		return fmt.Errorf("CATALOG_BASE_URL %q must be an http(s) URL", c.Catalog.BaseURL)
	}
	if c.Catalog.Timeout <= 0 {
		return errors.New("CATALOG_TIMEOUT must be positive")
	}

	if c.Reporting.CronSchedule == "" {
		return errors.New("STATS_CRON_SCHEDULE must be provided")
	}
	if c.Reporting.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	if c.MongoDB.Enabled() && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided when MONGODB_URI is set")
	}

	// the sheets pair is all-or-nothing
	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and GOOGLE_SHEET_DATABASE_ID must be provided together")
	}

	if c.Kafka.Enabled() && c.Kafka.StockTopic == "" {
		return errors.New("KAFKA_STOCK_TOPIC must be provided when KAFKA_BROKERS is set")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"ordersync/internal/application"
)

const (
	DefaultTimeout         = 30 * time.Second
	DefaultCredentialsFile = "credentials.json"
	DefaultPushgatewayJob  = "ordersync"
)

// SourceConfig holds the connection parameters for one order data source.
type SourceConfig struct {
	Driver   string // "postgres" or "sqlite"
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Path     string // sqlite database file
	Label    string // human name for logs and errors
}

// SheetConfig selects and configures the spreadsheet backend.
type SheetConfig struct {
	Backend         string // "google" or "xlsx"
	SpreadsheetID   string
	CredentialsFile string
	SheetName       string // empty means first sheet
	XLSXPath        string
}

// Config is the explicit configuration value object built once at process
// start. No component reads the environment directly.
type Config struct {
	SourceA        SourceConfig
	SourceB        SourceConfig
	Sheet          SheetConfig
	Timeout        time.Duration
	PushgatewayURL string
	PushgatewayJob string
}

// Load reads .env (if present) and the environment, collecting every
// missing or unusable variable into a single ConfigError.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var missing, invalid []string

	cfg := &Config{
		SourceA: loadSource("SOURCE_A_DB", "source-a", &missing, &invalid),
		SourceB: loadSource("SOURCE_B_DB", "source-b", &missing, &invalid),
		Sheet:   loadSheet(&missing, &invalid),
		Timeout: DefaultTimeout,
	}

	if v := os.Getenv("SYNC_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			invalid = append(invalid, fmt.Sprintf("SYNC_TIMEOUT=%q", v))
		} else {
			cfg.Timeout = d
		}
	}

	cfg.PushgatewayURL = os.Getenv("PUSHGATEWAY_URL")
	cfg.PushgatewayJob = getenvDefault("PUSHGATEWAY_JOB", DefaultPushgatewayJob)

	if len(missing) > 0 || len(invalid) > 0 {
		return nil, &application.ConfigError{Missing: missing, Invalid: invalid}
	}

	return cfg, nil
}

func loadSource(prefix, defaultLabel string, missing, invalid *[]string) SourceConfig {
	cfg := SourceConfig{
		Driver: getenvDefault(prefix+"_DRIVER", "postgres"),
		Label:  getenvDefault(prefix+"_LABEL", defaultLabel),
	}

	switch cfg.Driver {
	case "sqlite":
		cfg.Path = require(prefix+"_PATH", missing)
	case "postgres":
		cfg.Host = require(prefix+"_ADDRESS", missing)
		cfg.Database = require(prefix+"_DATABASE", missing)
		cfg.Username = require(prefix+"_USERNAME", missing)
		cfg.Password = require(prefix+"_PASSWORD", missing)
		cfg.Port = 5432
		if v := os.Getenv(prefix + "_PORT"); v != "" {
			port, err := strconv.Atoi(v)
			if err != nil || port <= 0 || port > 65535 {
				*invalid = append(*invalid, fmt.Sprintf("%s_PORT=%q", prefix, v))
			} else {
				cfg.Port = port
			}
		}
	default:
		*invalid = append(*invalid, fmt.Sprintf("%s_DRIVER=%q", prefix, cfg.Driver))
	}

	return cfg
}

func loadSheet(missing, invalid *[]string) SheetConfig {
	cfg := SheetConfig{
		Backend:   getenvDefault("SHEET_BACKEND", "google"),
		SheetName: os.Getenv("SHEET_NAME"),
	}

	switch cfg.Backend {
	case "google":
		cfg.SpreadsheetID = require("GOOGLE_SHEET_ID", missing)
		cfg.CredentialsFile = getenvDefault("GOOGLE_CREDENTIALS_FILE", DefaultCredentialsFile)
	case "xlsx":
		cfg.XLSXPath = require("XLSX_PATH", missing)
	default:
		*invalid = append(*invalid, fmt.Sprintf("SHEET_BACKEND=%q", cfg.Backend))
	}

	return cfg
}

func require(key string, missing *[]string) string {
	v := os.Getenv(key)
	if v == "" {
		*missing = append(*missing, key)
	}
	return v
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

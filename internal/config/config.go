package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Storage modes.
const (
	StorageModePostgres = "postgres"
	StorageModeMemory   = "memory"
)

// Config is the full service configuration, loaded from a TOML file.
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Storage  Storage  `toml:"storage"`
	Logs     Logs     `toml:"logs"`
	Metrics  Metrics  `toml:"metrics"`
	Identity Identity `toml:"identity"`
	Payments Payments `toml:"payments"`
	Mail     Mail     `toml:"mail"`
}

// Server holds the HTTP server settings. Timeouts are in seconds.
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database holds the PostgreSQL connection settings.
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the lib/pq connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Storage selects the persistence backend. The in-memory mode serves demos
// and local development without a database.
type Storage struct {
	Mode string `toml:"mode"` // "postgres" or "memory"
}

// Logs holds the logger settings.
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics holds the Prometheus settings.
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Identity holds the identity-provider client settings.
type Identity struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// Payments holds the payment-provider client settings.
type Payments struct {
	URL           string `toml:"url"`
	Timeout       int    `toml:"timeout"` // seconds
	WebhookSecret string `toml:"webhook_secret"`
}

// Mail holds the mail-delivery client settings.
type Mail struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort == 0 {
		return fmt.Errorf("server.http_port is required")
	}

	switch c.Storage.Mode {
	case StorageModePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("database.host and database.dbname are required in postgres mode")
		}
	case StorageModeMemory:
	case "":
		c.Storage.Mode = StorageModePostgres
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("database.host and database.dbname are required in postgres mode")
		}
	default:
		return fmt.Errorf("storage.mode must be %q or %q, got %q", StorageModePostgres, StorageModeMemory, c.Storage.Mode)
	}

	if c.Payments.WebhookSecret == "" {
		return fmt.Errorf("payments.webhook_secret is required")
	}

	return nil
}

package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/ardanlabs/conf"
)

// Namespace prefixes every database setting: Host is read from DB_HOST, and so on.
const Namespace = "DB"

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// ErrHelpWanted is returned by Load when --help or -h was passed.
var ErrHelpWanted = conf.ErrHelpWanted

// Database holds the connection parameters of the checked database.
type Database struct {
	Driver   string `conf:"default:mysql,help:database driver (mysql or postgres)"`
	Host     string `conf:"help:database host"`
	Port     int    `conf:"help:database port (0 selects the driver default)"`
	User     string `conf:"help:database user"`
	Password string `conf:"noprint,help:database password"`
	Name     string `conf:"help:database name"`
}

// Config is the process configuration, loaded once at startup.
type Config struct {
	DB          Database
	Host        string
	Port        string
	Debug       bool
	Environment string
}

// Get returns the environment value for key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the database settings (env DB_* or flags) and the web settings.
// It fails when a required database setting is missing.
func Load(args []string) (Config, error) {
	var cfg Config

	if err := conf.Parse(args, Namespace, &cfg.DB); err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("load config: parse database settings: %w", err)
	}

	cfg.DB.Driver = strings.ToLower(strings.TrimSpace(cfg.DB.Driver))
	if cfg.DB.Driver == "" {
		cfg.DB.Driver = DriverMySQL
	}
	cfg.DB.Host = strings.TrimSpace(cfg.DB.Host)
	cfg.DB.User = strings.TrimSpace(cfg.DB.User)
	cfg.DB.Name = strings.TrimSpace(cfg.DB.Name)

	if err := cfg.DB.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	cfg.Host = Get("HOST", "0.0.0.0")
	cfg.Port = Get("PORT", "5000")
	cfg.Environment = Get("ENVIRONMENT", "development")

	debug, err := strconv.ParseBool(Get("DEBUG", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: DEBUG must be a boolean: %w", err)
	}
	cfg.Debug = debug

	return cfg, nil
}

// Validate reports the first missing or invalid database setting.
func (d Database) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"HOST", d.Host},
		{"USER", d.User},
		{"NAME", d.Name},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s_%s is required", Namespace, r.key)
		}
	}

	switch d.Driver {
	case DriverMySQL, DriverPostgres:
	default:
		return fmt.Errorf("%s_DRIVER %q is not supported (use %s or %s)", Namespace, d.Driver, DriverMySQL, DriverPostgres)
	}

	if d.Port < 0 || d.Port > 65535 {
		return fmt.Errorf("%s_PORT %d is out of range", Namespace, d.Port)
	}

	return nil
}

// EffectivePort returns the configured port, or the driver's well-known port.
func (d Database) EffectivePort() int {
	if d.Port != 0 {
		return d.Port
	}
	if d.Driver == DriverPostgres {
		return 5432
	}
	return 3306
}

// Address is host:port of the database server.
func (d Database) Address() string {
	return net.JoinHostPort(d.Host, strconv.Itoa(d.EffectivePort()))
}

// Addr is the HTTP listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Usage renders the database settings help text.
func Usage() string {
	var db Database
	usage, err := conf.Usage(Namespace, &db)
	if err != nil {
		return fmt.Sprintf("usage unavailable: %v", err)
	}
	return usage
}

// String renders the database settings without the password.
func (d Database) String() string {
	out, err := conf.String(&d)
	if err != nil {
		return fmt.Sprintf("driver=%s addr=%s user=%s name=%s", d.Driver, d.Address(), d.User, d.Name)
	}
	return out
}

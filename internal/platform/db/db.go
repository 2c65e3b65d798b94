package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"connectivity-check-service/internal/config"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DriverName maps a configured driver to the name registered with database/sql.
func DriverName(driver string) (string, error) {
	switch driver {
	case config.DriverMySQL:
		return "mysql", nil
	case config.DriverPostgres:
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// DSN builds the driver specific data source name for d.
func DSN(d config.Database) (string, error) {
	switch d.Driver {
	case config.DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = d.User
		mc.Passwd = d.Password
		mc.Net = "tcp"
		mc.Addr = d.Address()
		mc.DBName = d.Name
		mc.ParseTime = true
		return mc.FormatDSN(), nil
	case config.DriverPostgres:
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(d.User, d.Password),
			Host:   d.Address(),
			Path:   "/" + d.Name,
		}
		return u.String(), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", d.Driver)
	}
}

// Open returns a handle bound to a single dedicated connection and verifies it.
// Callers own the handle and must Close it; nothing is shared between calls.
func Open(ctx context.Context, d config.Database) (*sql.DB, error) {
	name, err := DriverName(d.Driver)
	if err != nil {
		return nil, fmt.Errorf("openDB: %w", err)
	}

	dsn, err := DSN(d)
	if err != nil {
		return nil, fmt.Errorf("openDB: %w", err)
	}

	return openWith(ctx, name, dsn)
}

func openWith(ctx context.Context, driverName, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("openDB: open %s database: %w", driverName, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("openDB: verify %s connection: %w", driverName, err)
	}

	return db, nil
}

package sqlclock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"connectivity-check-service/internal/config"
	"connectivity-check-service/internal/platform/db"
	"connectivity-check-service/internal/platform/obs"
)

// NowQuery is the liveness query sent to the database.
const NowQuery = "SELECT NOW()"

// Opener returns a verified handle owning one dedicated connection.
type Opener func(ctx context.Context, d config.Database) (*sql.DB, error)

// SQLClock asks a SQL database for its current time over a fresh connection per call.
type SQLClock struct {
	cfg  config.Database
	open Opener
}

func NewSQLClock(cfg config.Database) *SQLClock {
	return &SQLClock{cfg: cfg, open: db.Open}
}

// NewSQLClockWithOpener is NewSQLClock with a custom way of acquiring connections.
func NewSQLClockWithOpener(cfg config.Database, open Opener) *SQLClock {
	return &SQLClock{cfg: cfg, open: open}
}

// Now connects, runs NowQuery and reads the first column of the first row.
// The connection is closed before returning on every path.
func (c *SQLClock) Now(ctx context.Context) (_ time.Time, err error) {
	defer obs.Time(ctx, "db.now")(&err)

	if c.open == nil {
		return time.Time{}, errors.New("sql clock: opener is nil")
	}

	conn, err := c.connect(ctx)
	if err != nil {
		return time.Time{}, err
	}
	defer conn.Close() //nolint:errcheck // the result is already decided

	return c.query(ctx, conn)
}

func (c *SQLClock) connect(ctx context.Context) (_ *sql.DB, err error) {
	defer obs.Time(ctx, "db.connect")(&err)

	conn, err := c.open(ctx, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("sql clock: connect to %s: %w", c.cfg.Address(), err)
	}
	return conn, nil
}

func (c *SQLClock) query(ctx context.Context, conn *sql.DB) (_ time.Time, err error) {
	defer obs.Time(ctx, "db.query")(&err)

	var ts time.Time
	if err := conn.QueryRowContext(ctx, NowQuery).Scan(&ts); err != nil {
		return time.Time{}, fmt.Errorf("sql clock: %s: %w", NowQuery, err)
	}
	return ts, nil
}

package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

// driver level sentinel errors that mean "the database could not be reached or queried"
var driverSentinels = []error{
	driver.ErrBadConn,
	sql.ErrConnDone,
	sql.ErrNoRows,
	mysql.ErrInvalidConn,
	mysql.ErrMalformPkt,
	mysql.ErrNoTLS,
	mysql.ErrCleartextPassword,
	mysql.ErrNativePassword,
	mysql.ErrOldPassword,
	mysql.ErrUnknownPlugin,
	mysql.ErrOldProtocol,
	mysql.ErrPktSync,
	mysql.ErrPktSyncMul,
	mysql.ErrPktTooLarge,
	mysql.ErrBusyBuffer,
}

// DriverMessage returns the message of the database driver error carried by err.
// It reports false for context cancellation/deadline and for anything that did
// not originate in the driver or the network below it.
func DriverMessage(err error) (string, bool) {
	found := driverError(err)
	if found == nil {
		return "", false
	}
	return found.Error(), true
}

// IsDriverError reports whether err belongs to the database driver error kind.
func IsDriverError(err error) bool {
	return driverError(err) != nil
}

func driverError(err error) error {
	if err == nil {
		return nil
	}

	// context errors satisfy net.Error, so they are ruled out first
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return connectErr
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr
	}

	for _, sentinel := range driverSentinels {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}

	return nil
}

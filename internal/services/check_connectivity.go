package services

import (
	"context"
	"errors"
	"fmt"

	"connectivity-check-service/internal/domain"
	"connectivity-check-service/internal/platform/db"
	"connectivity-check-service/internal/platform/obs"
	"connectivity-check-service/internal/ports"
)

// CheckConnectivity asks the database for its clock and turns the answer into a CheckResult.
//
// Database driver errors (refused, unreachable, access denied, query failure)
// become a Failure result with a nil error. Any other error is returned as is,
// so the caller can treat it as an unexpected server error.
func CheckConnectivity(ctx context.Context, clock ports.DatabaseClock) (_ domain.CheckResult, err error) {
	defer obs.Time(ctx, "connectivity.Check")(&err)

	if clock == nil {
		return domain.CheckResult{}, errors.New("check connectivity: clock is nil")
	}

	ts, err := clock.Now(ctx)
	if err != nil {
		if msg, ok := db.DriverMessage(err); ok {
			return domain.Failure(msg), nil
		}
		return domain.CheckResult{}, fmt.Errorf("check connectivity: %w", err)
	}

	return domain.Success(ts), nil
}

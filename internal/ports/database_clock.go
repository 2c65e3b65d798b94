package ports

import (
	"context"
	"time"
)

// Port: a boundary for asking the backing database for its current time.
type DatabaseClock interface {
	// Connect, run the liveness query and return the server time.
	// Implementations must release every resource they acquire before returning.
	Now(ctx context.Context) (time.Time, error)
}

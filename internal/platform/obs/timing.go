package obs

import (
	"context"
	"time"

	"connectivity-check-service/internal/platform/logger"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	reqID, _ := ctx.Value(RequestIDKey).(string)
	return reqID
}

// Time starts timing op and returns a func that logs its duration and error.
// Use it as: defer obs.Time(ctx, "db.ping")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"req_id": RequestID(ctx),
		"op":     name,
	})

	return func(errp *error) {
		dur := time.Since(start)
		entry := log.WithField("dur_ms", dur.Milliseconds())

		if errp != nil && *errp != nil {
			entry.WithError(*errp).Warn("op failed")
			return
		}
		entry.Debug("op done")
	}
}

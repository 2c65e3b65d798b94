package api

import (
	"context"
	"net/http"
	"time"

	"connectivity-check-service/internal/platform/logger"
	"connectivity-check-service/internal/platform/obs"

	"github.com/gofrs/uuid"
	"github.com/gorilla/handlers"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-Id"

// statusWriter captures the final HTTP status code and number of bytes written.
// This helps distinguish "handler returned 200" from "client received a response".
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Record implicit 200 responses when handlers write without calling WriteHeader.
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestIDMiddleware tags every request with a UUID and a request scoped logger.
func requestIDMiddleware(base logrus.FieldLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqUUID, err := uuid.NewV4()
		if err != nil {
			base.WithError(err).Error("can't generate a request UUID")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		reqID := reqUUID.String()

		reqLogger := base.WithFields(logrus.Fields{
			"req_id":    reqID,
			"remote_ip": r.RemoteAddr,
		})

		ctx := context.WithValue(r.Context(), obs.RequestIDKey, reqID)
		ctx = logger.WithContext(ctx, reqLogger)

		w.Header().Set(requestIDHeader, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware logs end-to-end request duration and response size for basic observability.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sw := &statusWriter{
			ResponseWriter: w,
			status:         0,
		}

		next.ServeHTTP(sw, r)

		logger.FromContext(r.Context()).WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.RequestURI(),
			"status": sw.status,
			"bytes":  sw.bytes,
			"dur_ms": time.Since(start).Milliseconds(),
		}).Info("request")
	})
}

// recoveryMiddleware turns a panic into a plain 500; debug prints the stack trace.
func recoveryMiddleware(base logrus.FieldLogger, debug bool, next http.Handler) http.Handler {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(base),
		handlers.PrintRecoveryStack(debug),
	)(next)
}

package api

import (
	"net/http"

	"connectivity-check-service/internal/api/handlers"
	"connectivity-check-service/internal/platform/logger"
	"connectivity-check-service/internal/ports"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// Options configure the router beyond its dependencies.
type Options struct {
	// Logger receives access and recovery logs.
	Logger logrus.FieldLogger

	// Debug prints stack traces of recovered panics.
	Debug bool
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(clock ports.DatabaseClock, opts Options) http.Handler {
	router := httprouter.New()
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	checkHandler := &handlers.CheckHandler{Clock: clock}

	router.HandlerFunc(http.MethodGet, "/", checkHandler.Check)
	router.HandlerFunc(http.MethodHead, "/", checkHandler.Check)

	base := opts.Logger
	if base == nil {
		base = logger.Default()
	}

	var h http.Handler = router
	h = recoveryMiddleware(base, opts.Debug, h)
	h = loggingMiddleware(h)
	h = requestIDMiddleware(base, h)

	return h
}

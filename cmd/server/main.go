package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"connectivity-check-service/internal/adapters/sqlclock"
	"connectivity-check-service/internal/api"
	"connectivity-check-service/internal/config"
	"connectivity-check-service/internal/platform/logger"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It loads configuration once, wires the SQL clock behind its port and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		logger.Default().Info("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, config.ErrHelpWanted) {
			fmt.Println(config.Usage())
			return
		}
		logger.Default().WithError(err).Fatal("invalid configuration")
	}

	log := logger.Configure(cfg.Environment, cfg.Debug)
	log.WithField("database", cfg.DB.Address()).
		WithField("driver", cfg.DB.Driver).
		Debugf("database settings:\n%s", cfg.DB)

	// One fresh connection per request; nothing is pooled across requests.
	clock := sqlclock.NewSQLClock(cfg.DB)
	router := api.NewRouter(clock, api.Options{Logger: log, Debug: cfg.Debug})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.WithField("addr", cfg.Addr()).WithField("debug", cfg.Debug).Info("Server listening")
	log.Fatal(srv.ListenAndServe())
}

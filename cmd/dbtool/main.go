package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"connectivity-check-service/internal/adapters/sqlclock"
	"connectivity-check-service/internal/config"
	"connectivity-check-service/internal/platform/logger"
	"connectivity-check-service/internal/ports"
	"connectivity-check-service/internal/services"

	"github.com/joho/godotenv"
)

// dbtool runs the connectivity check once and prints the same message the server would send.
func main() {
	if err := godotenv.Load(); err != nil {
		logger.Default().Debug("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, config.ErrHelpWanted) {
			fmt.Println(config.Usage())
			return
		}
		logger.Default().WithError(err).Fatal("invalid configuration")
	}
	logger.Configure(cfg.Environment, cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	code := run(ctx, sqlclock.NewSQLClock(cfg.DB), os.Stdout)
	stop()
	os.Exit(code)
}

// run performs one check and returns the process exit code.
func run(ctx context.Context, clock ports.DatabaseClock, out io.Writer) int {
	res, err := services.CheckConnectivity(ctx, clock)
	if err != nil {
		logger.FromContext(ctx).WithError(err).Error("connectivity check failed")
		return 2
	}

	fmt.Fprintln(out, res.Render())
	if !res.OK() {
		return 1
	}
	return 0
}

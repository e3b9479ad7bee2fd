package main

import (
	"context"
	"log/slog"
	"os"

	"event-bookings/cmd/bootstrap"
	"event-bookings/internal/infra/db"

	"go.uber.org/fx"
)

// warmConnection primes the connection cache in the background so the first
// real caller usually finds it established. A failure here is a warning, not
// a startup error: the cache retries on the next acquisition, and only a
// missing DATABASE_URL is fatal.
func warmConnection(lc fx.Lifecycle, lazy *db.LazyPool, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if _, err := lazy.Acquire(context.Background()); err != nil {
					logger.Warn("database warm-up failed; will retry on demand", "error", err)
					return
				}
				logger.Info("database connection established")
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Invoke(
			warmConnection,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application", "error", err)
		os.Exit(1)
	}

	slog.Info("application stopped")
}

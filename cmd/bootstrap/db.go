package bootstrap

import (
	"context"

	"event-bookings/internal/infra/db"
	"event-bookings/internal/pkg/config"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewLazyPool,
	),
)

// NewLazyPool provides the process-wide connection cache. The pool is
// established by the first caller, not here; shutdown closes whatever was
// established.
func NewLazyPool(lc fx.Lifecycle, cfg config.Config) *db.LazyPool {
	lazy := db.NewLazyPool(cfg.DB)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			lazy.Close()
			return nil
		},
	})

	return lazy
}

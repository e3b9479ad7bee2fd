package components

import (
	"event-bookings/internal/pkg/clock"
	"event-bookings/internal/usecase/commands"
	"event-bookings/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewBookingCommands,
		commands.NewEventCommands,
		queries.NewBookingQueries,
	),
)

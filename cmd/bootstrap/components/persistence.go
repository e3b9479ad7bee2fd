package components

import (
	"event-bookings/internal/infra/readstore"
	"event-bookings/internal/infra/repository"
	"event-bookings/internal/usecase/commands"
	"event-bookings/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Booking
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Event
		fx.Annotate(
			repository.NewEventRepository,
			fx.As(new(commands.EventRepository)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(commands.EventReadStore)),
		),
	),
)

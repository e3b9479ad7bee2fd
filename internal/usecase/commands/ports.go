package commands

import (
	"context"

	"event-bookings/internal/domain/booking"
	"event-bookings/internal/domain/event"
	"event-bookings/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side ports implemented by internal/infra.

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (int64, error)
}

type EventRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, e *event.Event) (uuid.UUID, error)
}

// EventReadStore is the reference probe used before a booking write commits.
type EventReadStore interface {
	Exists(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error)
}

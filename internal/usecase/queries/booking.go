package queries

import (
	"context"
	"time"

	"event-bookings/internal/infra"
	"event-bookings/internal/infra/db"
	"event-bookings/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingView struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingReadStore is implemented by the infra layer.
type BookingReadStore interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*BookingView, error)
	ListByEvent(ctx context.Context, dbtx db.DBTX, eventID uuid.UUID) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	db    *db.LazyPool
}

func NewBookingQueries(store BookingReadStore, pool *db.LazyPool) BookingQueries {
	return &bookingQueriesImpl{store: store, db: pool}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	pool, err := q.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	view, err := q.store.FindByID(ctx, pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*BookingView, error) {
	pool, err := q.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	views, err := q.store.ListByEvent(ctx, pool, eventID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

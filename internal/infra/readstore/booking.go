package readstore

import (
	"context"

	"event-bookings/internal/infra"
	"event-bookings/internal/infra/db"
	"event-bookings/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct{}

func NewBookingReadStore() *BookingReadStore {
	return &BookingReadStore{}
}

func (r *BookingReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.BookingView, error) {
	var view queries.BookingView
	err := dbtx.QueryRow(ctx,
		`SELECT id, event_id, email, created_at, updated_at
		 FROM bookings WHERE id = $1`,
		id,
	).Scan(&view.ID, &view.EventID, &view.Email, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return &view, nil
}

// ListByEvent is served by the idx_bookings_event_id index.
func (r *BookingReadStore) ListByEvent(ctx context.Context, dbtx db.DBTX, eventID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := dbtx.Query(ctx,
		`SELECT id, event_id, email, created_at, updated_at
		 FROM bookings
		 WHERE event_id = $1
		 ORDER BY created_at DESC, id DESC`,
		eventID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by event", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		var view queries.BookingView
		if err := rows.Scan(&view.ID, &view.EventID, &view.Email, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return views, nil
}

package repository

import (
	"context"

	"event-bookings/internal/domain/booking"
	"event-bookings/internal/infra"
	"event-bookings/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx,
		`INSERT INTO bookings (id, event_id, email, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		b.ID(), b.EventID(), b.Email().Value(), b.CreatedAt(), b.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) Update(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE bookings
		 SET event_id = $2, email = $3, updated_at = $4
		 WHERE id = $1`,
		b.ID(), b.EventID(), b.Email().Value(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := dbtx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete booking", err)
	}
	return tag.RowsAffected(), nil
}

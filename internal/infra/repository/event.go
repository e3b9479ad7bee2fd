package repository

import (
	"context"

	"event-bookings/internal/domain/event"
	"event-bookings/internal/infra"
	"event-bookings/internal/infra/db"

	"github.com/google/uuid"
)

type EventRepository struct{}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) Create(ctx context.Context, dbtx db.DBTX, e *event.Event) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx,
		`INSERT INTO events (id, name, starts_at, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		e.ID(), e.Name(), e.StartsAt(), e.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create event", err)
	}
	return id, nil
}

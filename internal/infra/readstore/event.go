package readstore

import (
	"context"

	"event-bookings/internal/infra"
	"event-bookings/internal/infra/db"

	"github.com/google/uuid"
)

type EventReadStore struct{}

func NewEventReadStore() *EventReadStore {
	return &EventReadStore{}
}

// Exists probes the referenced event without loading it.
func (r *EventReadStore) Exists(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check event existence", err)
	}
	return exists, nil
}

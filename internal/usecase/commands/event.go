package commands

import (
	"context"
	"time"

	"event-bookings/internal/domain/event"
	"event-bookings/internal/infra/db"
	"event-bookings/internal/pkg/clock"
	"event-bookings/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateEventCommand struct {
	Name     string
	StartsAt time.Time
}

type EventCommands interface {
	Create(ctx context.Context, cmd CreateEventCommand) (uuid.UUID, error)
}

type eventCommandsImpl struct {
	events EventRepository
	db     *db.LazyPool
	clock  clock.Clock
}

func NewEventCommands(events EventRepository, pool *db.LazyPool, clock clock.Clock) EventCommands {
	return &eventCommandsImpl{events: events, db: pool, clock: clock}
}

func (c *eventCommandsImpl) Create(ctx context.Context, cmd CreateEventCommand) (uuid.UUID, error) {
	pool, err := c.db.Acquire(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	e, err := event.NewEvent(uuid.Nil, cmd.Name, cmd.StartsAt, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := c.events.Create(ctx, pool, e)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

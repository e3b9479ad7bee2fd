package commands

import (
	"context"

	"event-bookings/internal/domain/booking"
	"event-bookings/internal/infra"
	"event-bookings/internal/infra/db"
	"event-bookings/internal/pkg/clock"
	"event-bookings/internal/pkg/errs"
	"event-bookings/internal/pkg/patch"
	"event-bookings/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingCommand struct {
	EventID uuid.UUID
	Email   string
}

type UpdateBookingCommand struct {
	EventID *uuid.UUID
	Email   *string
}

type BookingCommands interface {
	Create(ctx context.Context, cmd CreateBookingCommand) (*queries.BookingView, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateBookingCommand) (*queries.BookingView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookings BookingRepository
	events   EventReadStore
	reads    queries.BookingReadStore
	db       *db.LazyPool
	clock    clock.Clock
}

func NewBookingCommands(
	bookings BookingRepository,
	events EventReadStore,
	reads queries.BookingReadStore,
	pool *db.LazyPool,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings: bookings,
		events:   events,
		reads:    reads,
		db:       pool,
		clock:    clock,
	}
}

// Create validates the contact email (normalization included), then checks
// the event reference resolves, then writes. The email check always runs
// first: a malformed address aborts before any event lookup.
func (c *bookingCommandsImpl) Create(ctx context.Context, cmd CreateBookingCommand) (*queries.BookingView, error) {
	pool, err := c.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	b, err := booking.NewBooking(uuid.Nil, cmd.EventID, cmd.Email, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.ensureEventExists(ctx, pool, b.EventID()); err != nil {
		return nil, err
	}

	id, err := c.bookings.Create(ctx, pool, b)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.loadView(ctx, pool, id)
}

// Update re-validates the event reference only when the command supplies a
// reference that differs from the stored one. A stable reference was checked
// by the write that introduced it and is trusted here.
func (c *bookingCommandsImpl) Update(ctx context.Context, id uuid.UUID, cmd UpdateBookingCommand) (*queries.BookingView, error) {
	pool, err := c.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := c.reads.FindByID(ctx, pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	b := booking.Reconstruct(
		existing.ID,
		existing.EventID,
		booking.ReconstructEmail(existing.Email),
		existing.CreatedAt,
		existing.UpdatedAt,
	)
	now := c.clock.Now()

	if cmd.Email != nil {
		if err := b.ChangeEmail(*cmd.Email, now); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	if target := patch.Coalesce(cmd.EventID, b.EventID()); target != b.EventID() {
		if err := c.ensureEventExists(ctx, pool, target); err != nil {
			return nil, err
		}
		if err := b.ReassignEvent(target, now); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	if err := c.bookings.Update(ctx, pool, b); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.loadView(ctx, pool, id)
}

func (c *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	pool, err := c.db.Acquire(ctx)
	if err != nil {
		return err
	}

	deleted, err := c.bookings.Delete(ctx, pool, id)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if deleted == 0 {
		return errs.Mark(errs.Newf("booking %s does not exist", id), errs.ErrBookingNotFound)
	}
	return nil
}

func (c *bookingCommandsImpl) ensureEventExists(ctx context.Context, pool db.DBTX, eventID uuid.UUID) error {
	exists, err := c.events.Exists(ctx, pool, eventID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !exists {
		// The failure names the offending reference.
		return errs.Mark(errs.Newf("event %s does not exist", eventID), errs.ErrEventNotFound)
	}
	return nil
}

func (c *bookingCommandsImpl) loadView(ctx context.Context, pool db.DBTX, id uuid.UUID) (*queries.BookingView, error) {
	view, err := c.reads.FindByID(ctx, pool, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

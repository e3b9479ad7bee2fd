package builder

import (
	"time"

	"event-bookings/internal/domain/booking"
	"event-bookings/internal/usecase/commands"
	"event-bookings/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingBuilder assembles booking test data with sensible defaults.
type BookingBuilder struct {
	id      uuid.UUID
	eventID uuid.UUID
	email   string
	now     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		id:      uuid.New(),
		eventID: uuid.New(),
		email:   "attendee@example.com",
		now:     time.Now(),
	}
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.id = id
	return b
}

func (b *BookingBuilder) WithEventID(eventID uuid.UUID) *BookingBuilder {
	b.eventID = eventID
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.email = email
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.now = now
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.id, b.eventID, b.email, b.now)
}

func (b *BookingBuilder) BuildCreateCommand() commands.CreateBookingCommand {
	return commands.CreateBookingCommand{
		EventID: b.eventID,
		Email:   b.email,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        b.id,
		EventID:   b.eventID,
		Email:     b.email,
		CreatedAt: b.now,
		UpdatedAt: b.now,
	}
}

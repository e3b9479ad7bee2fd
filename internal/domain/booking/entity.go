package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking ties a contact email to an event. The event reference is foreign,
// not owned: whether it resolves to a real event is checked by the write
// path, not here.
type Booking struct {
	id        uuid.UUID
	eventID   uuid.UUID
	email     Email
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(id, eventID uuid.UUID, emailRaw string, now time.Time) (*Booking, error) {
	if eventID == uuid.Nil {
		return nil, ErrMissingEvent
	}

	email, err := NewEmail(emailRaw)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Booking{
		id:        id,
		eventID:   eventID,
		email:     email,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rehydrates a persisted booking without re-running validation.
func Reconstruct(id, eventID uuid.UUID, email Email, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:        id,
		eventID:   eventID,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ChangeEmail normalizes and validates the new address.
func (b *Booking) ChangeEmail(emailRaw string, now time.Time) error {
	email, err := NewEmail(emailRaw)
	if err != nil {
		return err
	}
	b.email = email
	b.updatedAt = now
	return nil
}

// ReassignEvent moves the booking to another event. Callers are responsible
// for verifying the new reference exists before persisting.
func (b *Booking) ReassignEvent(eventID uuid.UUID, now time.Time) error {
	if eventID == uuid.Nil {
		return ErrMissingEvent
	}
	b.eventID = eventID
	b.updatedAt = now
	return nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) EventID() uuid.UUID   { return b.eventID }
func (b *Booking) Email() Email         { return b.email }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

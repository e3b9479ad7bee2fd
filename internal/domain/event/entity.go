// Package event holds the referenced side of the booking relation. Bookings
// only need events to exist; the entity stays minimal.
package event

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("event name must not be empty")

type Event struct {
	id        uuid.UUID
	name      string
	startsAt  time.Time
	createdAt time.Time
}

func NewEvent(id uuid.UUID, name string, startsAt, now time.Time) (*Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Event{
		id:        id,
		name:      name,
		startsAt:  startsAt,
		createdAt: now,
	}, nil
}

func (e *Event) ID() uuid.UUID        { return e.id }
func (e *Event) Name() string         { return e.name }
func (e *Event) StartsAt() time.Time  { return e.startsAt }
func (e *Event) CreatedAt() time.Time { return e.createdAt }

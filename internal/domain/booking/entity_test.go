//go:build unit

package booking_test

import (
	"testing"
	"time"

	"event-bookings/internal/domain/booking"
	"event-bookings/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emailCase struct {
	name  string
	input string
	want  string
	errIs error
}

func TestNewBooking(t *testing.T) {
	now := time.Now()
	eventID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			WithEventID(eventID).
			WithEmail("User@Example.com").
			WithNow(now).
			BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, eventID, actual.EventID())
		assert.Equal(t, "user@example.com", actual.Email().Value())
		assert.Equal(t, now, actual.CreatedAt())
		assert.Equal(t, now, actual.UpdatedAt())
	})

	t.Run("missing event reference", func(t *testing.T) {
		_, err := booking.NewBooking(uuid.Nil, uuid.Nil, "a@b.co", now)
		assert.ErrorIs(t, err, booking.ErrMissingEvent)
	})

	t.Run("explicit id preserved", func(t *testing.T) {
		id := uuid.New()
		actual, err := booking.NewBooking(id, eventID, "a@b.co", now)
		require.NoError(t, err)
		assert.Equal(t, id, actual.ID())
	})

	t.Run("email validation", func(t *testing.T) {
		cases := []emailCase{
			{name: "plain address", input: "user@example.com", want: "user@example.com"},
			{name: "mixed case lowered", input: "User@Example.COM", want: "user@example.com"},
			{name: "surrounding whitespace trimmed", input: "  user@example.com  ", want: "user@example.com"},
			{name: "plus tag", input: "user+tag@example.com", want: "user+tag@example.com"},
			{name: "not an email", input: "not-an-email", errIs: booking.ErrInvalidEmail},
			{name: "missing domain", input: "user@", errIs: booking.ErrInvalidEmail},
			{name: "missing tld", input: "user@example", errIs: booking.ErrInvalidEmail},
			{name: "empty", input: "", errIs: booking.ErrInvalidEmail},
			{name: "whitespace only", input: "   ", errIs: booking.ErrInvalidEmail},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				actual, err := booking.NewBooking(uuid.Nil, eventID, tc.input, now)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tc.want, actual.Email().Value())
			})
		}
	})
}

func TestBooking_ChangeEmail(t *testing.T) {
	created := time.Now()
	later := created.Add(time.Hour)

	b, err := booking.NewBooking(uuid.Nil, uuid.New(), "old@example.com", created)
	require.NoError(t, err)

	t.Run("valid change bumps updatedAt", func(t *testing.T) {
		require.NoError(t, b.ChangeEmail("  New@Example.com ", later))
		assert.Equal(t, "new@example.com", b.Email().Value())
		assert.Equal(t, created, b.CreatedAt())
		assert.Equal(t, later, b.UpdatedAt())
	})

	t.Run("invalid change leaves state untouched", func(t *testing.T) {
		err := b.ChangeEmail("broken", later.Add(time.Hour))
		assert.ErrorIs(t, err, booking.ErrInvalidEmail)
		assert.Equal(t, "new@example.com", b.Email().Value())
		assert.Equal(t, later, b.UpdatedAt())
	})
}

func TestBooking_ReassignEvent(t *testing.T) {
	created := time.Now()
	later := created.Add(time.Minute)

	b, err := booking.NewBooking(uuid.Nil, uuid.New(), "user@example.com", created)
	require.NoError(t, err)

	next := uuid.New()
	require.NoError(t, b.ReassignEvent(next, later))
	assert.Equal(t, next, b.EventID())
	assert.Equal(t, later, b.UpdatedAt())

	assert.ErrorIs(t, b.ReassignEvent(uuid.Nil, later), booking.ErrMissingEvent)
	assert.Equal(t, next, b.EventID())
}

func TestReconstruct(t *testing.T) {
	id := uuid.New()
	eventID := uuid.New()
	created := time.Now().Add(-time.Hour)
	updated := time.Now()

	b := booking.Reconstruct(id, eventID, booking.ReconstructEmail("user@example.com"), created, updated)

	assert.Equal(t, id, b.ID())
	assert.Equal(t, eventID, b.EventID())
	assert.Equal(t, "user@example.com", b.Email().Value())
	assert.Equal(t, created, b.CreatedAt())
	assert.Equal(t, updated, b.UpdatedAt())
}

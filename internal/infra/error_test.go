//go:build unit

package infra_test

import (
	"testing"

	"event-bookings/internal/infra"
	"event-bookings/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Classification(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		explicit   []infra.RepositoryErrorKind
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:       "no rows becomes NOT_FOUND",
			err:        pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "unique violation becomes DUPLICATE_KEY",
			err:        &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "foreign key violation becomes FOREIGN_KEY_VIOLATED",
			err:        &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "anything else becomes DB_FAILURE",
			err:        errs.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "explicit kind wins over classification",
			err:        errs.New("row missing"),
			explicit:   []infra.RepositoryErrorKind{infra.KindNotFound},
			expectKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("repo failure", tc.err, tc.explicit...)
			assert.True(t, infra.IsKind(wrapped, tc.expectKind),
				"expected kind [%v] but got [%v]", tc.expectKind, wrapped)
			assert.ErrorIs(t, wrapped, tc.err)
		})
	}
}

func TestIsKind_NonRepositoryError(t *testing.T) {
	assert.False(t, infra.IsKind(errs.New("plain"), infra.KindNotFound))
	assert.False(t, infra.IsKind(nil, infra.KindNotFound))
}

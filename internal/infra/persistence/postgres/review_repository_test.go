package postgres

import (
	"context"
	"regexp"
	"testing"

	"bazaar/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_List_Ordering(t *testing.T) {
	cases := []struct {
		name      string
		ordering  string
		wantOrder string
	}{
		{
			name:      "oldest first",
			ordering:  repository.ReviewOrderUpdatedAtAsc,
			wantOrder: "ORDER BY updated_at ASC",
		},
		{
			name:      "newest first",
			ordering:  repository.ReviewOrderUpdatedAtDesc,
			wantOrder: "ORDER BY updated_at DESC",
		},
		{
			name:      "lowest rating first",
			ordering:  repository.ReviewOrderRatingAsc,
			wantOrder: "ORDER BY rating ASC",
		},
		{
			name:      "highest rating first",
			ordering:  repository.ReviewOrderRatingDesc,
			wantOrder: "ORDER BY rating DESC",
		},
		{
			// Offers fall back to store order here; reviews fall back to
			// newest first instead.
			name:      "unrecognized falls back to newest first",
			ordering:  "min_price",
			wantOrder: "ORDER BY updated_at DESC",
		},
		{
			name:      "empty falls back to newest first",
			ordering:  "",
			wantOrder: "ORDER BY updated_at DESC",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockedDB(t)
			repo := NewReviewRepository(db)

			mock.ExpectQuery(regexp.QuoteMeta(tc.wantOrder)).
				WillReturnRows(sqlmock.NewRows([]string{"id"}))

			reviews, err := repo.List(context.Background(), repository.ReviewQuery{
				Ordering: tc.ordering,
			})

			require.NoError(t, err)
			assert.Empty(t, reviews)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReviewRepository_List_Filters(t *testing.T) {
	db, mock := newMockedDB(t)
	repo := NewReviewRepository(db)

	businessUserID := uuid.New()
	reviewerID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE business_user_id = $1 AND reviewer_id = $2`)).
		WithArgs(businessUserID, reviewerID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	reviews, err := repo.List(context.Background(), repository.ReviewQuery{
		BusinessUserID: &businessUserID,
		ReviewerID:     &reviewerID,
	})

	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.NoError(t, mock.ExpectationsWereMet())
}

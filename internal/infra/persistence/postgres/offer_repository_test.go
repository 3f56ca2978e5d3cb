package postgres

import (
	"context"
	"regexp"
	"testing"

	"bazaar/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockedDB opens a gorm handle over a sqlmock connection so the tests can
// assert the SQL the repositories generate without a live database.
func newMockedDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Discard,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestOfferRepository_List_Ordering(t *testing.T) {
	cases := []struct {
		name      string
		ordering  string
		wantOrder string
	}{
		{
			name:      "updated ascending",
			ordering:  repository.OfferOrderUpdatedAtAsc,
			wantOrder: "ORDER BY updated_at ASC",
		},
		{
			name:      "updated descending",
			ordering:  repository.OfferOrderUpdatedAtDesc,
			wantOrder: "ORDER BY updated_at DESC",
		},
		{
			name:      "cheapest tier first",
			ordering:  repository.OfferOrderMinPriceAsc,
			wantOrder: "ORDER BY " + minPriceSubquery + " ASC",
		},
		{
			name:      "cheapest tier last",
			ordering:  repository.OfferOrderMinPriceDesc,
			wantOrder: "ORDER BY " + minPriceSubquery + " DESC",
		},
		{
			name:      "unrecognized keeps store order",
			ordering:  "num_reviews",
			wantOrder: "ORDER BY created_at ASC",
		},
		{
			name:      "empty keeps store order",
			ordering:  "",
			wantOrder: "ORDER BY created_at ASC",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockedDB(t)
			repo := NewOfferRepository(db)

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "offers"`)).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
			mock.ExpectQuery(regexp.QuoteMeta(tc.wantOrder)).
				WillReturnRows(sqlmock.NewRows([]string{"id"}))

			offers, total, err := repo.List(context.Background(), repository.OfferQuery{
				Ordering: tc.ordering,
			})

			require.NoError(t, err)
			assert.Empty(t, offers)
			assert.Zero(t, total)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOfferRepository_List_AggregateFilters(t *testing.T) {
	db, mock := newMockedDB(t)
	repo := NewOfferRepository(db)

	minPrice := 25.0
	maxDelivery := 7

	// Both the count and the page query must carry the per-detail aggregates.
	wantFilters := regexp.QuoteMeta(minPriceSubquery+" >= $1") +
		".*" +
		regexp.QuoteMeta(minDeliverySubquery+" <= $2")

	mock.ExpectQuery(wantFilters).
		WithArgs(minPrice, maxDelivery).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(wantFilters).
		WithArgs(minPrice, maxDelivery).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	offers, total, err := repo.List(context.Background(), repository.OfferQuery{
		MinPrice:        &minPrice,
		MaxDeliveryTime: &maxDelivery,
	})

	require.NoError(t, err)
	assert.Empty(t, offers)
	assert.Equal(t, int64(3), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package database

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intercityline/booking-backend/internal/apperrors"
	"github.com/intercityline/booking-backend/internal/models"
)

func TestSeatRepository_GetByDeparture(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSeatRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, departure_id, seat_num, available_segments`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "departure_id", "seat_num", "available_segments"}).
			AddRow(1, 5, 1, []byte("{0,1,2}")).
			AddRow(2, 5, 2, []byte("{}")).
			AddRow(3, 5, 3, nil))

	seats, err := repo.GetByDeparture(5)
	require.NoError(t, err)
	require.Len(t, seats, 3)

	assert.Equal(t, models.SegmentRanks{0, 1, 2}, seats[0].Available)
	assert.True(t, seats[0].Active())

	assert.Equal(t, models.SegmentRanks{}, seats[1].Available)
	assert.True(t, seats[1].Active(), "empty array means fully booked, still an active seat")

	assert.Nil(t, seats[2].Available)
	assert.False(t, seats[2].Active(), "NULL marks a permanently closed seat")
}

func TestSeatRepository_GetForUpdateTx(t *testing.T) {
	t.Run("locks the row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSeatRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, departure_id, seat_num, available_segments\s+FROM seat\s+WHERE departure_id = \$1 AND seat_num = \$2\s+FOR UPDATE`).
			WithArgs(int64(5), 12).
			WillReturnRows(sqlmock.NewRows([]string{"id", "departure_id", "seat_num", "available_segments"}).
				AddRow(40, 5, 12, []byte("{0,1}")))

		tx, err := db.Beginx()
		require.NoError(t, err)

		seat, err := repo.GetForUpdateTx(tx, 5, 12)
		require.NoError(t, err)
		assert.Equal(t, int64(40), seat.ID)
		assert.Equal(t, models.SegmentRanks{0, 1}, seat.Available)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSeatRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE`).
			WithArgs(int64(5), 99).
			WillReturnRows(sqlmock.NewRows([]string{"id", "departure_id", "seat_num", "available_segments"}))

		tx, err := db.Beginx()
		require.NoError(t, err)

		_, err = repo.GetForUpdateTx(tx, 5, 99)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestSeatRepository_UpdateAvailabilityTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSeatRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE seat SET available_segments = $2 WHERE id = $1`)).
		WithArgs(int64(40), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Beginx()
	require.NoError(t, err)

	require.NoError(t, repo.UpdateAvailabilityTx(tx, 40, models.SegmentRanks{2}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeatRepository_InsertBatchTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSeatRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO seat (departure_id, seat_num, available_segments)`)).
		WithArgs(int64(5), 1, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO seat (departure_id, seat_num, available_segments)`)).
		WithArgs(int64(5), 2, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))

	tx, err := db.Beginx()
	require.NoError(t, err)

	seats := []models.Seat{
		{DepartureID: 5, SeatNum: 1, Available: models.SegmentRanks{0, 1}},
		{DepartureID: 5, SeatNum: 2, Available: nil},
	}
	require.NoError(t, repo.InsertBatchTx(tx, seats))
	assert.Equal(t, int64(100), seats[0].ID)
	assert.Equal(t, int64(101), seats[1].ID)
}

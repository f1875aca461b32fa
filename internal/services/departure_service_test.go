package services

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intercityline/booking-backend/internal/apperrors"
	"github.com/intercityline/booking-backend/internal/database"
	"github.com/intercityline/booking-backend/internal/models"
)

func newDepartureService(t *testing.T) (*DepartureService, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := NewDepartureService(
		db,
		database.NewDepartureRepository(db),
		database.NewRouteRepository(db),
		database.NewPricelistRepository(db),
		database.NewSeatRepository(db),
		database.NewAvailabilityRepository(db),
		database.NewTicketRepository(db),
		logger,
	)
	return svc, mock
}

func TestDepartureService_Create(t *testing.T) {
	t.Run("unknown layout variant writes nothing", func(t *testing.T) {
		svc, mock := newDepartureService(t)

		_, err := svc.Create(&models.CreateDepartureRequest{
			RouteID:       1,
			PricelistID:   1,
			Date:          "2026-09-01",
			LayoutVariant: 7,
			ActiveSeats:   []int{1, 2},
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindUnknownLayoutVariant))
		assert.NoError(t, mock.ExpectationsWereMet(), "no row may be created")
	})

	t.Run("malformed date", func(t *testing.T) {
		svc, mock := newDepartureService(t)

		_, err := svc.Create(&models.CreateDepartureRequest{
			RouteID:       1,
			PricelistID:   1,
			Date:          "01.09.2026",
			LayoutVariant: 1,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("active seat outside the layout", func(t *testing.T) {
		svc, mock := newDepartureService(t)

		mock.ExpectQuery(`SELECT stop_id FROM routestop`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"stop_id"}).AddRow(10).AddRow(20))

		_, err := svc.Create(&models.CreateDepartureRequest{
			RouteID:       1,
			PricelistID:   1,
			Date:          "2026-09-01",
			LayoutVariant: 1,
			ActiveSeats:   []int{47},
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("route with one stop", func(t *testing.T) {
		svc, mock := newDepartureService(t)

		mock.ExpectQuery(`SELECT stop_id FROM routestop`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"stop_id"}).AddRow(10))

		_, err := svc.Create(&models.CreateDepartureRequest{
			RouteID:       1,
			PricelistID:   1,
			Date:          "2026-09-01",
			LayoutVariant: 1,
			ActiveSeats:   []int{1},
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidRoute))
	})

	t.Run("writes departure, seats and aggregates in one transaction", func(t *testing.T) {
		svc, mock := newDepartureService(t)

		mock.ExpectQuery(`SELECT stop_id FROM routestop`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"stop_id"}).
				AddRow(10).AddRow(20).AddRow(30))
		mock.ExpectQuery(`FROM prices`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "pricelist_id", "departure_stop_id", "arrival_stop_id", "price"}).
				AddRow(1, 1, 10, 20, 250.0).
				AddRow(2, 1, 10, 30, 400.0).
				AddRow(3, 1, 20, 30, 200.0).
				AddRow(4, 1, 99, 30, 100.0)) // pair off the route, skipped

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO departure`).
			WithArgs(int64(1), int64(1), sqlmock.AnyArg(), 1, 46).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

		for num := 1; num <= 46; num++ {
			mock.ExpectQuery(`INSERT INTO seat`).
				WithArgs(int64(5), num, sqlmock.AnyArg()).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100 + num))
		}

		for i, p := range [][2]int64{{10, 20}, {10, 30}, {20, 30}} {
			mock.ExpectQuery(`INSERT INTO available`).
				WithArgs(int64(5), p[0], p[1], 2).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(200 + i))
		}
		mock.ExpectCommit()

		departure, err := svc.Create(&models.CreateDepartureRequest{
			RouteID:       1,
			PricelistID:   1,
			Date:          "2026-09-01",
			LayoutVariant: 1,
			ActiveSeats:   []int{1, 2},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), departure.ID)
		assert.Equal(t, 46, departure.SeatCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDepartureService_Edit(t *testing.T) {
	departureRow := func() *sqlmock.Rows {
		return sqlmock.NewRows(
			[]string{"id", "route_id", "pricelist_id", "date", "layout_variant", "seat_count"}).
			AddRow(5, 1, 1, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), 1, 46)
	}

	t.Run("refused once tickets exist", func(t *testing.T) {
		svc, mock := newDepartureService(t)

		mock.ExpectQuery(`FROM departure`).WithArgs(int64(5)).WillReturnRows(departureRow())
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM ticket`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		_, err := svc.Edit(5, &models.CreateDepartureRequest{
			RouteID:       1,
			PricelistID:   1,
			Date:          "2026-09-01",
			LayoutVariant: 1,
			ActiveSeats:   []int{1},
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without tickets drops and regenerates seats and aggregates", func(t *testing.T) {
		svc, mock := newDepartureService(t)

		mock.ExpectQuery(`FROM departure`).WithArgs(int64(5)).WillReturnRows(departureRow())
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM ticket`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery(`SELECT stop_id FROM routestop`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"stop_id"}).
				AddRow(10).AddRow(20).AddRow(30))
		mock.ExpectQuery(`FROM prices`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "pricelist_id", "departure_stop_id", "arrival_stop_id", "price"}).
				AddRow(1, 1, 10, 20, 250.0).
				AddRow(2, 1, 10, 30, 400.0).
				AddRow(3, 1, 20, 30, 200.0))

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE departure`).
			WithArgs(int64(5), int64(1), int64(1), sqlmock.AnyArg(), 1, 46).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Old inventory goes before the new one is written, so a rebuilt
		// departure can never hold duplicate seat or aggregate rows.
		mock.ExpectExec(`DELETE FROM seat`).WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 46))
		mock.ExpectExec(`DELETE FROM available`).WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 3))

		for num := 1; num <= 46; num++ {
			mock.ExpectQuery(`INSERT INTO seat`).
				WithArgs(int64(5), num, sqlmock.AnyArg()).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(300 + num))
		}
		// Aggregates restart at the new active-seat count.
		for i, p := range [][2]int64{{10, 20}, {10, 30}, {20, 30}} {
			mock.ExpectQuery(`INSERT INTO available`).
				WithArgs(int64(5), p[0], p[1], 3).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(400 + i))
		}
		mock.ExpectCommit()

		departure, err := svc.Edit(5, &models.CreateDepartureRequest{
			RouteID:       1,
			PricelistID:   1,
			Date:          "2026-09-01",
			LayoutVariant: 1,
			ActiveSeats:   []int{1, 2, 3},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), departure.ID)
		assert.Equal(t, 46, departure.SeatCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDepartureService_Delete(t *testing.T) {
	departureRow := func() *sqlmock.Rows {
		return sqlmock.NewRows(
			[]string{"id", "route_id", "pricelist_id", "date", "layout_variant", "seat_count"}).
			AddRow(5, 1, 1, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), 1, 46)
	}

	t.Run("sold tickets without force", func(t *testing.T) {
		svc, mock := newDepartureService(t)

		mock.ExpectQuery(`FROM departure`).WithArgs(int64(5)).WillReturnRows(departureRow())
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM ticket`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		err := svc.Delete(5, false)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	})

	t.Run("force cascades tickets, seats and aggregates", func(t *testing.T) {
		svc, mock := newDepartureService(t)

		mock.ExpectQuery(`FROM departure`).WithArgs(int64(5)).WillReturnRows(departureRow())
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM ticket`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM ticket`).WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM seat`).WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 46))
		mock.ExpectExec(`DELETE FROM available`).WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`DELETE FROM departure`).WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, svc.Delete(5, true))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		svc, mock := newDepartureService(t)

		mock.ExpectQuery(`FROM departure`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "route_id", "pricelist_id", "date", "layout_variant", "seat_count"}))

		err := svc.Delete(5, true)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestBuildSeats(t *testing.T) {
	seats := buildSeats(4, map[int]bool{1: true, 3: true}, 2)
	require.Len(t, seats, 4)

	for i, seat := range seats {
		assert.Equal(t, i+1, seat.SeatNum, fmt.Sprintf("seat %d", i+1))
	}
	assert.Equal(t, models.SegmentRanks{0, 1}, seats[0].Available)
	assert.Nil(t, seats[1].Available)
	assert.Equal(t, models.SegmentRanks{0, 1}, seats[2].Available)
	assert.Nil(t, seats[3].Available)
}

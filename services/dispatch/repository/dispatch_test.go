package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ataxihosur/dispatch/internal/pkg/errs"
	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func tripColumns() []string {
	return []string{
		"id", "customer_id", "driver_id",
		"pickup_lat", "pickup_lng", "pickup_address",
		"destination_lat", "destination_lng", "destination_address",
		"booking_category", "vehicle_category", "rental_hours",
		"status", "fare_estimate", "fare_final", "payment_status",
		"cancelled_by", "cancel_reason", "scheduled_for",
		"requested_at", "assigned_at", "arrived_at", "started_at", "completed_at", "cancelled_at",
	}
}

func requestedTripRow(id, customerID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows(tripColumns()).AddRow(
		id, customerID, nil,
		12.9716, 77.5946, "MG Road",
		12.7409, 77.8253, "Hosur Bus Stand",
		"regular", "sedan", 0,
		"requested", 420, nil, "pending",
		nil, nil, nil,
		time.Now(), nil, nil, nil, nil, nil,
	)
}

func TestGetTrip_ImmediateTable(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDispatchRepository(db)

	id, customerID := uuid.New(), uuid.New()
	mock.ExpectQuery("SELECT(.+)FROM trips").
		WithArgs(id).
		WillReturnRows(requestedTripRow(id, customerID))

	trip, err := repo.GetTrip(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, models.TripKindImmediate, trip.Kind)
	assert.Equal(t, models.TripStatusRequested, trip.Status)
	assert.Equal(t, customerID, trip.CustomerID)
	assert.Nil(t, trip.DriverID)
	assert.Equal(t, 12.9716, trip.Pickup.Latitude)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrip_FallsBackToScheduledTable(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDispatchRepository(db)

	id, customerID := uuid.New(), uuid.New()
	scheduledFor := time.Now().Add(6 * time.Hour)
	rows := sqlmock.NewRows(tripColumns()).AddRow(
		id, customerID, nil,
		12.9716, 77.5946, "MG Road",
		13.1986, 77.7066, "Airport T1",
		"airport", "sedan_ac", 0,
		"pending", 1800, nil, "pending",
		nil, nil, scheduledFor,
		time.Now(), nil, nil, nil, nil, nil,
	)

	mock.ExpectQuery("SELECT(.+)FROM trips").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(tripColumns()))
	mock.ExpectQuery("SELECT(.+)FROM scheduled_trips").
		WithArgs(id).
		WillReturnRows(rows)

	trip, err := repo.GetTrip(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, models.TripKindScheduled, trip.Kind)
	assert.Equal(t, models.TripStatusPending, trip.Status)
	require.NotNil(t, trip.ScheduledFor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrip_NotFoundInEitherTable(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDispatchRepository(db)

	id := uuid.New()
	mock.ExpectQuery("SELECT(.+)FROM trips").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(tripColumns()))
	mock.ExpectQuery("SELECT(.+)FROM scheduled_trips").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(tripColumns()))

	trip, err := repo.GetTrip(context.Background(), id)

	require.Error(t, err)
	assert.Nil(t, trip)
	assert.True(t, errors.Is(err, errs.ErrTripNotFound))
}

func TestBindDriver_Wins(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDispatchRepository(db)

	trip := &models.Trip{ID: uuid.New(), Kind: models.TripKindImmediate, Status: models.TripStatusRequested}
	driverID := uuid.New()
	at := time.Now()

	mock.ExpectExec("UPDATE trips SET driver_id").
		WithArgs(driverID, models.TripStatusAccepted, at, trip.ID, models.TripStatusRequested).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.BindDriver(context.Background(), trip, driverID, at)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBindDriver_LosesRace(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDispatchRepository(db)

	trip := &models.Trip{ID: uuid.New(), Kind: models.TripKindImmediate, Status: models.TripStatusRequested}

	// Zero rows affected: a concurrent assignment flipped the status first.
	mock.ExpectExec("UPDATE trips SET driver_id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.BindDriver(context.Background(), trip, uuid.New(), time.Now())

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrTripAlreadyAssigned))
}

func TestBindDriver_ScheduledTableAndStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDispatchRepository(db)

	trip := &models.Trip{ID: uuid.New(), Kind: models.TripKindScheduled, Status: models.TripStatusPending}
	driverID := uuid.New()
	at := time.Now()

	mock.ExpectExec("UPDATE scheduled_trips SET driver_id").
		WithArgs(driverID, models.TripStatusAssigned, at, trip.ID, models.TripStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.BindDriver(context.Background(), trip, driverID, at)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionTrip_StampsArrivedAt(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDispatchRepository(db)

	trip := &models.Trip{ID: uuid.New(), Kind: models.TripKindImmediate, Status: models.TripStatusAccepted}
	at := time.Now()

	mock.ExpectExec("UPDATE trips SET status(.+)arrived_at").
		WithArgs(models.TripStatusDriverArrived, at, trip.ID, models.TripStatusAccepted).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.TransitionTrip(context.Background(), trip, models.TripStatusDriverArrived, at)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionTrip_ConcurrentChange(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDispatchRepository(db)

	trip := &models.Trip{ID: uuid.New(), Kind: models.TripKindImmediate, Status: models.TripStatusDriverArrived}

	mock.ExpectExec("UPDATE trips SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.TransitionTrip(context.Background(), trip, models.TripStatusInProgress, time.Now())

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrIllegalTransition))
}

func TestCompleteTrip_WritesFinalFare(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDispatchRepository(db)

	trip := &models.Trip{ID: uuid.New(), Kind: models.TripKindImmediate, Status: models.TripStatusInProgress}
	at := time.Now()

	mock.ExpectExec("UPDATE trips(.+)fare_final").
		WithArgs(models.TripStatusCompleted, 510, at, trip.ID, models.TripStatusInProgress).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CompleteTrip(context.Background(), trip, 510, at)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelTrip_WritesCancellationRecord(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDispatchRepository(db)

	trip := &models.Trip{ID: uuid.New(), Kind: models.TripKindImmediate, Status: models.TripStatusAccepted}
	at := time.Now()

	mock.ExpectExec("UPDATE trips(.+)cancelled_by").
		WithArgs(models.TripStatusCancelled, "customer", "waited too long", 60, at, trip.ID, models.TripStatusAccepted).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CancelTrip(context.Background(), trip, "customer", "waited too long", 60, at)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDriver_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDispatchRepository(db)

	id := uuid.New()
	mock.ExpectQuery("SELECT(.+)FROM drivers").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	driver, err := repo.GetDriver(context.Background(), id)

	require.Error(t, err)
	assert.Nil(t, driver)
	assert.True(t, errors.Is(err, errs.ErrDriverNotFound))
}

func TestSetDriverStatus_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDispatchRepository(db)

	mock.ExpectExec("UPDATE drivers SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetDriverStatus(context.Background(), uuid.New(), models.DriverStatusBusy)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrDriverNotFound))
}

func TestCreateNotification(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDispatchRepository(db)

	notification := &models.AssignmentNotification{
		ID:                 uuid.New(),
		TripID:             uuid.New(),
		DriverID:           uuid.New(),
		PickupAddress:      "MG Road",
		DestinationAddress: "Hosur Bus Stand",
		CustomerName:       "Anita",
		CustomerPhone:      "+919800000002",
		AdminNotes:         "VIP pickup",
		CreatedAt:          time.Now(),
	}

	mock.ExpectExec("INSERT INTO assignment_notifications").
		WithArgs(
			notification.ID, notification.TripID, notification.DriverID,
			notification.PickupAddress, notification.DestinationAddress,
			notification.CustomerName, notification.CustomerPhone,
			notification.AdminNotes, notification.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateNotification(context.Background(), notification)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

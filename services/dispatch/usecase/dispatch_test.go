package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ataxihosur/dispatch/internal/pkg/errs"
	"github.com/ataxihosur/dispatch/internal/pkg/models"
	"github.com/ataxihosur/dispatch/services/dispatch/mocks"
	faremocks "github.com/ataxihosur/dispatch/services/fare/mocks"
)

type fixture struct {
	repo   *mocks.MockDispatchRepo
	gw     *mocks.MockDispatchGW
	fareUC *faremocks.MockFareUC
	uc     *DispatchUC
}

func setup(t *testing.T) (*fixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	f := &fixture{
		repo:   mocks.NewMockDispatchRepo(ctrl),
		gw:     mocks.NewMockDispatchGW(ctrl),
		fareUC: faremocks.NewMockFareUC(ctrl),
	}
	f.uc = NewDispatchUC(&models.Config{}, f.repo, f.gw, f.fareUC)
	return f, ctrl
}

func immediateTrip(status models.TripStatus) *models.Trip {
	return &models.Trip{
		ID:                 uuid.New(),
		Kind:               models.TripKindImmediate,
		CustomerID:         uuid.New(),
		PickupAddress:      "MG Road",
		DestinationAddress: "Hosur Bus Stand",
		BookingCategory:    models.BookingRegular,
		VehicleCategory:    models.VehicleSedan,
		Status:             status,
		FareEstimate:       420,
		RequestedAt:        time.Now(),
	}
}

func scheduledTrip(status models.TripStatus) *models.Trip {
	trip := immediateTrip(status)
	trip.Kind = models.TripKindScheduled
	at := time.Now().Add(6 * time.Hour)
	trip.ScheduledFor = &at
	return trip
}

func onlineDriver() *models.Driver {
	return &models.Driver{
		ID:         uuid.New(),
		FullName:   "Ravi Kumar",
		Status:     models.DriverStatusOnline,
		IsVerified: true,
		Rating:     4.8,
	}
}

func TestAssignDriver_HappyPath(t *testing.T) {
	f, ctrl := setup(t)
	defer ctrl.Finish()

	trip := immediateTrip(models.TripStatusRequested)
	driver := onlineDriver()

	f.repo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.repo.EXPECT().GetDriver(gomock.Any(), driver.ID).Return(driver, nil)
	f.repo.EXPECT().BindDriver(gomock.Any(), trip, driver.ID, gomock.Any()).Return(nil)
	f.repo.EXPECT().SetDriverStatus(gomock.Any(), driver.ID, models.DriverStatusBusy).Return(nil)
	f.repo.EXPECT().GetCustomerContact(gomock.Any(), trip.CustomerID).Return("Anita", "+919800000002", nil)

	var created *models.AssignmentNotification
	f.repo.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.AssignmentNotification) error {
			created = n
			return nil
		})

	f.gw.EXPECT().PublishTripAssigned(trip).Return(nil)
	f.gw.EXPECT().PublishNotificationCreated(gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishTripStatusChanged(gomock.Any()).Return(nil)

	result, err := f.uc.AssignDriver(context.Background(), trip.ID, driver.ID, "VIP pickup")

	require.NoError(t, err)
	assert.False(t, result.DriverStatusLag)
	assert.Equal(t, models.TripStatusAccepted, result.Trip.Status)
	require.NotNil(t, result.Trip.DriverID)
	assert.Equal(t, driver.ID, *result.Trip.DriverID)
	assert.NotNil(t, result.Trip.AssignedAt)

	require.NotNil(t, created)
	assert.Equal(t, trip.ID, created.TripID)
	assert.Equal(t, "Anita", created.CustomerName)
	assert.Equal(t, "VIP pickup", created.AdminNotes)
}

func TestAssignDriver_ScheduledTripBecomesAssigned(t *testing.T) {
	f, ctrl := setup(t)
	defer ctrl.Finish()

	trip := scheduledTrip(models.TripStatusPending)
	driver := onlineDriver()

	f.repo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.repo.EXPECT().GetDriver(gomock.Any(), driver.ID).Return(driver, nil)
	f.repo.EXPECT().BindDriver(gomock.Any(), trip, driver.ID, gomock.Any()).Return(nil)
	f.repo.EXPECT().SetDriverStatus(gomock.Any(), driver.ID, models.DriverStatusBusy).Return(nil)
	f.repo.EXPECT().GetCustomerContact(gomock.Any(), trip.CustomerID).Return("Anita", "+919800000002", nil)
	f.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishTripAssigned(trip).Return(nil)
	f.gw.EXPECT().PublishNotificationCreated(gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishTripStatusChanged(gomock.Any()).Return(nil)

	result, err := f.uc.AssignDriver(context.Background(), trip.ID, driver.ID, "")

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusAssigned, result.Trip.Status)
}

func TestAssignDriver_TripNotFound(t *testing.T) {
	f, ctrl := setup(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	f.repo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(nil, errs.Wrap(errs.KindNotFound, "trip not found", errs.ErrTripNotFound))

	_, err := f.uc.AssignDriver(context.Background(), tripID, uuid.New(), "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrTripNotFound))
}

func TestAssignDriver_TripAlreadyAssigned(t *testing.T) {
	f, ctrl := setup(t)
	defer ctrl.Finish()

	trip := immediateTrip(models.TripStatusAccepted)
	f.repo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := f.uc.AssignDriver(context.Background(), trip.ID, uuid.New(), "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrTripAlreadyAssigned))
}

func TestAssignDriver_DriverPreconditions(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Driver)
		wantErr error
	}{
		{"busy driver", func(d *models.Driver) { d.Status = models.DriverStatusBusy }, errs.ErrDriverNotAvailable},
		{"offline driver", func(d *models.Driver) { d.Status = models.DriverStatusOffline }, errs.ErrDriverNotAvailable},
		{"unverified driver", func(d *models.Driver) { d.IsVerified = false }, errs.ErrDriverNotVerified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ctrl := setup(t)
			defer ctrl.Finish()

			trip := immediateTrip(models.TripStatusRequested)
			driver := onlineDriver()
			tt.mutate(driver)

			f.repo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
			f.repo.EXPECT().GetDriver(gomock.Any(), driver.ID).Return(driver, nil)

			_, err := f.uc.AssignDriver(context.Background(), trip.ID, driver.ID, "")

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestAssignDriver_ConcurrentBindLoses(t *testing.T) {
	f, ctrl := setup(t)
	defer ctrl.Finish()

	trip := immediateTrip(models.TripStatusRequested)
	driver := onlineDriver()

	f.repo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.repo.EXPECT().GetDriver(gomock.Any(), driver.ID).Return(driver, nil)
	f.repo.EXPECT().
		BindDriver(gomock.Any(), trip, driver.ID, gomock.Any()).
		Return(errs.Wrap(errs.KindPreconditionFailed, "assigned concurrently", errs.ErrTripAlreadyAssigned))

	// The losing assignment must not touch the driver or write anything.
	result, err := f.uc.AssignDriver(context.Background(), trip.ID, driver.ID, "")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, errs.ErrTripAlreadyAssigned))
}

func TestAssignDriver_DriverStatusLagIsNotFatal(t *testing.T) {
	f, ctrl := setup(t)
	defer ctrl.Finish()

	trip := immediateTrip(models.TripStatusRequested)
	driver := onlineDriver()

	f.repo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.repo.EXPECT().GetDriver(gomock.Any(), driver.ID).Return(driver, nil)
	f.repo.EXPECT().BindDriver(gomock.Any(), trip, driver.ID, gomock.Any()).Return(nil)
	f.repo.EXPECT().
		SetDriverStatus(gomock.Any(), driver.ID, models.DriverStatusBusy).
		Return(errors.New("deadlock detected"))
	f.repo.EXPECT().GetCustomerContact(gomock.Any(), trip.CustomerID).Return("Anita", "+919800000002", nil)
	f.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishTripAssigned(trip).Return(nil)
	f.gw.EXPECT().PublishNotificationCreated(gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishTripStatusChanged(gomock.Any()).Return(nil)

	result, err := f.uc.AssignDriver(context.Background(), trip.ID, driver.ID, "")

	require.NoError(t, err)
	assert.True(t, result.DriverStatusLag)
	assert.Equal(t, models.TripStatusAccepted, result.Trip.Status)
}

func TestConfirmTrip_ScheduledOnly(t *testing.T) {
	f, ctrl := setup(t)
	defer ctrl.Finish()

	trip := scheduledTrip(models.TripStatusAssigned)
	f.repo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.repo.EXPECT().TransitionTrip(gomock.Any(), trip, models.TripStatusConfirmed, gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishTripStatusChanged(gomock.Any()).Return(nil)

	got, err := f.uc.ConfirmTrip(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusConfirmed, got.Status)
}

func TestConfirmTrip_ImmediateTripIsIllegal(t *testing.T) {
	f, ctrl := setup(t)
	defer ctrl.Finish()

	trip := immediateTrip(models.TripStatusAccepted)
	f.repo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := f.uc.ConfirmTrip(context.Background(), trip.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrIllegalTransition))
}

func TestMarkDriverArrived(t *testing.T) {
	f, ctrl := setup(t)
	defer ctrl.Finish()

	trip := immediateTrip(models.TripStatusAccepted)
	f.repo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.repo.EXPECT().TransitionTrip(gomock.Any(), trip, models.TripStatusDriverArrived, gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishTripStatusChanged(gomock.Any()).Return(nil)

	got, err := f.uc.MarkDriverArrived(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusDriverArrived, got.Status)
	assert.NotNil(t, got.ArrivedAt)
}

func TestStartTrip_FromAcceptedIsIllegal(t *testing.T) {
	f, ctrl := setup(t)
	defer ctrl.Finish()

	trip := immediateTrip(models.TripStatusAccepted)
	f.repo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := f.uc.StartTrip(context.Background(), trip.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrIllegalTransition))
}

func TestCompleteTrip_ComputesFinalFareAndReleasesDriver(t *testing.T) {
	f, ctrl := setup(t)
	defer ctrl.Finish()

	trip := immediateTrip(models.TripStatusInProgress)
	driverID := uuid.New()
	trip.DriverID = &driverID
	started := time.Now().Add(-40 * time.Minute)
	trip.StartedAt = &started

	f.repo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.fareUC.EXPECT().
		EstimateFare(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.FareRequest) (*models.FareQuote, error) {
			assert.Equal(t, models.BookingRegular, req.BookingCategory)
			assert.Equal(t, 18.5, req.DistanceKm)
			assert.Equal(t, 42, req.DurationMinutes)
			return &models.FareQuote{Amount: 510, Currency: "INR"}, nil
		})
	f.repo.EXPECT().CompleteTrip(gomock.Any(), trip, 510, gomock.Any()).Return(nil)
	f.repo.EXPECT().SetDriverStatus(gomock.Any(), driverID, models.DriverStatusOnline).Return(nil)
	f.repo.EXPECT().IncrementDriverTrips(gomock.Any(), driverID).Return(nil)
	f.gw.EXPECT().PublishTripStatusChanged(gomock.Any()).Return(nil)

	got, err := f.uc.CompleteTrip(context.Background(), trip.ID, 18.5, 42)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCompleted, got.Status)
	require.NotNil(t, got.FareFinal)
	assert.Equal(t, 510, *got.FareFinal)
}

func TestCompleteTrip_FareFailureKeepsEstimate(t *testing.T) {
	f, ctrl := setup(t)
	defer ctrl.Finish()

	trip := immediateTrip(models.TripStatusInProgress)
	driverID := uuid.New()
	trip.DriverID = &driverID

	f.repo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.fareUC.EXPECT().
		EstimateFare(gomock.Any(), gomock.Any()).
		Return(nil, errs.Wrap(errs.KindConfigurationMissing, "no entry", errs.ErrFareConfigMissing))
	f.repo.EXPECT().CompleteTrip(gomock.Any(), trip, trip.FareEstimate, gomock.Any()).Return(nil)
	f.repo.EXPECT().SetDriverStatus(gomock.Any(), driverID, models.DriverStatusOnline).Return(nil)
	f.repo.EXPECT().IncrementDriverTrips(gomock.Any(), driverID).Return(nil)
	f.gw.EXPECT().PublishTripStatusChanged(gomock.Any()).Return(nil)

	got, err := f.uc.CompleteTrip(context.Background(), trip.ID, 12, 25)

	require.NoError(t, err)
	require.NotNil(t, got.FareFinal)
	assert.Equal(t, 420, *got.FareFinal)
}

func TestCompleteTrip_AirportFareIsFixed(t *testing.T) {
	f, ctrl := setup(t)
	defer ctrl.Finish()

	trip := immediateTrip(models.TripStatusInProgress)
	trip.BookingCategory = models.BookingAirport
	trip.FareEstimate = 1800
	driverID := uuid.New()
	trip.DriverID = &driverID

	// The fare engine is never consulted for a fixed airport fare.
	f.repo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.repo.EXPECT().CompleteTrip(gomock.Any(), trip, 1800, gomock.Any()).Return(nil)
	f.repo.EXPECT().SetDriverStatus(gomock.Any(), driverID, models.DriverStatusOnline).Return(nil)
	f.repo.EXPECT().IncrementDriverTrips(gomock.Any(), driverID).Return(nil)
	f.gw.EXPECT().PublishTripStatusChanged(gomock.Any()).Return(nil)

	got, err := f.uc.CompleteTrip(context.Background(), trip.ID, 33, 55)

	require.NoError(t, err)
	assert.Equal(t, 1800, *got.FareFinal)
}

func TestCancelTrip_BeforeAssignmentWaivesFee(t *testing.T) {
	f, ctrl := setup(t)
	defer ctrl.Finish()

	trip := immediateTrip(models.TripStatusRequested)
	f.repo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.repo.EXPECT().CancelTrip(gomock.Any(), trip, "customer", "changed plans", 0, gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishTripStatusChanged(gomock.Any()).Return(nil)

	got, err := f.uc.CancelTrip(context.Background(), trip.ID, "customer", "changed plans")

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCancelled, got.Status)
	assert.Equal(t, "customer", got.CancelledBy)
}

func TestCancelTrip_AfterAcceptChargesFeeAndReleasesDriver(t *testing.T) {
	f, ctrl := setup(t)
	defer ctrl.Finish()

	trip := immediateTrip(models.TripStatusAccepted)
	driverID := uuid.New()
	trip.DriverID = &driverID

	f.repo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.fareUC.EXPECT().
		CancellationFee(gomock.Any(), models.BookingRegular, models.VehicleSedan).
		Return(60, nil)
	f.repo.EXPECT().CancelTrip(gomock.Any(), trip, "customer", "waited too long", 60, gomock.Any()).Return(nil)
	f.repo.EXPECT().SetDriverStatus(gomock.Any(), driverID, models.DriverStatusOnline).Return(nil)
	f.gw.EXPECT().PublishTripStatusChanged(gomock.Any()).Return(nil)

	got, err := f.uc.CancelTrip(context.Background(), trip.ID, "customer", "waited too long")

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCancelled, got.Status)
}

func TestCancelTrip_InProgressImmediateIsIllegal(t *testing.T) {
	f, ctrl := setup(t)
	defer ctrl.Finish()

	trip := immediateTrip(models.TripStatusInProgress)
	f.repo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := f.uc.CancelTrip(context.Background(), trip.ID, "customer", "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrIllegalTransition))
}

func TestCancelTrip_InProgressScheduledIsAllowed(t *testing.T) {
	f, ctrl := setup(t)
	defer ctrl.Finish()

	trip := scheduledTrip(models.TripStatusInProgress)
	driverID := uuid.New()
	trip.DriverID = &driverID

	f.repo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.fareUC.EXPECT().
		CancellationFee(gomock.Any(), models.BookingRegular, models.VehicleSedan).
		Return(60, nil)
	f.repo.EXPECT().CancelTrip(gomock.Any(), trip, "admin", "vehicle breakdown", 60, gomock.Any()).Return(nil)
	f.repo.EXPECT().SetDriverStatus(gomock.Any(), driverID, models.DriverStatusOnline).Return(nil)
	f.gw.EXPECT().PublishTripStatusChanged(gomock.Any()).Return(nil)

	_, err := f.uc.CancelTrip(context.Background(), trip.ID, "admin", "vehicle breakdown")

	require.NoError(t, err)
}

func TestCancelTrip_RequiresCancelledBy(t *testing.T) {
	f, ctrl := setup(t)
	defer ctrl.Finish()

	_, err := f.uc.CancelTrip(context.Background(), uuid.New(), "", "no actor")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidParameter))
}
